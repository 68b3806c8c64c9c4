package listing

import "strings"

// Category is an entry's fixed display group. Every sort mode orders by
// Category before applying its own key.
type Category int

// Categories in display order.
const (
	CategoryCurrent Category = iota // "."
	CategoryParent                  // ".."
	CategoryDir
	CategoryHidden
	CategoryOther
)

var categoryNames = map[Category]string{
	CategoryCurrent: "current",
	CategoryParent:  "parent",
	CategoryDir:     "directory",
	CategoryHidden:  "hidden",
	CategoryOther:   "other",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Classify returns the category of e. A hidden directory is a directory.
func Classify(e Entry) Category {
	switch {
	case e.Name == ".":
		return CategoryCurrent
	case e.Name == "..":
		return CategoryParent
	case e.IsDir:
		return CategoryDir
	case strings.HasPrefix(e.Name, "."):
		return CategoryHidden
	default:
		return CategoryOther
	}
}
