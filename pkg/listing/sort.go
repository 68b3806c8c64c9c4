package listing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortMode selects the key used within a category.
type SortMode int

// Sort modes. The zero value sorts by name.
const (
	SortByName SortMode = iota
	SortBySize
	SortByDate
	SortByPermissions
)

var sortModeNames = [...]string{
	SortByName:        "name",
	SortBySize:        "size",
	SortByDate:        "date",
	SortByPermissions: "permissions",
}

// SortModeNames lists the accepted names for ParseSortMode, in mode order.
func SortModeNames() []string {
	return slices.Clone(sortModeNames[:])
}

func (m SortMode) String() string {
	if m < 0 || int(m) >= len(sortModeNames) {
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
	return sortModeNames[m]
}

// ParseSortMode maps "name", "size", "date" or "permissions" to a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	for i, name := range sortModeNames {
		if strings.EqualFold(s, name) {
			return SortMode(i), nil
		}
	}
	return SortByName, fmt.Errorf("unknown sort mode %q (valid: %s)", s, strings.Join(sortModeNames[:], ", "))
}

// Compare orders a before b by category, then by the mode's key.
// Unknown modes compare by name.
func (m SortMode) Compare(a, b Entry) int {
	if c := cmp.Compare(Classify(a), Classify(b)); c != 0 {
		return c
	}

	switch m {
	case SortBySize:
		return cmp.Compare(ParseSize(a.Size), ParseSize(b.Size))
	case SortByDate:
		return a.Time.Compare(b.Time)
	case SortByPermissions:
		return strings.Compare(a.Permissions, b.Permissions)
	default:
		return strings.Compare(a.Name, b.Name)
	}
}

// Sort reorders entries in place according to mode.
func Sort(entries []Entry, mode SortMode) {
	slices.SortFunc(entries, mode.Compare)
}
