package format

import "github.com/leapstack-labs/lsa/pkg/listing"

// Color is the highlight class of an entry's name.
type Color int

// Name colors.
const (
	ColorDefault Color = iota
	ColorSymlink
	ColorDir
	ColorExec
)

func (c Color) String() string {
	switch c {
	case ColorSymlink:
		return "symlink"
	case ColorDir:
		return "directory"
	case ColorExec:
		return "executable"
	default:
		return "default"
	}
}

// ColorFor picks the name color for e. A symlink wins over a directory,
// and a directory over an executable.
func ColorFor(e listing.Entry) Color {
	switch {
	case e.IsSymlink:
		return ColorSymlink
	case e.IsDir:
		return ColorDir
	case e.IsExecutable:
		return ColorExec
	default:
		return ColorDefault
	}
}
