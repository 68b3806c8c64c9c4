// Package listing turns `ls -alsh` output into entries and orders them.
//
// The package covers the parsing half of lsa: splitting raw listing lines
// into fields, resolving the listing's abbreviated dates, classifying entries
// into their fixed display categories and sorting them. It performs no I/O
// beyond reading the lines it is handed.
package listing

import "time"

// Entry is one parsed directory entry.
type Entry struct {
	Name        string
	Permissions string
	// Size is the listing's own size text, possibly with a unit suffix ("4.0K").
	Size   string
	Blocks string
	Links  int
	Time   time.Time
	User   string
	Group  string

	IsDir        bool
	IsSymlink    bool
	IsExecutable bool
}

// permExecIndexes are the owner, group and other execute positions in a
// mode string such as "-rwxr-xr-x".
var permExecIndexes = [...]int{3, 6, 9}

// applyModeFlags derives the type and executable flags from Permissions.
func (e *Entry) applyModeFlags() {
	e.IsDir, e.IsSymlink, e.IsExecutable = false, false, false
	if e.Permissions == "" {
		return
	}

	switch e.Permissions[0] {
	case 'd':
		e.IsDir = true
	case 'l':
		e.IsSymlink = true
	}

	if len(e.Permissions) < 10 {
		return
	}
	for _, i := range permExecIndexes {
		if e.Permissions[i] == 'x' {
			e.IsExecutable = true
			return
		}
	}
}
