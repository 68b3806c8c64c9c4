package cli

import (
	"strconv"

	"github.com/leapstack-labs/lsa/internal/cli/config"
	"github.com/leapstack-labs/lsa/pkg/listing"
	"github.com/spf13/pflag"
)

// sortShortcut is a boolean flag such as -s that selects a sort mode by
// setting --sort. Setting the shared flag keeps the last shortcut on the
// command line in effect when several are given.
type sortShortcut struct {
	flags *pflag.FlagSet
	mode  listing.SortMode
	set   bool
}

func (s *sortShortcut) String() string { return strconv.FormatBool(s.set) }

func (s *sortShortcut) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	s.set = on
	if !on {
		return nil
	}
	return s.flags.Set("sort", s.mode.String())
}

func (s *sortShortcut) Type() string { return "bool" }

// IsBoolFlag lets the flag be given without a value.
func (s *sortShortcut) IsBoolFlag() bool { return true }

// addSortFlags registers --sort and its single-letter shortcuts on flags.
func addSortFlags(flags *pflag.FlagSet) {
	flags.String("sort", config.DefaultSort, "Sort mode (name|size|date|permissions)")

	shortcuts := []struct {
		name      string
		shorthand string
		mode      listing.SortMode
		usage     string
	}{
		{"sort-name", "n", listing.SortByName, "Sort by name (default)"},
		{"sort-size", "s", listing.SortBySize, "Sort by file size"},
		{"sort-date", "d", listing.SortByDate, "Sort by modification date"},
		{"sort-permissions", "p", listing.SortByPermissions, "Sort by permissions"},
	}
	for _, sc := range shortcuts {
		f := flags.VarPF(&sortShortcut{flags: flags, mode: sc.mode}, sc.name, sc.shorthand, sc.usage)
		f.NoOptDefVal = "true"
	}
}
