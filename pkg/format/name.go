package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// NameWidth is the column width reserved for file names.
const NameWidth = 60

const ellipsis = "..."

// TruncateName shortens names wider than NameWidth columns to fit exactly,
// ending in "...". Tabs, which have no fixed display width, become single
// spaces. Other names are returned unchanged.
func TruncateName(name string) string {
	name = strings.ReplaceAll(name, "\t", " ")
	if runewidth.StringWidth(name) <= NameWidth {
		return name
	}
	return runewidth.Truncate(name, NameWidth, ellipsis)
}

// PadName truncates name and pads it with spaces to NameWidth columns.
func PadName(name string) string {
	return runewidth.FillRight(TruncateName(name), NameWidth)
}

// UserGroup joins an owner and group as "user:group", or "user:" when the
// group has the same name as the user.
func UserGroup(user, group string) string {
	if user == group {
		return user + ":"
	}
	return user + ":" + group
}
