package report

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/lsa/pkg/format"
	"github.com/leapstack-labs/lsa/pkg/listing"
)

// columnGap separates adjacent columns.
const columnGap = 2

// Widths holds the display width of each variable-width column.
type Widths struct {
	Permissions int
	Size        int
	Date        int
	UserGroup   int
}

// ComputeWidths measures every column over entries. Date is never narrower
// than format.MaxRelativeAgeWidth so the layout does not shift with age.
func ComputeWidths(entries []listing.Entry, now time.Time) Widths {
	if len(entries) == 0 {
		return Widths{}
	}

	w := Widths{Date: format.MaxRelativeAgeWidth}
	for _, e := range entries {
		w.Permissions = max(w.Permissions, text.RuneWidthWithoutEscSequences(e.Permissions))
		w.Size = max(w.Size, text.RuneWidthWithoutEscSequences(e.Size))
		w.UserGroup = max(w.UserGroup, text.RuneWidthWithoutEscSequences(format.UserGroup(e.User, e.Group)))
		w.Date = max(w.Date, text.RuneWidthWithoutEscSequences(format.RelativeAge(e.Time, now)))
	}
	return w
}

// Total is the full table width: the name column plus every measured
// column, separated by gaps.
func (w Widths) Total() int {
	return format.NameWidth + columnGap + w.Date + columnGap + w.Size + columnGap + w.UserGroup + columnGap + w.Permissions
}

// footerIndent is where the size column starts.
func (w Widths) footerIndent() int {
	return format.NameWidth + columnGap + w.Date + columnGap
}
