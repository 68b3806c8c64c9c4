// Package report lays out sorted listing entries as an aligned table.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/lsa/internal/cli/output"
	"github.com/leapstack-labs/lsa/pkg/format"
	"github.com/leapstack-labs/lsa/pkg/listing"
)

const ruleChar = "─"

// Renderer writes the listing table.
type Renderer struct {
	out    io.Writer
	styles *output.Styles
	// Now is the reference time for relative ages.
	Now func() time.Time
}

// New creates a Renderer writing to r's output stream with r's styles.
func New(r *output.Renderer) *Renderer {
	return &Renderer{
		out:    r.Out(),
		styles: r.Styles(),
		Now:    time.Now,
	}
}

// Render writes entries, in their current order, under a header naming
// root. Nothing at all is written when entries is empty.
func (r *Renderer) Render(entries []listing.Entry, root string) error {
	if len(entries) == 0 {
		return nil
	}

	now := r.Now()
	w := ComputeWidths(entries, now)
	total := w.Total()

	var b strings.Builder
	r.writeHeader(&b, root, len(entries), total)
	r.writeRule(&b, total)

	var sum int64
	for i, e := range entries {
		r.writeRow(&b, e, w, now, i%2 == 1)
		if !e.IsDir {
			sum = addSaturating(sum, listing.ParseSize(e.Size))
		}
	}

	r.writeRule(&b, total)
	b.WriteString(strings.Repeat(" ", w.footerIndent()))
	b.WriteString(format.HumanBytes(sum))
	b.WriteByte('\n')

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// addSaturating adds two non-negative sizes, stopping at math.MaxInt64.
func addSaturating(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func (r *Renderer) writeHeader(b *strings.Builder, root string, count, total int) {
	summary := fmt.Sprintf("%d files", count)
	padding := total - text.RuneWidthWithoutEscSequences(root) - text.RuneWidthWithoutEscSequences(summary)
	if padding < 1 {
		padding = 1
	}
	b.WriteString(root)
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(summary)
	b.WriteByte('\n')
}

func (r *Renderer) writeRule(b *strings.Builder, total int) {
	b.WriteString(r.styles.Rule.Render(strings.Repeat(ruleChar, total)))
	b.WriteByte('\n')
}

func (r *Renderer) writeRow(b *strings.Builder, e listing.Entry, w Widths, now time.Time, alt bool) {
	gap := strings.Repeat(" ", columnGap)
	cells := []string{
		"",
		text.Pad(format.RelativeAge(e.Time, now), w.Date, ' '),
		text.Pad(e.Size, w.Size, ' '),
		text.Pad(format.UserGroup(e.User, e.Group), w.UserGroup, ' '),
		text.Pad(e.Permissions, w.Permissions, ' '),
	}

	b.WriteString(r.styles.Name(format.ColorFor(e), alt).Render(format.PadName(e.Name)))
	b.WriteString(r.styles.Row(alt).Render(strings.Join(cells, gap)))
	b.WriteByte('\n')
}
