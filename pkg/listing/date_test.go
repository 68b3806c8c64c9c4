package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveTime(t *testing.T) {
	now := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month string
		day   int
		clock string
		want  time.Time
	}{
		{
			name:  "time of day uses current year",
			month: "Jan", day: 5, clock: "10:30",
			want: time.Date(2026, time.January, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "no cross year correction",
			month: "Dec", day: 31, clock: "23:59",
			want: time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC),
		},
		{
			name:  "year means midnight",
			month: "Jul", day: 14, clock: "2019",
			want: time.Date(2019, time.July, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "unknown month falls back to january",
			month: "Foo", day: 9, clock: "2020",
			want: time.Date(2020, time.January, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "month match is case sensitive",
			month: "feb", day: 3, clock: "2020",
			want: time.Date(2020, time.January, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "unparseable clock parts are zero",
			month: "Apr", day: 1, clock: "ab:cd",
			want: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "day overflow normalizes",
			month: "Feb", day: 30, clock: "2021",
			want: time.Date(2021, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTime(tt.month, tt.day, tt.clock, now, time.UTC)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestResolveTime_AllMonths(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i, abbrev := range []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"} {
		got := ResolveTime(abbrev, 1, "2000", now, time.UTC)
		assert.Equal(t, time.Month(i+1), got.Month(), abbrev)
	}
}

func TestResolveTime_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 22:00 UTC on Dec 31 is already the next year in loc.
	now := time.Date(2025, time.December, 31, 22, 0, 0, 0, time.UTC)

	got := ResolveTime("Jan", 1, "00:10", now, loc)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, loc, got.Location())
}

func TestResolveTime_NilLocation(t *testing.T) {
	got := ResolveTime("Jan", 1, "2000", time.Now(), nil)
	assert.Equal(t, time.Local, got.Location())
}
