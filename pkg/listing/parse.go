package listing

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// headerPrefix starts the block-count line ls prints before the entries.
const headerPrefix = "total"

// leadingFields is the number of fixed columns before the file name.
const leadingFields = 9

// maxLineSize bounds a single listing line read by ParseReader.
const maxLineSize = 1 << 20

// Parser converts listing lines into entries.
type Parser struct {
	// Now supplies the current time used for year-less dates.
	Now func() time.Time
	// Location is the zone timestamps are resolved in.
	Location *time.Location
	Logger   *slog.Logger
}

// NewParser returns a Parser using the wall clock and local time zone.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{
		Now:      time.Now,
		Location: time.Local,
		Logger:   logger,
	}
}

// ParseLine parses a single line. It reports false for the "total" header
// and for any line that does not carry all nine leading columns and a name.
func (p *Parser) ParseLine(line string) (Entry, bool) {
	if strings.HasPrefix(strings.TrimLeft(line, " \t"), headerPrefix) {
		return Entry{}, false
	}

	fields, rest, ok := splitFields(line, leadingFields)
	if !ok {
		return Entry{}, false
	}

	links, err := strconv.Atoi(fields[2])
	if err != nil {
		return Entry{}, false
	}
	day, err := strconv.Atoi(fields[7])
	if err != nil {
		return Entry{}, false
	}

	name := strings.TrimRight(strings.TrimLeft(rest, " \t"), "\r\n")
	if name == "" {
		return Entry{}, false
	}

	e := Entry{
		Name:        name,
		Blocks:      fields[0],
		Permissions: fields[1],
		Links:       links,
		User:        fields[3],
		Group:       fields[4],
		Size:        fields[5],
		Time:        ResolveTime(fields[6], day, fields[8], p.now(), p.Location),
	}
	e.applyModeFlags()
	return e, true
}

// Parse parses every line, dropping the ones ParseLine skips.
// The result keeps input order.
func (p *Parser) Parse(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	skipped := 0
	for _, line := range lines {
		e, ok := p.ParseLine(line)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	p.logger().Debug("parsed listing", "entries", len(entries), "skipped", skipped)
	return entries
}

// ParseReader parses lines from r until EOF.
func (p *Parser) ParseReader(r io.Reader) ([]Entry, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}
	return p.Parse(lines), nil
}

func (p *Parser) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func (p *Parser) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// splitFields extracts n whitespace-delimited fields from the start of s and
// returns whatever follows the last one. ok is false if s runs out first.
func splitFields(s string, n int) (fields []string, rest string, ok bool) {
	fields = make([]string, 0, n)
	i := 0
	for len(fields) < n {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i == len(s) {
			return nil, "", false
		}
		start := i
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
		fields = append(fields, s[start:i])
	}
	return fields, s[i:], true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
