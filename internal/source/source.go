// Package source acquires raw listing lines for lsa.
//
// The listing core never sees how its lines were produced. This package
// either runs the external ls command or reads a previously captured
// listing from a file or stdin.
package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Default command used to produce a listing.
const (
	DefaultCommand = "ls"
	StdinPath      = "-"
)

// DefaultArgs are the flags lsa's parser expects ls to be run with.
var DefaultArgs = []string{"-alsh"}

// Source produces listing lines.
type Source interface {
	Lines(ctx context.Context) ([]string, error)
}

// ExitError reports a listing command that exited with a non-zero status.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s command failed with exit code %d", e.Command, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Command runs an ls-style command and captures its stdout.
type Command struct {
	Name   string
	Args   []string
	Dir    string // directory to list; empty lists the working directory
	Logger *slog.Logger
}

// Lines runs the command and splits its output into lines.
func (c *Command) Lines(ctx context.Context) ([]string, error) {
	name := c.Name
	if name == "" {
		name = DefaultCommand
	}
	args := c.Args
	if args == nil {
		args = DefaultArgs
	}
	args = append([]string(nil), args...)
	if c.Dir != "" {
		args = append(args, c.Dir)
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Debug("running listing command", "command", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{
				Command: name,
				Code:    exitErr.ExitCode(),
				Stderr:  strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("failed to execute %s command: %w", name, err)
	}

	return splitLines(bytes.NewReader(out))
}

// File reads a captured listing from Path, or from Stdin when Path is "-".
type File struct {
	Path  string
	Stdin io.Reader
}

// Lines reads the file and splits it into lines.
func (f *File) Lines(_ context.Context) ([]string, error) {
	if f.Path == StdinPath {
		r := f.Stdin
		if r == nil {
			r = os.Stdin
		}
		return splitLines(r)
	}

	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing: %w", err)
	}
	defer func() { _ = fh.Close() }()
	return splitLines(fh)
}

func splitLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}
	return lines, nil
}
