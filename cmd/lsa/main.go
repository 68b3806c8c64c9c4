// Package main provides the lsa directory listing CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/lsa/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
