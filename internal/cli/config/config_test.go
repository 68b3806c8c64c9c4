package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/leapstack-labs/lsa/internal/cli/output"
	"github.com/leapstack-labs/lsa/pkg/listing"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	for _, key := range []string{"LSA_SORT", "LSA_COLOR", "LSA_LS_COMMAND", "LSA_LS_ARGS", "LSA_INPUT", "LSA_VERBOSE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("sort", DefaultSort, "")
	flags.Bool("sort-size", false, "")
	flags.String("color", DefaultColor, "")
	flags.String("input", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.String("config", "", "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, GetConfigFileUsed())

	mode, err := cfg.SortMode()
	require.NoError(t, err)
	assert.Equal(t, listing.SortByName, mode)

	color, err := cfg.ColorMode()
	require.NoError(t, err)
	assert.Equal(t, output.ModeAuto, color)
}

func TestLoadConfig_LocalFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "lsa.yaml"), `
sort: date
color: never
ls_command: gls
ls_args: ["-al", "-s", "-h"]
`)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "lsa.yaml", GetConfigFileUsed())
	assert.Equal(t, "date", cfg.Sort)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "gls", cfg.LSCommand)
	assert.Equal(t, []string{"-al", "-s", "-h"}, cfg.LSArgs)
}

func TestLoadConfig_YmlFallback(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "lsa.yml"), "sort: size\n")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "lsa.yml", GetConfigFileUsed())
	assert.Equal(t, "size", cfg.Sort)
}

func TestLoadConfig_UserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on Linux")
	}
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "xdg", "lsa", "config.yaml"), "sort: permissions\n")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "permissions", cfg.Sort)
	assert.Equal(t, filepath.Join(dir, "xdg", "lsa", "config.yaml"), GetConfigFileUsed())
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "lsa.yaml"), "sort: date\n")
	explicit := filepath.Join(dir, "custom.yaml")
	writeFile(t, explicit, "sort: size\n")

	cfg, err := LoadConfig(explicit, nil)
	require.NoError(t, err)
	assert.Equal(t, "size", cfg.Sort)
	assert.Equal(t, explicit, GetConfigFileUsed())
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig(filepath.Join(dir, "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "lsa.yaml"), "sort: date\ncolor: never\n")
	t.Setenv("LSA_SORT", "size")
	t.Setenv("LSA_LS_ARGS", "-a -l  -s -h")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "size", cfg.Sort, "env should override file")
	assert.Equal(t, "never", cfg.Color, "file value kept when env is unset")
	assert.Equal(t, []string{"-a", "-l", "-s", "-h"}, cfg.LSArgs)
}

func TestLoadConfig_LSArgsAsString(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "lsa.yaml"), "ls_args: \"-a -l -s\"\n")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"-a", "-l", "-s"}, cfg.LSArgs)
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "lsa.yaml"), "sort: date\n")
	t.Setenv("LSA_SORT", "size")
	t.Setenv("LSA_COLOR", "always")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--sort", "permissions", "-v", "--input", "-"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "permissions", cfg.Sort, "flag should override env and file")
	assert.Equal(t, "always", cfg.Color, "unset flags do not override env")
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "-", cfg.Input)
}

func TestLoadConfig_SortShortcutFlagsIgnored(t *testing.T) {
	isolate(t)

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--sort-size"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultSort, cfg.Sort, "shortcuts only take effect by setting --sort")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		errSubstr string
	}{
		{
			name:      "unknown sort",
			env:       map[string]string{"LSA_SORT": "mtime"},
			errSubstr: "invalid sort setting",
		},
		{
			name:      "unknown color",
			env:       map[string]string{"LSA_COLOR": "rainbow"},
			errSubstr: "invalid color setting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.LSCommand = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ls_command is required")

	cfg.Input = "listing.txt"
	assert.NoError(t, cfg.Validate(), "an input file makes the command unnecessary")
}

func TestDefaultLSArgs_IsACopy(t *testing.T) {
	args := DefaultLSArgs()
	args[0] = "-x"
	assert.Equal(t, []string{"-alsh"}, DefaultLSArgs())
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "falls back to a discard logger")

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, GetLogger(ctx))
	assert.Equal(t, loggerKey{}, LoggerKey())

	GetLogger(ctx).Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewLogger_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
