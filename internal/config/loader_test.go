package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultSpecDirs, cfg.SpecDirs)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultIndexPath, cfg.IndexPath)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultServeHost, cfg.Serve.Host)
	assert.Equal(t, DefaultServePort, cfg.Serve.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specdoc.yaml")
	content := `spec_dirs:
  - /srv/specs
output: json
serve:
  port: 9000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/specs"}, cfg.SpecDirs)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 9000, cfg.Serve.Port)
	assert.Equal(t, DefaultServeHost, cfg.Serve.Host, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o644))

	t.Setenv("SPECDOC_OUTPUT", "markdown")
	t.Setenv("SPECDOC_SPEC_DIRS", "/a,/b")
	t.Setenv("SPECDOC_SERVE__PORT", "7777")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.Output)
	assert.Equal(t, []string{"/a", "/b"}, cfg.SpecDirs)
	assert.Equal(t, 7777, cfg.Serve.Port)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SPECDOC_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--output=text", "--verbose"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Output)
	assert.True(t, cfg.Verbose)
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "ignored-default", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output)
}
