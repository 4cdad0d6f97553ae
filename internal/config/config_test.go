package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/hasbyte1/go-enumerable/internal/config"
)

// isolate keeps Load from finding a collq.yaml outside the test.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_defaults(t *testing.T) {
	isolate(t)
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.Input)
	assert.Equal(t, logging.LevelInfo, cfg.Level())
	assert.Equal(t, config.OnDuplicateSkip, cfg.OnDuplicate)
	assert.True(t, cfg.Indent)
}

func TestLoad_file(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "input: data.json\nlog_level: debug\non_duplicate: fail\nindent: false\n")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "data.json", cfg.Input)
	assert.Equal(t, logging.LevelDebug, cfg.Level())
	assert.Equal(t, config.OnDuplicateFail, cfg.OnDuplicate)
	assert.False(t, cfg.Indent)
}

func TestLoad_searchPath(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("collq.yaml", []byte("input: found.json\n"), 0o600))

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "found.json", cfg.Input)
}

func TestLoad_envOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "on_duplicate: skip\n")
	t.Setenv("COLLQ_ON_DUPLICATE", "fail")
	t.Setenv("COLLQ_LOG_LEVEL", "warn")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.OnDuplicateFail, cfg.OnDuplicate)
	assert.Equal(t, logging.LevelWarn, cfg.Level())
}

func TestLoad_flagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("COLLQ_INPUT", "env.json")

	flags := pflag.NewFlagSet("collq", pflag.ContinueOnError)
	flags.String("input", "-", "")
	flags.String("on-duplicate", config.OnDuplicateSkip, "")
	flags.String("unrelated", "", "")
	require.NoError(t, flags.Parse([]string{"--input", "flag.json", "--on-duplicate", "fail"}))

	cfg, err := config.Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.Input)
	assert.Equal(t, config.OnDuplicateFail, cfg.OnDuplicate)
}

func TestLoad_unsetFlagsKeepEnv(t *testing.T) {
	isolate(t)
	t.Setenv("COLLQ_INPUT", "env.json")

	flags := pflag.NewFlagSet("collq", pflag.ContinueOnError)
	flags.String("input", "-", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := config.Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "env.json", cfg.Input)
}

func TestLoad_invalid(t *testing.T) {
	isolate(t)

	_, err := config.Load(writeConfig(t, "on_duplicate: overwrite\n"), nil)
	assert.ErrorContains(t, err, "on_duplicate")

	_, err = config.Load(writeConfig(t, "log_level: loud\n"), nil)
	assert.ErrorContains(t, err, "log_level")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err, "an explicit config path must exist")
}
