package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, &SchedulerConfig{Port: 9095, LogLevel: "error", ReportFormat: "text", MaxProcesses: 10000}, cfg)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\nlog_level: debug\nmax_processes: 50\nreport:\n  format: table\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, &SchedulerConfig{Port: 8080, LogLevel: "debug", ReportFormat: "table", MaxProcesses: 50}, cfg)
}

func TestLoad_DefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: 7000\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CPU_SCHEDULER_PORT", "9999")
	t.Setenv("CPU_SCHEDULER_REPORT_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "json", cfg.ReportFormat)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CPU_SCHEDULER_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CPU_SCHEDULER_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit config path must exist")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("port: 70000\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("max_processes: -1\n"), 0o644))
	_, err = Load(negative)
	assert.Error(t, err)
}
