package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears every KBTRACK_ variable.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"KBTRACK_CONFIG", "KBTRACK_DB", "KBTRACK_LOG_LEVEL", "KBTRACK_LOG_FILE", "KBTRACK_FIRST_WORKOUT"} {
		t.Setenv(k, "")
	}
	return home
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".kbtrack", "kbtrack.db"), cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.Path)

	w, err := cfg.Workout()
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutA, w)
}

func TestLoad_DefaultFileInHome(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".kbtrack")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: debug\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.Path)
}

func TestLoad_YAML(t *testing.T) {
	isolate(t)
	t.Setenv("KBTRACK_CONFIG", writeTemp(t, `
db_path: /tmp/kb/test.db
log_level: info
log_file: /tmp/kb/kbtrack.log
first_workout: b
`))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kb/test.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/tmp/kb/kbtrack.log", cfg.LogFile)

	w, err := cfg.Workout()
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutB, w)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	isolate(t)
	t.Setenv("KBTRACK_CONFIG", writeTemp(t, "db_path: /from/yaml.db\nlog_level: info\n"))
	t.Setenv("KBTRACK_DB", "/from/env.db")
	t.Setenv("KBTRACK_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		yaml string
		want string
	}{
		{name: "bad level", env: map[string]string{"KBTRACK_LOG_LEVEL": "loud"}, want: "log_level"},
		{name: "bad workout", env: map[string]string{"KBTRACK_FIRST_WORKOUT": "C"}, want: "first_workout"},
		{name: "bad yaml", yaml: "db_path: [unterminated", want: "parsing config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if tt.yaml != "" {
				t.Setenv("KBTRACK_CONFIG", writeTemp(t, tt.yaml))
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_Level(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := Config{LogLevel: in}.Level()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kbtrack.log")
	logger, closer, err := NewLogger(Config{LogLevel: "info", LogFile: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("tracker_use_case", "use_case", "tracker.commit")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "use_case=tracker.commit")
	assert.False(t, strings.Contains(out, "hidden"))
}

func TestNewLogger_DetachTerminal(t *testing.T) {
	var stderr bytes.Buffer
	logger, out, err := newLogger(Config{LogLevel: "info"}, &stderr)
	require.NoError(t, err)

	logger.Info("before")
	out.DetachTerminal()
	logger.Error("tracker_use_case", "use_case", "tracker.commit")
	require.NoError(t, out.Close())

	assert.Contains(t, stderr.String(), "msg=before")
	assert.NotContains(t, stderr.String(), "tracker.commit")
}

func TestNewLogger_DetachTerminalKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kbtrack.log")
	logger, out, err := NewLogger(Config{LogLevel: "info", LogFile: path})
	require.NoError(t, err)

	out.DetachTerminal()
	logger.Warn("tracker_use_case", "use_case", "tracker.delete")
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "use_case=tracker.delete")
}
