package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultFlappyConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults drifted from DefaultFlappyConfig():\n got %+v\nwant %+v", cfg, DefaultFlappyConfig())
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if got := cfg.FramesPerSpawn(); got != 180 {
		t.Errorf("FramesPerSpawn() = %d, expected 180", got)
	}
	// (512 - 96 - 96) / 32
	if got := cfg.BodySlots(); got != 10 {
		t.Errorf("BodySlots() = %d, expected 10", got)
	}
	if got := cfg.SpawnX(); got != 567 {
		t.Errorf("SpawnX() = %f, expected 567", got)
	}
	if got := cfg.StartY(); got != 240 {
		t.Errorf("StartY() = %f, expected 240", got)
	}
	if got := cfg.FrameMs(); got < 16.66 || got > 16.67 {
		t.Errorf("FrameMs() = %f, expected ~16.667", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"zero fps", func(c *FlappyConfig) { c.FPS = 0 }, "fps"},
		{"zero climb duration", func(c *FlappyConfig) { c.Physics.ClimbDurationMs = 0 }, "climb_duration_ms"},
		{"negative sink", func(c *FlappyConfig) { c.Physics.SinkSpeed = -1 }, "speeds"},
		{"negative initial climb", func(c *FlappyConfig) { c.Physics.InitialClimbMs = -1 }, "initial_climb_ms"},
		{"initial climb too long", func(c *FlappyConfig) { c.Physics.InitialClimbMs = 301 }, "exceeds climb_duration_ms"},
		{"empty window", func(c *FlappyConfig) { c.Window.Width = 0 }, "window"},
		{"flyer outside", func(c *FlappyConfig) { c.Flyer.X = 600 }, "flyer.x"},
		{"zero segment", func(c *FlappyConfig) { c.Gates.SegmentHeight = 0 }, "segment"},
		{"spawn below one frame", func(c *FlappyConfig) { c.Gates.SpawnIntervalMs = 5 }, "shorter than one frame"},
		{"window too short for gap", func(c *FlappyConfig) { c.Window.Height = 200 }, "no room for gate bodies"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateMinimumHeight(t *testing.T) {
	cfg := DefaultFlappyConfig()
	// 3*32 + 4*32 is the smallest height with one body slot.
	cfg.Window.Height = 224
	if err := cfg.Validate(); err != nil {
		t.Errorf("height 224 should be valid: %v", err)
	}
	cfg.Window.Height = 223
	if err := cfg.Validate(); err == nil {
		t.Error("height 223 should be rejected")
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.FPS = 0
	cfg.Physics.ClimbDurationMs = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "fps") || !strings.Contains(err.Error(), "climb_duration_ms") {
		t.Errorf("both problems should be reported, got %q", err)
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("fps: 30\nphysics:\n  sink_speed: 0.5\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", cfg.FPS)
	}
	if cfg.Physics.SinkSpeed != 0.5 {
		t.Errorf("SinkSpeed = %f, expected 0.5", cfg.Physics.SinkSpeed)
	}
	if cfg.Physics.ClimbSpeed != DefaultFlappyConfig().Physics.ClimbSpeed {
		t.Errorf("unset ClimbSpeed should keep its default, got %f", cfg.Physics.ClimbSpeed)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("gravity: 9.8\n")); err == nil {
		t.Error("Parse() should reject unknown keys")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("empty document should yield defaults")
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("flyer:\n  x: 80\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, source, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Flyer.X != 80 {
		t.Errorf("Flyer.X = %d, expected 80", cfg.Flyer.X)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("fps: [1, 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, _, err := LoadFlappy(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("fps: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, _, err := LoadFlappy(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestLoadFlappySearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	writeUserConfig := func(body string) string {
		t.Helper()
		dir := filepath.Join(home, ".tui-flappy")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		path := filepath.Join(dir, "flappy.yaml")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		return path
	}

	// Nothing on the search path: embedded defaults.
	cfg, source, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != SourceEmbedded || cfg != DefaultFlappyConfig() {
		t.Errorf("source = %q, expected embedded defaults", source)
	}

	// Local ./configs file is used when there is no user file.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	local := filepath.Join("configs", "flappy.yaml")
	if err := os.WriteFile(local, []byte("fps: 50\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, source, err = LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != local || cfg.FPS != 50 {
		t.Errorf("got source %q fps %d, expected %q fps 50", source, cfg.FPS, local)
	}

	// The user file wins over the local one.
	user := writeUserConfig("fps: 30\n")
	cfg, source, err = LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != user || cfg.FPS != 30 {
		t.Errorf("got source %q fps %d, expected %q fps 30", source, cfg.FPS, user)
	}
}

func TestLoadFlappyRejectsBadFileOnSearchPath(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"misspelled key", "fps: 30\nphysics:\n  sink_sped: 0.3\n"},
		{"malformed yaml", "fps: [1, 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			chdir(t, t.TempDir())

			dir := filepath.Join(home, ".tui-flappy")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("MkdirAll failed: %v", err)
			}
			path := filepath.Join(dir, "flappy.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o600); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			_, source, err := LoadFlappy("")
			if err == nil {
				t.Fatal("a broken user config must not fall back to defaults")
			}
			if source != path {
				t.Errorf("source = %q, expected %q", source, path)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error should name the file, got %v", err)
			}
		})
	}
}

func TestLoadFlappyRejectsInvalidLocalFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", "flappy.yaml"), []byte("fps: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, _, err := LoadFlappy(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "climb_duration_ms: 300") {
		t.Errorf("marshalled YAML should use snake_case keys:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("marshalled defaults should parse back unchanged")
	}
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
