package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/logging"
)

func TestNewWriter_Formats(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

		logger.Info("section renamed", "moved", 2)

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if record["msg"] != "section renamed" {
			t.Errorf("msg = %v", record["msg"])
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &buf)

		logger.Info("section renamed")

		if !strings.Contains(buf.String(), `msg="section renamed"`) {
			t.Errorf("output = %q", buf.String())
		}
	})
}

func TestNewWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriter(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("warn record should be written")
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &logging.Config{}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.Level != logging.LevelInfo || cfg.Format != logging.FormatText || cfg.Output != logging.OutputStdout {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("TEST_LOG_LEVEL", "debug")
		t.Setenv("TEST_LOG_OUTPUT", "stderr")

		cfg := &logging.Config{}
		err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Output: "TEST_LOG_OUTPUT"})
		if err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.Level != logging.LevelDebug || cfg.Output != logging.OutputStderr {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, cfg := range []*logging.Config{
			{Level: "verbose"},
			{Format: "xml"},
			{Output: "file"},
		} {
			if err := cfg.Finalize(nil); err == nil {
				t.Errorf("Finalize(%+v) should fail", cfg)
			}
		}
	})
}
