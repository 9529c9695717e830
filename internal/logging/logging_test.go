package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "WARN", "json")

	logger.Info("hidden")
	logger.Warn("shown", "player", "player_1")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %s", out)
	}
	var line map[string]any
	if err := json.Unmarshal([]byte(out), &line); err != nil {
		t.Fatalf("not json: %q: %v", out, err)
	}
	if line["msg"] != "shown" || line["player"] != "player_1" {
		t.Fatalf("unexpected line %v", line)
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "chatty", "weird")
	logger.Debug("nope")
	logger.Info("yes")
	if strings.Contains(buf.String(), "nope") || !strings.Contains(buf.String(), "yes") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
