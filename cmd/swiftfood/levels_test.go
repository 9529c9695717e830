package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mind-engage/swiftfood/internal/catalog"
)

func TestPrintLevels(t *testing.T) {
	var buf bytes.Buffer
	printLevels(&buf, catalog.Default())
	out := buf.String()

	for _, want := range []string{
		"1. 🍕 Pizza Master (unlocked, requires level 1)",
		"4. 🍰 Dessert Wizard (locked, requires level 4)",
		"3) Decorate with Style - Add frosting and decorations [45 xp]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, " xp]"); got != 12 {
		t.Fatalf("printed %d tasks, want 12", got)
	}
}

func TestPrintLevelByID(t *testing.T) {
	var buf bytes.Buffer
	if err := printLevelByID(&buf, catalog.Default(), 2); err != nil {
		t.Fatalf("printLevelByID: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "2. ") || strings.Contains(out, "1. 🍕") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if got := strings.Count(out, " xp]"); got != 3 {
		t.Fatalf("printed %d tasks, want 3", got)
	}

	buf.Reset()
	if err := printLevelByID(&buf, catalog.Default(), 99); err == nil || buf.Len() != 0 {
		t.Fatalf("missing level: err=%v out=%q", err, buf.String())
	}
}
