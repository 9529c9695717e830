package eventlog_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mind-engage/swiftfood/internal/db"
	"github.com/mind-engage/swiftfood/internal/eventlog"
)

func openRepo(t *testing.T) *eventlog.EventRepo {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return eventlog.NewEventRepo(dbh)
}

func TestAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	for _, typ := range []string{eventlog.TypePlayerCreated, eventlog.TypeTaskCompleted, eventlog.TypeLevelCompleted} {
		e, err := eventlog.NewEvent(typ, "player_1", map[string]int{"xp": 25})
		if err != nil {
			t.Fatalf("NewEvent: %v", err)
		}
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	other, _ := eventlog.NewEvent(eventlog.TypePlayerCreated, "player_2", nil)
	if err := repo.Append(ctx, other); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := repo.Recent(ctx, "player_1", 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if got[0].Type != eventlog.TypeLevelCompleted || got[1].Type != eventlog.TypeTaskCompleted {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].Seq <= got[1].Seq || got[0].CreatedAt == 0 {
		t.Fatalf("bad seq/created_at: %+v", got)
	}
	var payload map[string]int
	if err := json.Unmarshal([]byte(got[0].DataJSON), &payload); err != nil || payload["xp"] != 25 {
		t.Fatalf("payload %q: %v", got[0].DataJSON, err)
	}

	none, err := repo.Recent(ctx, "player_none", 0)
	if err != nil || len(none) != 0 {
		t.Fatalf("Recent(unknown) = %v, %v", none, err)
	}
}

func TestDiscard(t *testing.T) {
	var r eventlog.Recorder = eventlog.Discard{}
	if err := r.Append(context.Background(), eventlog.Event{Type: "x"}); err != nil {
		t.Fatalf("Discard.Append: %v", err)
	}
}
