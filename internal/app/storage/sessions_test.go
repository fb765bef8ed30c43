package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cubelab.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	id, err := repo.Create(3)
	if err != nil {
		t.Fatal(err)
	}

	for i, n := range []string{"x0+", "y2-", "y2+", "x0-"} {
		if err := repo.AddMove(id, i, n, time.Duration(i)*time.Second); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Finish(id, 4, true); err != nil {
		t.Fatal(err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if s.CubeSize != 3 || s.MoveCount != 4 || !s.Solved {
		t.Errorf("session = %+v", s)
	}
	if s.EndedAt == nil || s.DurationMs == nil {
		t.Error("finished session missing end time or duration")
	}

	moves, err := repo.Moves(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 4 || moves[0] != "x0+" || moves[3] != "x0-" {
		t.Errorf("moves = %v", moves)
	}
}

func TestSessionListAndStats(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	for i := 0; i < 3; i++ {
		id, err := repo.Create(2)
		if err != nil {
			t.Fatal(err)
		}
		if err := repo.Finish(id, 10, i%2 == 0); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := repo.Create(4); err != nil {
		t.Fatal(err) // never finished, excluded from stats
	}

	sessions, err := repo.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 4 {
		t.Errorf("listed %d sessions, want 4", len(sessions))
	}

	stats, err := repo.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 {
		t.Fatalf("stats groups = %d, want 1", len(stats))
	}
	if stats[0].CubeSize != 2 || stats[0].Sessions != 3 {
		t.Errorf("stats = %+v", stats[0])
	}
	if stats[0].AvgMoves != 10 {
		t.Errorf("avg moves = %v, want 10", stats[0].AvgMoves)
	}
}

func TestGetMissingSession(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	if _, err := repo.Get("nope"); err == nil {
		t.Error("expected error for missing session")
	}
}
