package db

import "testing"

func TestInitDB_InMemoryCreatesSchema(t *testing.T) {
	conn, err := InitDB("")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = conn.Close() }()

	var name string
	err = conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='fridge_events'`).Scan(&name)
	if err != nil {
		t.Fatalf("fridge_events table missing: %v", err)
	}

	if _, err := conn.Exec(`INSERT INTO fridge_events (id, occurred_at, type, message) VALUES ('a', '2025-01-01 00:00:00.000', 'ITEM_ADDED', 'x')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM fridge_events`).Scan(&n); err != nil || n != 1 {
		t.Fatalf("count=%d err=%v", n, err)
	}
}

func TestPragmasFor(t *testing.T) {
	if got := pragmasFor(MemoryPath); len(got) != 1 {
		t.Fatalf("memory db should skip WAL, got %v", got)
	}
	if got := pragmasFor("fridge.db"); len(got) != 2 {
		t.Fatalf("file db should enable WAL, got %v", got)
	}
}
