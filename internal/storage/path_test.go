package storage

import (
	"testing"
	"time"
)

func TestBuildResultKey(t *testing.T) {
	ts := time.Date(2026, time.February, 19, 4, 5, 0, 0, time.FixedZone("x", -5*3600))
	key, err := BuildResultKey("a1b2c3d4e5f6a7b8", ts)
	if err != nil {
		t.Fatalf("BuildResultKey() error = %v", err)
	}
	want := "results/2026/02/19/a1b2c3d4e5f6a7b8.parquet"
	if key != want {
		t.Fatalf("BuildResultKey() = %q, want %q", key, want)
	}
}

func TestBuildResultKeyUsesUTCDate(t *testing.T) {
	// 23:30 on the 18th in UTC-5 is already the 19th in UTC.
	ts := time.Date(2026, time.February, 18, 23, 30, 0, 0, time.FixedZone("x", -5*3600))
	key, err := BuildResultKey("trace-1", ts)
	if err != nil {
		t.Fatalf("BuildResultKey() error = %v", err)
	}
	want := "results/2026/02/19/trace-1.parquet"
	if key != want {
		t.Fatalf("BuildResultKey() = %q, want %q", key, want)
	}
}

func TestBuildResultKeyRejectsInvalidTraceID(t *testing.T) {
	if _, err := BuildResultKey("../oops", time.Now()); err == nil {
		t.Fatal("expected invalid component error")
	}
	if _, err := BuildResultKey("", time.Now()); err == nil {
		t.Fatal("expected error for empty trace id")
	}
}
