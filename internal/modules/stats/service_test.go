package stats

import (
	"testing"
	"time"

	"github.com/divoslabs/acorta/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.VisitModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db)
}

func TestAggregate(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	seed := []struct {
		short, platform string
		ts              time.Time
	}{
		{"abc123", "android", now},
		{"abc123", "android", now.Add(-time.Hour)},
		{"abc123", "ios", now},
		{"other0", "windows", now},
	}
	for _, v := range seed {
		if err := svc.Record(v.short, v.platform, v.ts); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	counts, total, err := svc.Aggregate("abc123", nil)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if counts["android"] != 2 || counts["ios"] != 1 {
		t.Fatalf("counts = %v", counts)
	}
	if _, ok := counts["windows"]; ok {
		t.Fatal("counts leaked another alias's visits")
	}
}

func TestAggregateSince(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	if err := svc.Record("abc123", "android", now.AddDate(0, 0, -30)); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := svc.Record("abc123", "ios", now); err != nil {
		t.Fatalf("Record: %v", err)
	}

	since := now.AddDate(0, 0, -7)
	counts, total, err := svc.Aggregate("abc123", &since)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if total != 1 || counts["ios"] != 1 {
		t.Fatalf("since filter failed: total=%d counts=%v", total, counts)
	}
}

func TestPurgeBoundary(t *testing.T) {
	svc := newTestService(t)
	cutoff := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	if err := svc.Record("abc123", "android", cutoff.Add(-time.Second)); err != nil {
		t.Fatalf("Record: %v", err)
	}
	// Exactly at the cutoff survives; the purge is strictly-before.
	if err := svc.Record("abc123", "ios", cutoff); err != nil {
		t.Fatalf("Record: %v", err)
	}

	deleted, err := svc.Purge(cutoff)
	if err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}

	_, total, err := svc.Aggregate("abc123", nil)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if total != 1 {
		t.Fatalf("remaining = %d, want 1", total)
	}
}

func TestParseSince(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	t.Run("empty is nil", func(t *testing.T) {
		got, err := parseSince("", now)
		if err != nil || got != nil {
			t.Fatalf("got %v, %v", got, err)
		}
	})

	t.Run("today is midnight", func(t *testing.T) {
		got, err := parseSince("today", now)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("week", func(t *testing.T) {
		got, err := parseSince("week", now)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(now.AddDate(0, 0, -7)) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("explicit date", func(t *testing.T) {
		got, err := parseSince("2026-01-15", now)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := parseSince("yesterday", now); err == nil {
			t.Fatal("expected error")
		}
	})
}
