package shorten

import (
	"bytes"
	"strings"
	"testing"

	"github.com/divoslabs/acorta/internal/config"
	"github.com/divoslabs/acorta/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	// A second pool connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.MappingModel{}, &models.VisitModel{}, &models.WaTemplateModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := &config.AppConfig{AliasLength: 6, MaxURLLength: 2048}
	return NewService(db, cfg)
}

func TestCreateGeneratesAlias(t *testing.T) {
	svc := newTestService(t)

	m, existed, err := svc.Create(CreateInput{Long: "https://example.com/page"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if existed {
		t.Fatal("fresh mapping reported as existing")
	}
	if len(m.Short) != 6 {
		t.Fatalf("alias length = %d, want 6", len(m.Short))
	}
	if m.Descr != "example.com" {
		t.Fatalf("Descr = %q, want inferred host", m.Descr)
	}
}

func TestCreateIdempotentByLongURL(t *testing.T) {
	svc := newTestService(t)

	first, _, err := svc.Create(CreateInput{Long: "https://example.com/a"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, existed, err := svc.Create(CreateInput{Long: "https://example.com/a"})
	if err != nil {
		t.Fatalf("Create again: %v", err)
	}
	if !existed {
		t.Fatal("re-shortening the same URL did not report reuse")
	}
	if second.Short != first.Short {
		t.Fatalf("alias changed on re-shorten: %q vs %q", second.Short, first.Short)
	}
}

func TestCreateIdempotentByTag(t *testing.T) {
	svc := newTestService(t)

	first, _, err := svc.Create(CreateInput{Long: "https://example.com/v1", Nmbr: "5215551234567"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Same tag, different URL: the tag wins and the stored mapping is reused.
	second, existed, err := svc.Create(CreateInput{Long: "https://example.com/v2", Nmbr: "5215551234567"})
	if err != nil {
		t.Fatalf("Create again: %v", err)
	}
	if !existed || second.Short != first.Short {
		t.Fatalf("tag idempotence broken: existed=%v short=%q want %q", existed, second.Short, first.Short)
	}
	if second.Long != "https://example.com/v1" {
		t.Fatalf("Long = %q, want original", second.Long)
	}
}

func TestCreateCustomAlias(t *testing.T) {
	svc := newTestService(t)

	m, _, err := svc.Create(CreateInput{Long: "https://example.com/x", Short: "promo2026"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.Short != "promo2026" {
		t.Fatalf("Short = %q, want requested alias", m.Short)
	}
}

func TestCreateTakenAliasRegenerates(t *testing.T) {
	svc := newTestService(t)

	if _, _, err := svc.Create(CreateInput{Long: "https://one.example.com", Short: "taken1"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	m, existed, err := svc.Create(CreateInput{Long: "https://two.example.com", Short: "taken1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if existed {
		t.Fatal("distinct URL reported as existing")
	}
	if m.Short == "taken1" {
		t.Fatal("taken alias was not regenerated")
	}
	if len(m.Short) != 6 {
		t.Fatalf("regenerated alias length = %d, want 6", len(m.Short))
	}
}

func TestCreateConflictOnInferredTag(t *testing.T) {
	svc := newTestService(t)

	if _, _, err := svc.Create(CreateInput{Long: "https://example.com/contact", Nmbr: "5215551234567"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// The wa.me URL is new, so neither idempotence lookup fires, but Describe
	// infers the already-taken tag; the unique index must reject the insert
	// and surface as a conflict, not a generic 500.
	_, _, err := svc.Create(CreateInput{Long: "https://wa.me/5215551234567"})
	if err != ErrConflict {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"empty url", CreateInput{Long: "   "}, ErrMissingURL},
		{"too long", CreateInput{Long: "https://e.com/" + strings.Repeat("a", 3000)}, ErrURLTooLong},
		{"bad alias", CreateInput{Long: "https://example.com", Short: "has space"}, ErrBadAlias},
		{"alias too long", CreateInput{Long: "https://example.com", Short: strings.Repeat("a", 17)}, ErrBadAlias},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.Create(tc.in); err != tc.want {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestUpdateKeepsAliasAndTag(t *testing.T) {
	svc := newTestService(t)

	m, _, err := svc.Create(CreateInput{Long: "https://example.com/old", Nmbr: "12345678901"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(m.Short, "https://example.com/new", "nueva descripción"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.GetByAlias(m.Short)
	if err != nil || got == nil {
		t.Fatalf("GetByAlias: %v, %v", got, err)
	}
	if got.Long != "https://example.com/new" || got.Descr != "nueva descripción" {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.NmbrValue() != "12345678901" {
		t.Fatalf("tag changed on update: %q", got.NmbrValue())
	}
}

func TestUpdateUnknownAlias(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Update("nope", "https://example.com", ""); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)

	m, _, err := svc.Create(CreateInput{Long: "https://example.com/gone"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(m.Short); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := svc.GetByAlias(m.Short); got != nil {
		t.Fatal("mapping still resolvable after delete")
	}
	if err := svc.Delete(m.Short); err != ErrNotFound {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestExportCSV(t *testing.T) {
	svc := newTestService(t)

	if _, _, err := svc.Create(CreateInput{Long: "https://example.com/1", Short: "uno", Nmbr: "111", Descr: "primero"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := svc.Create(CreateInput{Long: "https://example.com/2", Short: "dos"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.ExportCSV(&buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), buf.String())
	}
	if lines[0] != "long,short,nmbr,description" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "https://example.com/1,uno,111,primero" {
		t.Fatalf("row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "https://example.com/2,dos,") {
		t.Fatalf("row = %q", lines[2])
	}
}
