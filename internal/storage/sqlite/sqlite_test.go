package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/louisbranch/gmscreen/internal/preferences"
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := OpenContent(context.Background(), ""); err == nil {
		t.Fatal("expected path error")
	}
	if _, err := OpenPreferences(context.Background(), " "); err == nil {
		t.Fatal("expected path error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	dir := t.TempDir()
	contentPath := filepath.Join(dir, "content.db")
	prefsPath := filepath.Join(dir, "prefs.db")

	content, err := OpenContent(context.Background(), contentPath)
	if err != nil {
		t.Fatalf("open content: %v", err)
	}
	t.Cleanup(func() { _ = content.Close() })
	prefs, err := OpenPreferences(context.Background(), prefsPath)
	if err != nil {
		t.Fatalf("open preferences: %v", err)
	}
	t.Cleanup(func() { _ = prefs.Close() })

	assertTableExists(t, contentPath, "catalog_sources")
	assertTableExists(t, contentPath, "rule_entries")
	assertTableExists(t, prefsPath, "device_preferences")
}

func TestReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.db")
	for i := 0; i < 2; i++ {
		store, err := OpenContent(context.Background(), path)
		if err != nil {
			t.Fatalf("open run %d: %v", i, err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("close run %d: %v", i, err)
		}
	}
}

func TestContentStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := OpenContent(ctx, filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := store.GetCatalog(ctx, "en-US"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetCatalog() error = %v, want ErrNotFound", err)
	}

	meta := catalog.Metadata{SystemID: catalog.SystemID, SystemVersion: catalog.SystemVersion, Source: "Test", Locale: "en-US"}
	want := catalog.MustNew(meta, []catalog.Entry{
		{ID: "b", Title: "Armor & SP", Category: catalog.CategoryCombat, Content: "SP", Page: 186},
		{ID: "a", Title: "Combat Basics", Category: catalog.CategoryCombat, Related: []string{"b", "z"}, QuickRef: true},
		{ID: "h", Title: "House", Category: "Homebrew", Subcategory: "Misc"},
	})
	if err := store.PutCatalog(ctx, want); err != nil {
		t.Fatalf("PutCatalog() error = %v", err)
	}
	got, err := store.GetCatalog(ctx, "en-US")
	if err != nil {
		t.Fatalf("GetCatalog() error = %v", err)
	}
	if !reflect.DeepEqual(got.Entries(), want.Entries()) {
		t.Fatalf("entries = %+v, want %+v", got.Entries(), want.Entries())
	}
	if got.Metadata() != meta {
		t.Fatalf("metadata = %+v, want %+v", got.Metadata(), meta)
	}

	smaller := catalog.MustNew(meta, []catalog.Entry{{ID: "only", Title: "Only"}})
	if err := store.PutCatalog(ctx, smaller); err != nil {
		t.Fatalf("replace catalog: %v", err)
	}
	got, err = store.GetCatalog(ctx, "en-US")
	if err != nil || got.Len() != 1 {
		t.Fatalf("after replace: %v entries, %v", got.Len(), err)
	}

	locales, err := store.ListLocales(ctx)
	if err != nil || !reflect.DeepEqual(locales, []string{"en-US"}) {
		t.Fatalf("ListLocales() = %v, %v", locales, err)
	}
}

func TestPreferencesStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")
	store, err := OpenPreferences(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := store.GetPreferences(ctx, "device-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetPreferences() error = %v, want ErrNotFound", err)
	}

	want := preferences.Preferences{Theme: preferences.ThemeHighContrast, FontSize: preferences.FontSmall, ReduceMotion: true, Sound: false}
	if err := store.PutPreferences(ctx, "device-1", want); err != nil {
		t.Fatalf("PutPreferences() error = %v", err)
	}
	got, err := store.GetPreferences(ctx, "device-1")
	if err != nil || got != want {
		t.Fatalf("GetPreferences() = %+v, %v; want %+v", got, err, want)
	}

	want.Theme = preferences.ThemeLight
	if err := store.PutPreferences(ctx, "device-1", want); err != nil {
		t.Fatalf("update preferences: %v", err)
	}
	got, _ = store.GetPreferences(ctx, "device-1")
	if got.Theme != preferences.ThemeLight {
		t.Fatalf("theme after update = %q", got.Theme)
	}
}

func TestPreferencesStoreValidates(t *testing.T) {
	ctx := context.Background()
	store, err := OpenPreferences(ctx, filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.PutPreferences(ctx, "", preferences.Default()); err == nil {
		t.Fatal("expected device id error")
	}
	bad := preferences.Preferences{Theme: "neon", FontSize: preferences.FontSmall}
	if err := store.PutPreferences(ctx, "d", bad); !errors.Is(err, preferences.ErrInvalid) {
		t.Fatalf("PutPreferences() error = %v, want ErrInvalid", err)
	}
}

func TestNilStores(t *testing.T) {
	var content *ContentStore
	if err := content.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
	if _, err := content.GetCatalog(context.Background(), "en-US"); err == nil {
		t.Fatal("expected unconfigured error")
	}
	var prefs *PreferencesStore
	if err := prefs.PutPreferences(context.Background(), "d", preferences.Default()); err == nil {
		t.Fatal("expected unconfigured error")
	}
}

func assertTableExists(t *testing.T, path string, table string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() { _ = db.Close() }()
	var name string
	if err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table).Scan(&name); err != nil {
		t.Fatalf("table %s missing: %v", table, err)
	}
}
