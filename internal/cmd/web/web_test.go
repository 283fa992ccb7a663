package web

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/louisbranch/gmscreen/internal/rules/source"
	"github.com/louisbranch/gmscreen/internal/storage/memory"
	"github.com/louisbranch/gmscreen/internal/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.Source().Select() != source.KindBundled {
		t.Fatalf("Source() = %+v, want bundled", cfg.Source())
	}
	if cfg.PreferencesDB != "" {
		t.Fatalf("PreferencesDB = %q, want empty", cfg.PreferencesDB)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("GMSCREEN_WEB_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("GMSCREEN_CATALOG_FILE", "rules.json")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Fatalf("HTTPAddr = %q, want env value", cfg.HTTPAddr)
	}
	if cfg.Source().Select() != source.KindFile {
		t.Fatalf("Source() = %+v, want file", cfg.Source())
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("GMSCREEN_WEB_HTTP_ADDR", "127.0.0.1:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	args := []string{"-http-addr", "127.0.0.1:9001", "-content-db", "c.db", "-catalog-locale", "pt-BR", "-preferences-db", "p.db"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9001" {
		t.Fatalf("HTTPAddr = %q, want flag value", cfg.HTTPAddr)
	}
	if got := cfg.Source(); got.DBPath != "c.db" || got.Locale != "pt-BR" {
		t.Fatalf("Source() = %+v", got)
	}
	if cfg.PreferencesDB != "p.db" {
		t.Fatalf("PreferencesDB = %q, want p.db", cfg.PreferencesDB)
	}
}

func TestOpenPreferencesInMemory(t *testing.T) {
	store, closeFn, err := openPreferences(context.Background(), " ")
	if err != nil {
		t.Fatalf("openPreferences() error = %v", err)
	}
	defer closeFn()
	if _, ok := store.(*memory.PreferencesStore); !ok {
		t.Fatalf("store = %T, want *memory.PreferencesStore", store)
	}
}

func TestOpenPreferencesSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	store, closeFn, err := openPreferences(context.Background(), path)
	if err != nil {
		t.Fatalf("openPreferences() error = %v", err)
	}
	defer closeFn()
	if _, ok := store.(*sqlite.PreferencesStore); !ok {
		t.Fatalf("store = %T, want *sqlite.PreferencesStore", store)
	}
}

func TestRunFailsOnMissingCatalogFile(t *testing.T) {
	cfg := Config{HTTPAddr: "127.0.0.1:0", CatalogFile: filepath.Join(t.TempDir(), "missing.yaml")}
	if err := Run(context.Background(), cfg); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, Config{HTTPAddr: "127.0.0.1:0"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
