package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/storage"
	"github.com/louisbranch/gmscreen/internal/storage/sqlite/migrations"
)

// ContentStore persists imported catalogs.
type ContentStore struct {
	sqlDB *sql.DB
}

// OpenContent opens and migrates a content database.
func OpenContent(ctx context.Context, path string) (*ContentStore, error) {
	sqlDB, err := openDB(ctx, path, migrations.ContentRoot)
	if err != nil {
		return nil, err
	}
	return &ContentStore{sqlDB: sqlDB}, nil
}

// Close releases the underlying connection.
func (s *ContentStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutCatalog replaces every entry stored for the catalog's locale in one
// transaction.
func (s *ContentStore) PutCatalog(ctx context.Context, c *catalog.Catalog) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if c == nil {
		return fmt.Errorf("catalog is required")
	}
	meta := c.Metadata()
	locale := strings.TrimSpace(meta.Locale)
	if locale == "" {
		return fmt.Errorf("catalog locale is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rule_entries WHERE locale = ?`, locale); err != nil {
		return fmt.Errorf("clear rule entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO catalog_sources (locale, system_id, system_version, source, imported_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(locale) DO UPDATE SET
		    system_id = excluded.system_id,
		    system_version = excluded.system_version,
		    source = excluded.source,
		    imported_at = excluded.imported_at`,
		locale, meta.SystemID, meta.SystemVersion, meta.Source, nowMillis(),
	); err != nil {
		return fmt.Errorf("put catalog source: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO rule_entries (locale, id, position, title, category, subcategory, content, related_json, quick_ref, page)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare rule entry insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, entry := range c.Entries() {
		related := entry.Related
		if related == nil {
			related = []string{}
		}
		relatedJSON, err := json.Marshal(related)
		if err != nil {
			return fmt.Errorf("encode related for %s: %w", entry.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			locale, entry.ID, i, entry.Title, string(entry.Category), entry.Subcategory,
			entry.Content, string(relatedJSON), boolToInt(entry.QuickRef), entry.Page,
		); err != nil {
			return fmt.Errorf("insert rule entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog import: %w", err)
	}
	return nil
}

// GetCatalog loads the catalog stored for locale in import order.
func (s *ContentStore) GetCatalog(ctx context.Context, locale string) (*catalog.Catalog, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	locale = strings.TrimSpace(locale)

	var meta catalog.Metadata
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT locale, system_id, system_version, source FROM catalog_sources WHERE locale = ?`, locale,
	).Scan(&meta.Locale, &meta.SystemID, &meta.SystemVersion, &meta.Source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog source: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, title, category, subcategory, content, related_json, quick_ref, page
		 FROM rule_entries WHERE locale = ? ORDER BY position`, locale)
	if err != nil {
		return nil, fmt.Errorf("list rule entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []catalog.Entry
	for rows.Next() {
		var (
			entry       catalog.Entry
			category    string
			relatedJSON string
			quickRef    int64
		)
		if err := rows.Scan(&entry.ID, &entry.Title, &category, &entry.Subcategory, &entry.Content, &relatedJSON, &quickRef, &entry.Page); err != nil {
			return nil, fmt.Errorf("scan rule entry: %w", err)
		}
		if err := json.Unmarshal([]byte(relatedJSON), &entry.Related); err != nil {
			return nil, fmt.Errorf("decode related for %s: %w", entry.ID, err)
		}
		if len(entry.Related) == 0 {
			entry.Related = nil
		}
		entry.Category = catalog.Category(category)
		entry.QuickRef = quickRef != 0
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rule entries: %w", err)
	}
	return catalog.New(meta, entries)
}

// ListLocales returns the locales with an imported catalog.
func (s *ContentStore) ListLocales(ctx context.Context) ([]string, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT locale FROM catalog_sources ORDER BY locale`)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []string
	for rows.Next() {
		var locale string
		if err := rows.Scan(&locale); err != nil {
			return nil, fmt.Errorf("scan locale: %w", err)
		}
		out = append(out, locale)
	}
	return out, rows.Err()
}

var _ storage.CatalogStore = (*ContentStore)(nil)
