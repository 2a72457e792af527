// Package store persists the mapper workspace in a SQLite database:
// imported structure definitions, templates, and one configuration list
// per template.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite"

	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/ugc"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

const templateCacheSize = 64

const schema = `
CREATE TABLE IF NOT EXISTS structures (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	content JSON NOT NULL
);

CREATE TABLE IF NOT EXISTS templates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	content JSON NOT NULL
);

CREATE TABLE IF NOT EXISTS configs (
	template_id TEXT PRIMARY KEY,
	body TEXT NOT NULL
);
`

// Summary names one stored record.
type Summary struct {
	ID   string
	Name string
}

// Store is a SQLite-backed workspace. Decoded templates are cached.
type Store struct {
	db        *sql.DB
	templates *lru.Cache[string, *ugc.Instance]
}

// Open opens or creates the workspace database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	cache, err := lru.New[string, *ugc.Instance](templateCacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, templates: cache}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutDefinition stores a structure definition, replacing any definition
// with the same id.
func (s *Store) PutDefinition(ctx context.Context, def *ugc.Definition) error {
	return s.PutDefinitions(ctx, []*ugc.Definition{def})
}

// PutDefinitions stores several definitions in one transaction: either all
// of them are written or none is.
func (s *Store) PutDefinitions(ctx context.Context, defs []*ugc.Definition) error {
	contents := make([]string, len(defs))

	for i, def := range defs {
		if def == nil || def.Content == nil {
			return errors.New("store structure: definition has no content")
		}

		content, err := json.Marshal(def.Content)
		if err != nil {
			return fmt.Errorf("encode structure %s: %w", def.ID, err)
		}

		contents[i] = string(content)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for i, def := range defs {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO structures (id, name, content) VALUES (?, ?, ?)`,
			def.ID, def.Name, contents[i])
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("store structure %s: %w", def.ID, err)
		}
	}

	return tx.Commit()
}

// Registry loads every stored definition into a registry.
func (s *Store) Registry(ctx context.Context) (*ugc.Registry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, content FROM structures`)
	if err != nil {
		return nil, fmt.Errorf("query structures: %w", err)
	}
	defer rows.Close()

	reg := ugc.NewRegistry()

	for rows.Next() {
		var (
			def     ugc.Definition
			content string
		)

		if err := rows.Scan(&def.ID, &def.Name, &content); err != nil {
			return nil, fmt.Errorf("scan structure: %w", err)
		}

		var in ugc.Instance
		if err := json.Unmarshal([]byte(content), &in); err != nil {
			return nil, fmt.Errorf("decode structure %s: %w", def.ID, err)
		}

		def.Content = &in
		reg.Put(&def)
	}

	return reg, rows.Err()
}

// Definitions lists stored definitions ordered by id.
func (s *Store) Definitions(ctx context.Context) ([]Summary, error) {
	return s.list(ctx, `SELECT id, name FROM structures ORDER BY id`)
}

// RemoveDefinition deletes a definition.
func (s *Store) RemoveDefinition(ctx context.Context, id string) error {
	return s.remove(ctx, `DELETE FROM structures WHERE id = ?`, id)
}

// PutTemplate stores a template under id. Its configuration list, if any,
// is kept.
func (s *Store) PutTemplate(ctx context.Context, id string, in *ugc.Instance) error {
	if in == nil {
		return fmt.Errorf("store template %s: template is nil", id)
	}

	content, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode template %s: %w", id, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO templates (id, name, content) VALUES (?, ?, ?)`,
		id, in.Name, string(content))
	if err != nil {
		return fmt.Errorf("store template %s: %w", id, err)
	}

	s.templates.Remove(id)

	return nil
}

// GetTemplate returns a private copy of the template stored under id.
func (s *Store) GetTemplate(ctx context.Context, id string) (*ugc.Instance, error) {
	if in, ok := s.templates.Get(id); ok {
		return in.Clone(), nil
	}

	var content string

	err := s.db.QueryRowContext(ctx, `SELECT content FROM templates WHERE id = ?`, id).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("query template %s: %w", id, err)
	}

	var in ugc.Instance
	if err := json.Unmarshal([]byte(content), &in); err != nil {
		return nil, fmt.Errorf("decode template %s: %w", id, err)
	}

	s.templates.Add(id, &in)

	return in.Clone(), nil
}

// Templates lists stored templates ordered by id.
func (s *Store) Templates(ctx context.Context) ([]Summary, error) {
	return s.list(ctx, `SELECT id, name FROM templates ORDER BY id`)
}

// RemoveTemplate deletes a template together with its configurations.
func (s *Store) RemoveTemplate(ctx context.Context, id string) error {
	err := s.remove(ctx, `DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return err
	}

	s.templates.Remove(id)

	_, err = s.db.ExecContext(ctx, `DELETE FROM configs WHERE template_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete configs of %s: %w", id, err)
	}

	return nil
}

// Configs returns the configuration list of a template; a template that
// was never configured has an empty list.
func (s *Store) Configs(ctx context.Context, templateID string) ([]mapping.SlotConfig, error) {
	var body string

	err := s.db.QueryRowContext(ctx, `SELECT body FROM configs WHERE template_id = ?`, templateID).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("query configs of %s: %w", templateID, err)
	}

	f, err := mapping.Parse([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("configs of %s: %w", templateID, err)
	}

	return f.Slots, nil
}

// SaveConfigs replaces the configuration list of a template.
func (s *Store) SaveConfigs(ctx context.Context, templateID string, configs []mapping.SlotConfig) error {
	body, err := mapping.Marshal(mapping.NewFile(templateID, configs))
	if err != nil {
		return fmt.Errorf("encode configs of %s: %w", templateID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO configs (template_id, body) VALUES (?, ?)`,
		templateID, string(body))
	if err != nil {
		return fmt.Errorf("store configs of %s: %w", templateID, err)
	}

	return nil
}

// Reset deletes everything in the workspace.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, table := range []string{"structures", "templates", "configs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.templates.Purge()

	return nil
}

func (s *Store) list(ctx context.Context, query string) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	var out []Summary

	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		out = append(out, sum)
	}

	return out, rows.Err()
}

func (s *Store) remove(ctx context.Context, query, id string) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}

	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	return nil
}
