/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package index maintains a local SQLite breakdown index next to a
// screenplay file. The index is derived data, rebuilt wholesale from the
// extracted document graph, and backs full-text search over scene headings,
// action, and dialogue without re-parsing the screenplay on every query.
package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "goscreenwriter/internal/log"
	"goscreenwriter/internal/screenplay"
	"goscreenwriter/internal/version"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	// IndexDirName stores per-screenplay ephemeral data next to the file.
	IndexDirName  = ".gsw"
	IndexFileName = "index.sqlite"

	// schemaVersion tracks the local SQLite schema for the embedded index.
	// Bump on breaking schema changes and add a migration step.
	schemaVersion = 1
)

// Path returns the full path to the breakdown index for a screenplay file.
func Path(screenplayPath string) string {
	return filepath.Join(filepath.Dir(screenplayPath), IndexDirName, IndexFileName)
}

// Open ensures the index database exists next to the screenplay, enables
// WAL mode, and ensures the schema is current. Callers close the returned
// handle when done.
func Open(screenplayPath string) (*sql.DB, error) {
	l := applog.WithOperation(applog.WithComponent("index"), "open").With(
		slog.String("screenplay", screenplayPath),
	)
	if strings.TrimSpace(screenplayPath) == "" {
		return nil, errors.New("screenplay path is required")
	}
	path := Path(screenplayPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		l.Error("create index dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create index dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := ensureMetaAndVersion(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure meta/version failed", slog.Any("err", err))
		return nil, err
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure schema failed", slog.Any("err", err))
		return nil, err
	}
	l.Info("index ready", slog.String("path", path))
	return db, nil
}

func ensureMetaAndVersion(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS version (
			id          INTEGER PRIMARY KEY CHECK(id=1),
			schema      INTEGER NOT NULL,
			app         TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var curSchema int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&curSchema)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, `INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, ?, ?, ?, ?)`, schemaVersion, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	default:
		if _, err := db.ExecContext(ctx, `UPDATE version SET app=?, updated_at=? WHERE id=1`, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}

// ensureSchema creates the breakdown tables and the contentless FTS mirror.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		// Entries: one row per scene heading, scene element, or roster item.
		`CREATE TABLE IF NOT EXISTS entries (
			entry_id     INTEGER PRIMARY KEY,
			kind         TEXT    NOT NULL,
			path         TEXT    NOT NULL,
			scene_id     TEXT,
			scene_number INTEGER,
			speaker      TEXT,
			text         TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_path ON entries(path);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_scene ON entries(scene_number);`,

		// Contentless FTS5 index fed from entries via triggers.
		`CREATE VIRTUAL TABLE IF NOT EXISTS fts_entries USING fts5(
			text,
			content='',
			tokenize = 'unicode61'
		);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure index schema: %w", err)
		}
	}
	triggers := []string{
		`CREATE TRIGGER IF NOT EXISTS entries_ai AFTER INSERT ON entries BEGIN
			INSERT INTO fts_entries(rowid, text) VALUES (new.entry_id, new.text);
		END;`,
		`CREATE TRIGGER IF NOT EXISTS entries_ad AFTER DELETE ON entries BEGIN
			INSERT INTO fts_entries(fts_entries, rowid, text) VALUES ('delete', old.entry_id, old.text);
		END;`,
		`CREATE TRIGGER IF NOT EXISTS entries_au AFTER UPDATE OF text ON entries BEGIN
			INSERT INTO fts_entries(fts_entries, rowid, text) VALUES ('delete', old.entry_id, old.text);
			INSERT INTO fts_entries(rowid, text) VALUES (new.entry_id, new.text);
		END;`,
	}
	for _, q := range triggers {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure fts triggers: %w", err)
		}
	}
	return nil
}

// Build replaces the index content for a screenplay with rows derived from
// its extracted document graph. The index is derived data; rebuilding it is
// always safe.
func Build(ctx context.Context, screenplayPath string, doc screenplay.Document) error {
	db, err := Open(screenplayPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return rebuildEntries(ctx, db, screenplayPath, doc)
}

type entryRow struct {
	kind        string
	sceneID     sql.NullString
	sceneNumber sql.NullInt64
	speaker     sql.NullString
	text        string
}

func rebuildEntries(ctx context.Context, db *sql.DB, screenplayPath string, doc screenplay.Document) error {
	rows := make([]entryRow, 0, 256)
	for _, sc := range doc.Scenes {
		sid := sql.NullString{String: sc.ID, Valid: true}
		num := sql.NullInt64{Int64: int64(sc.Number), Valid: true}
		rows = append(rows, entryRow{kind: "scene_heading", sceneID: sid, sceneNumber: num, text: sc.Heading})
		if s := strings.TrimSpace(sc.Synopsis); s != "" {
			rows = append(rows, entryRow{kind: "synopsis", sceneID: sid, sceneNumber: num, text: s})
		}
		for _, el := range sc.Elements {
			text := strings.TrimSpace(el.Text)
			if text == "" {
				continue
			}
			var speaker sql.NullString
			if el.Speaker != "" {
				speaker = sql.NullString{String: el.Speaker, Valid: true}
			}
			switch el.Type {
			case screenplay.Action:
				rows = append(rows, entryRow{kind: "action", sceneID: sid, sceneNumber: num, text: text})
			case screenplay.Dialogue:
				rows = append(rows, entryRow{kind: "dialogue", sceneID: sid, sceneNumber: num, speaker: speaker, text: text})
			case screenplay.Parenthetical:
				rows = append(rows, entryRow{kind: "parenthetical", sceneID: sid, sceneNumber: num, speaker: speaker, text: text})
			case screenplay.Transition:
				rows = append(rows, entryRow{kind: "transition", sceneID: sid, sceneNumber: num, text: text})
			}
		}
	}
	for _, ch := range doc.Characters {
		rows = append(rows, entryRow{kind: "character", text: ch.Name})
	}
	for _, loc := range doc.Locations {
		rows = append(rows, entryRow{kind: "location", text: loc.Name})
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM entries;"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear entries: %w", err)
	}
	ins, err := tx.PrepareContext(ctx, "INSERT INTO entries(kind, path, scene_id, scene_number, speaker, text) VALUES(?,?,?,?,?,?);")
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer ins.Close()
	for _, r := range rows {
		if _, err := ins.ExecContext(ctx, r.kind, screenplayPath, r.sceneID, r.sceneNumber, r.speaker, r.text); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
