/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */
package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Query describes a breakdown search request.
// Text uses SQLite FTS5 syntax (simple terms, phrases in quotes, AND/OR/NOT).
// Filters are optional. Kinds restricts to entry kinds such as dialogue,
// action, scene_heading, character, location. SceneFrom/To are inclusive
// scene numbers; 0 means unset. Limit/Offset paginate with defaults applied
// when zero.
type Query struct {
	Text      string
	Speaker   string
	Kinds     []string
	SceneFrom int
	SceneTo   int
	Limit     int
	Offset    int
}

// Result is a single match row. Snippet is a highlighted excerpt with [ ]
// markers when FTS text was used; SceneNumber is 0 for roster entries.
type Result struct {
	EntryID     int64
	Kind        string
	SceneID     string
	SceneNumber int
	Speaker     string
	Snippet     string
	Text        string
}

// Search runs a full-text query with filters over a screenplay's index.
// When q.Text is empty it falls back to a plain scan with filters applied.
func Search(ctx context.Context, screenplayPath string, q Query) ([]Result, error) {
	if strings.TrimSpace(screenplayPath) == "" {
		return nil, errors.New("screenplay path is required")
	}
	db, err := Open(screenplayPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return searchDB(ctx, db, q)
}

func searchDB(ctx context.Context, db *sql.DB, q Query) ([]Result, error) {
	var args []any
	var sb strings.Builder
	useFTS := strings.TrimSpace(q.Text) != ""
	if useFTS {
		sb.WriteString("SELECT e.entry_id, e.kind, COALESCE(e.scene_id,''), COALESCE(e.scene_number,0), COALESCE(e.speaker,''), snippet(fts_entries, 0, '[', ']', '…', 10), e.text\n")
		sb.WriteString("FROM fts_entries JOIN entries e ON fts_entries.rowid = e.entry_id\n")
		sb.WriteString("WHERE fts_entries MATCH ?\n")
		args = append(args, q.Text)
	} else {
		sb.WriteString("SELECT e.entry_id, e.kind, COALESCE(e.scene_id,''), COALESCE(e.scene_number,0), COALESCE(e.speaker,''), '', e.text\n")
		sb.WriteString("FROM entries e\nWHERE 1=1\n")
	}
	if len(q.Kinds) > 0 {
		sb.WriteString(" AND e.kind IN (" + placeholders(len(q.Kinds)) + ")\n")
		for _, k := range q.Kinds {
			args = append(args, k)
		}
	}
	if q.SceneFrom > 0 && q.SceneTo > 0 && q.SceneTo >= q.SceneFrom {
		sb.WriteString(" AND e.scene_number BETWEEN ? AND ?\n")
		args = append(args, q.SceneFrom, q.SceneTo)
	} else if q.SceneFrom > 0 {
		sb.WriteString(" AND e.scene_number >= ?\n")
		args = append(args, q.SceneFrom)
	} else if q.SceneTo > 0 {
		sb.WriteString(" AND e.scene_number <= ?\n")
		args = append(args, q.SceneTo)
	}
	if s := strings.TrimSpace(q.Speaker); s != "" {
		sb.WriteString(" AND e.speaker IS NOT NULL AND lower(e.speaker)=?\n")
		args = append(args, strings.ToLower(s))
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	sb.WriteString("ORDER BY e.scene_number NULLS LAST, e.entry_id\n")
	sb.WriteString("LIMIT ? OFFSET ?")
	args = append(args, limit, q.Offset)

	rows, err := db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()
	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.EntryID, &r.Kind, &r.SceneID, &r.SceneNumber, &r.Speaker, &r.Snippet, &r.Text); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	b := strings.Builder{}
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("?")
	}
	return b.String()
}
