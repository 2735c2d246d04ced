/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package watch keeps a screenplay's breakdown index current while the file
// is being edited. Each save pushes a snapshot into the undo history and
// rebuilds the index; a save that truncates the file to nothing (a known
// editor-crash artifact) is answered with a recovery copy written from the
// last good snapshot.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"goscreenwriter/internal/index"
	applog "goscreenwriter/internal/log"
	"goscreenwriter/internal/screenplay"
	"goscreenwriter/internal/undo"
)

// RecoverySuffix is appended to the screenplay path for recovery copies.
const RecoverySuffix = ".recovered"

// debounceWindow collapses editor write bursts into one rebuild.
const debounceWindow = 300 * time.Millisecond

// Session watches one screenplay file.
type Session struct {
	path string
	hist *undo.History
	l    *slog.Logger
}

func NewSession(path string) *Session {
	return &Session{
		path: path,
		hist: undo.NewHistory(undo.Config{MaxPerDoc: 50, MinInterval: time.Second}),
		l:    applog.WithOperation(applog.WithComponent("watch"), "session").With(slog.String("screenplay", path)),
	}
}

// Run watches the file until ctx is canceled. The containing directory is
// watched rather than the file itself so rename-based saves keep working.
func (s *Session) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch dir: %w", err)
	}

	// Index the current content before waiting for changes.
	if err := s.handleChange(ctx); err != nil {
		s.l.Warn("initial index failed", slog.Any("err", err))
	}
	s.l.Info("watching")

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := s.handleChange(ctx); err != nil {
				s.l.Warn("change handling failed", slog.Any("err", err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.l.Warn("watcher error", slog.Any("err", err))
		}
	}
}

// handleChange processes one settled save of the watched file.
func (s *Session) handleChange(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read screenplay: %w", err)
	}
	text := string(data)

	if strings.TrimSpace(text) == "" {
		if prev, ok := s.hist.Undo(s.path); ok {
			rec := s.path + RecoverySuffix
			if err := os.WriteFile(rec, []byte(prev.Text), 0o644); err != nil {
				return fmt.Errorf("write recovery copy: %w", err)
			}
			// Keep the snapshot available for further truncations.
			_, _ = s.hist.Redo(s.path)
			s.l.Warn("screenplay truncated, recovery copy written", slog.String("path", rec))
		}
		return nil
	}

	s.hist.Push(undo.Snapshot{DocID: s.path, Text: text, TS: time.Now()})
	doc := screenplay.Extract(text)
	if err := index.Build(ctx, s.path, doc); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	s.l.Info("index rebuilt", slog.Int("scenes", len(doc.Scenes)), slog.Int("characters", len(doc.Characters)))
	return nil
}
