/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package undo keeps in-memory undo/redo history for open screenplay
// documents. Snapshots hold whole document text; the screenplay core is
// stateless, so restoring a snapshot is just re-running classification on
// the restored text.
package undo

import (
	"sync"
	"time"
)

// Snapshot is one reversible document state. Text is the full document at
// capture time; Cursor is the caret offset to restore with it.
type Snapshot struct {
	DocID  string
	Text   string
	Cursor int
	TS     time.Time
}

// Config controls memory and depth caps and coalescing behavior.
type Config struct {
	// MaxBytes is a soft cap; oldest entries are pruned when exceeded.
	MaxBytes int
	// MaxPerDoc limits snapshots per document (0 means unlimited).
	MaxPerDoc int
	// MinInterval coalesces snapshots captured within the interval for the
	// same document, replacing the previous one instead of pushing a new
	// entry. Keystroke bursts collapse to one undo step.
	MinInterval time.Duration
}

// History provides per-document undo/redo stacks with performance
// safeguards. It is safe for concurrent use.
type History struct {
	cfg Config
	mu  sync.Mutex

	undo map[string][]Snapshot
	redo map[string][]Snapshot

	totalBytes int
}

func NewHistory(cfg Config) *History {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 16 * 1024 * 1024 // 16 MiB
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 250 * time.Millisecond
	}
	return &History{cfg: cfg, undo: make(map[string][]Snapshot), redo: make(map[string][]Snapshot)}
}

// Push records a snapshot. If within MinInterval of the last snapshot for
// the same document it replaces that one. Any push clears the document's
// redo stack.
func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	stack := h.undo[s.DocID]
	if n := len(stack); n > 0 {
		last := stack[n-1]
		if s.TS.Sub(last.TS) < h.cfg.MinInterval {
			h.totalBytes += len(s.Text) - len(last.Text)
			stack[n-1] = s
			h.undo[s.DocID] = stack
			h.redo[s.DocID] = nil
			h.enforceCapsLocked(s.DocID)
			return
		}
	}
	h.undo[s.DocID] = append(stack, s)
	h.totalBytes += len(s.Text)
	h.redo[s.DocID] = nil
	h.enforceCapsLocked(s.DocID)
}

// Undo pops the latest snapshot for a document onto its redo stack.
func (h *History) Undo(docID string) (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	stack := h.undo[docID]
	if len(stack) == 0 {
		return Snapshot{}, false
	}
	s := stack[len(stack)-1]
	h.undo[docID] = stack[:len(stack)-1]
	h.totalBytes -= len(s.Text)
	h.redo[docID] = append(h.redo[docID], s)
	return s, true
}

// Redo pops from the redo stack back onto undo.
func (h *History) Redo(docID string) (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r := h.redo[docID]
	if len(r) == 0 {
		return Snapshot{}, false
	}
	s := r[len(r)-1]
	h.redo[docID] = r[:len(r)-1]
	h.undo[docID] = append(h.undo[docID], s)
	h.totalBytes += len(s.Text)
	h.enforceCapsLocked(docID)
	return s, true
}

// Forget drops all history for a document to free memory.
func (h *History) Forget(docID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.undo[docID] {
		h.totalBytes -= len(s.Text)
	}
	delete(h.undo, docID)
	delete(h.redo, docID)
	if h.totalBytes < 0 {
		h.totalBytes = 0
	}
}

// Stats returns current sizes for diagnostics.
func (h *History) Stats() (totalBytes int, docs int, snapshots int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	docs = len(h.undo)
	for _, v := range h.undo {
		snapshots += len(v)
	}
	return h.totalBytes, docs, snapshots
}

func (h *History) enforceCapsLocked(docID string) {
	if h.cfg.MaxPerDoc > 0 {
		stack := h.undo[docID]
		if len(stack) > h.cfg.MaxPerDoc {
			toDrop := len(stack) - h.cfg.MaxPerDoc
			for i := 0; i < toDrop; i++ {
				h.totalBytes -= len(stack[i].Text)
			}
			h.undo[docID] = append([]Snapshot{}, stack[toDrop:]...)
		}
	}
	// Global memory cap: prune oldest across all documents.
	for h.cfg.MaxBytes > 0 && h.totalBytes > h.cfg.MaxBytes {
		oldestDoc := ""
		oldestIdx := -1
		var oldestTS time.Time
		for doc, stack := range h.undo {
			if len(stack) == 0 {
				continue
			}
			if oldestIdx == -1 || stack[0].TS.Before(oldestTS) {
				oldestDoc = doc
				oldestIdx = 0
				oldestTS = stack[0].TS
			}
		}
		if oldestIdx == -1 {
			break
		}
		stack := h.undo[oldestDoc]
		h.totalBytes -= len(stack[0].Text)
		h.undo[oldestDoc] = stack[1:]
		if len(h.undo[oldestDoc]) == 0 {
			delete(h.undo, oldestDoc)
		}
	}
}
