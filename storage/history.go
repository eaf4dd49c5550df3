package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"demoforge/models"
)

const historyIndexKey = "demo_history_index"

// HistoryStore keeps a bounded, newest-first list of past generations. The
// persisted index holds only lightweight entries; each heavy payload lives in
// a chunked blob referenced by the entry's StorageID. Every mutation keeps
// index and blobs consistent: no blob survives its index entry and no entry
// references a deleted blob.
type HistoryStore struct {
	kv     KV
	chunks *ChunkedStore
	limit  int

	// Serializes read-modify-write of the index. The original design assumed
	// platform-serialized requests; an HTTP server gives no such guarantee.
	mu sync.Mutex
}

func NewHistoryStore(kv KV, chunks *ChunkedStore, limit int) *HistoryStore {
	if limit <= 0 {
		limit = 10
	}
	return &HistoryStore{kv: kv, chunks: chunks, limit: limit}
}

func blobID(timestamp string) string {
	return "gen_" + timestamp
}

// Record stores the entry's payload in the chunked store, prepends a
// lightweight index entry and evicts the oldest entry (index record plus
// blob) once the capacity bound is exceeded.
func (h *HistoryStore) Record(entry models.HistoryEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	payload, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("failed to encode generation payload: %w", err)
	}

	sid := blobID(entry.Timestamp)
	if err := h.chunks.Store(sid, string(payload)); err != nil {
		return err
	}

	index, err := h.loadIndex()
	if err != nil {
		return err
	}

	light := entry
	light.Result = nil
	light.StorageID = sid
	index = append([]models.HistoryEntry{light}, index...)

	for len(index) > h.limit {
		oldest := index[len(index)-1]
		if err := h.chunks.Delete(oldest.StorageID); err != nil {
			return err
		}
		index = index[:len(index)-1]
	}

	return h.saveIndex(index)
}

// List returns the lightweight index, newest first. No blob is fetched.
func (h *HistoryStore) List() ([]models.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loadIndex()
}

// Get returns the fully materialized entry for an exact timestamp, or false
// if no entry matches. A blob that fails to load degrades to the lightweight
// entry rather than hiding the record entirely.
func (h *HistoryStore) Get(timestamp string) (*models.HistoryEntry, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	index, err := h.loadIndex()
	if err != nil {
		return nil, false, err
	}
	for _, entry := range index {
		if entry.Timestamp != timestamp {
			continue
		}
		payload, found, err := h.chunks.Load(entry.StorageID)
		if err != nil {
			log.Printf("failed to load payload for history entry %s: %v", timestamp, err)
		} else if found {
			var result models.GenerationResult
			if err := json.Unmarshal([]byte(payload), &result); err != nil {
				log.Printf("corrupt payload for history entry %s: %v", timestamp, err)
			} else {
				entry.Result = &result
			}
		}
		return &entry, true, nil
	}
	return nil, false, nil
}

// Remove deletes one entry and its blob. Unknown timestamps are a no-op.
func (h *HistoryStore) Remove(timestamp string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	index, err := h.loadIndex()
	if err != nil {
		return err
	}
	for i, entry := range index {
		if entry.Timestamp != timestamp {
			continue
		}
		if err := h.chunks.Delete(entry.StorageID); err != nil {
			return err
		}
		index = append(index[:i], index[i+1:]...)
		return h.saveIndex(index)
	}
	return nil
}

// Clear deletes every blob, then drops the index.
func (h *HistoryStore) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	index, err := h.loadIndex()
	if err != nil {
		return err
	}
	for _, entry := range index {
		if err := h.chunks.Delete(entry.StorageID); err != nil {
			return err
		}
	}
	return h.kv.Delete(historyIndexKey)
}

func (h *HistoryStore) loadIndex() ([]models.HistoryEntry, error) {
	raw, found, err := h.kv.Get(historyIndexKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.HistoryEntry{}, nil
	}
	var index []models.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &index); err != nil {
		return nil, fmt.Errorf("corrupt history index: %w", err)
	}
	return index, nil
}

func (h *HistoryStore) saveIndex(index []models.HistoryEntry) error {
	raw, err := json.Marshal(index)
	if err != nil {
		return err
	}
	return h.kv.Set(historyIndexKey, string(raw))
}
