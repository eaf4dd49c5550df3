// Package storage persists generation history through a key-value medium
// whose per-key value size is capped. Large payloads are split into indexed
// fragments tied together by a manifest record.
package storage

import (
	"encoding/json"
	"fmt"
)

// KV is the minimal capability the storage layer needs from its backing
// medium. db.DB satisfies it; tests use an in-memory map.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
	Delete(key string) error
}

type chunkManifest struct {
	TotalChunks int `json:"totalChunks"`
}

// ChunkedStore stores arbitrarily large string blobs as fixed-size fragments
// under {base}_chunk_{i} plus a {base}_meta manifest. Reassembling the
// fragments in index order reproduces the original string exactly.
type ChunkedStore struct {
	kv        KV
	chunkSize int
}

func NewChunkedStore(kv KV, chunkSize int) *ChunkedStore {
	if chunkSize <= 0 {
		chunkSize = 8000
	}
	return &ChunkedStore{kv: kv, chunkSize: chunkSize}
}

func metaKey(baseKey string) string {
	return baseKey + "_meta"
}

func chunkKey(baseKey string, i int) string {
	return fmt.Sprintf("%s_chunk_%d", baseKey, i)
}

func (s *ChunkedStore) Store(baseKey string, data string) error {
	// Replacing an existing blob must not leave stale fragments behind when
	// the new value needs fewer chunks.
	if err := s.Delete(baseKey); err != nil {
		return err
	}

	total := 0
	for offset := 0; offset < len(data); offset += s.chunkSize {
		end := offset + s.chunkSize
		if end > len(data) {
			end = len(data)
		}
		if err := s.kv.Set(chunkKey(baseKey, total), data[offset:end]); err != nil {
			return fmt.Errorf("failed to write chunk %d of %s: %w", total, baseKey, err)
		}
		total++
	}

	manifest, err := json.Marshal(chunkManifest{TotalChunks: total})
	if err != nil {
		return err
	}
	if err := s.kv.Set(metaKey(baseKey), string(manifest)); err != nil {
		return fmt.Errorf("failed to write manifest for %s: %w", baseKey, err)
	}
	return nil
}

// Load reassembles a blob. The second return value is false when no manifest
// exists. A fragment named by the manifest but absent from the store is an
// error, not an empty string - silently dropping a fragment would corrupt the
// reconstructed payload without any signal.
func (s *ChunkedStore) Load(baseKey string) (string, bool, error) {
	raw, found, err := s.kv.Get(metaKey(baseKey))
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}

	var manifest chunkManifest
	if err := json.Unmarshal([]byte(raw), &manifest); err != nil {
		return "", false, fmt.Errorf("corrupt manifest for %s: %w", baseKey, err)
	}

	var data []byte
	for i := 0; i < manifest.TotalChunks; i++ {
		chunk, ok, err := s.kv.Get(chunkKey(baseKey, i))
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, fmt.Errorf("fragment %d of %s missing", i, baseKey)
		}
		data = append(data, chunk...)
	}
	return string(data), true, nil
}

// Delete removes every fragment named by the manifest, then the manifest
// itself. Deleting a key that was never stored is a no-op.
func (s *ChunkedStore) Delete(baseKey string) error {
	raw, found, err := s.kv.Get(metaKey(baseKey))
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	var manifest chunkManifest
	if err := json.Unmarshal([]byte(raw), &manifest); err == nil {
		for i := 0; i < manifest.TotalChunks; i++ {
			if err := s.kv.Delete(chunkKey(baseKey, i)); err != nil {
				return err
			}
		}
	}
	return s.kv.Delete(metaKey(baseKey))
}
