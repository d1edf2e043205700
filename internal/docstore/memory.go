package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lucsky/cuid"
)

// Memory is an in-process Store used by tests and by local runs without a
// database. Documents are held as marshalled JSON so reads return copies,
// never aliases of what the writer stored.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
	order       map[string][]string
}

func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[string]json.RawMessage),
		order:       make(map[string][]string),
	}
}

func (m *Memory) Get(ctx context.Context, collection, id string, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("docstore: failed to decode %s/%s: %w", collection, id, err)
	}
	return nil
}

func (m *Memory) Set(ctx context.Context, collection, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: failed to encode %s/%s: %w", collection, id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]json.RawMessage)
	}
	if _, exists := m.collections[collection][id]; !exists {
		m.order[collection] = append(m.order[collection], id)
	}
	m.collections[collection][id] = raw
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collections[collection][id]; !ok {
		return ErrNotFound
	}
	delete(m.collections[collection], id)

	ids := m.order[collection]
	for i, existing := range ids {
		if existing == id {
			m.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) List(ctx context.Context, collection string, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]json.RawMessage, 0, len(m.order[collection]))
	for _, id := range m.order[collection] {
		docs = append(docs, m.collections[collection][id])
	}
	return decodeSlice(collection, docs, out)
}

func (m *Memory) NewID() string {
	return cuid.New()
}
