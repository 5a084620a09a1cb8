package store

import (
	"sync"

	"github.com/brokerdesk/carrier-sales-api/models"
)

// MemoryStore is an in-memory RecordStore used in tests. It mirrors the
// FileStore contract: unknown collections load as empty, Save replaces the
// collection, and records are copied on the way in and out so callers cannot
// mutate stored state.
type MemoryStore struct {
	mutex       sync.Mutex
	collections map[string][]models.Record
}

// NewMemoryStore creates an empty in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]models.Record),
	}
}

func (ms *MemoryStore) Load(name string) ([]models.Record, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	return copyRecords(ms.collections[name]), nil
}

func (ms *MemoryStore) Save(name string, records []models.Record) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	ms.collections[name] = copyRecords(records)
	return nil
}

func (ms *MemoryStore) Append(name string, record models.Record) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	ms.collections[name] = append(ms.collections[name], record.Clone())
	return nil
}

func copyRecords(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		out = append(out, r.Clone())
	}
	return out
}
