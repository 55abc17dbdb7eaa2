// Package memory provides map-backed repository implementations. They are
// used by tests and by ephemeral deployments that do not need the zoo to
// survive a restart.
package memory

import (
	"context"
	"sync"

	"zoograph-backend/application/ports"
)

// AviaryRepository stores aviary records in a map
type AviaryRepository struct {
	mu      sync.RWMutex
	records map[string]ports.AviaryRecord
}

// NewAviaryRepository creates an empty in-memory aviary repository
func NewAviaryRepository() *AviaryRepository {
	return &AviaryRepository{records: make(map[string]ports.AviaryRecord)}
}

func (r *AviaryRepository) LoadAll(ctx context.Context) ([]ports.AviaryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]ports.AviaryRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	return records, nil
}

func (r *AviaryRepository) Insert(ctx context.Context, record ports.AviaryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *AviaryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *AviaryRepository) UpdateKeeper(ctx context.Context, id, keeperID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		rec.KeeperID = keeperID
		r.records[id] = rec
	}
	return nil
}

// PathRepository stores path records keyed by their endpoint pair. Keys are
// canonicalized so Delete(a, b) and Delete(b, a) hit the same record.
type PathRepository struct {
	mu      sync.RWMutex
	records map[[2]string]ports.PathRecord
}

// NewPathRepository creates an empty in-memory path repository
func NewPathRepository() *PathRepository {
	return &PathRepository{records: make(map[[2]string]ports.PathRecord)}
}

func pathKey(fromID, toID string) [2]string {
	if toID < fromID {
		fromID, toID = toID, fromID
	}
	return [2]string{fromID, toID}
}

func (r *PathRepository) LoadAll(ctx context.Context) ([]ports.PathRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]ports.PathRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	return records, nil
}

func (r *PathRepository) Insert(ctx context.Context, record ports.PathRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[pathKey(record.FromID, record.ToID)] = record
	return nil
}

func (r *PathRepository) Delete(ctx context.Context, fromID, toID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, pathKey(fromID, toID))
	return nil
}

// AnimalRepository stores animal records in a map
type AnimalRepository struct {
	mu      sync.RWMutex
	records map[string]ports.AnimalRecord
}

// NewAnimalRepository creates an empty in-memory animal repository
func NewAnimalRepository() *AnimalRepository {
	return &AnimalRepository{records: make(map[string]ports.AnimalRecord)}
}

func (r *AnimalRepository) LoadAll(ctx context.Context) ([]ports.AnimalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]ports.AnimalRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	return records, nil
}

func (r *AnimalRepository) Insert(ctx context.Context, record ports.AnimalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *AnimalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *AnimalRepository) UpdateAviary(ctx context.Context, id, aviaryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		rec.AviaryID = aviaryID
		r.records[id] = rec
	}
	return nil
}

// KeeperRepository stores keeper records in a map
type KeeperRepository struct {
	mu      sync.RWMutex
	records map[string]ports.KeeperRecord
}

// NewKeeperRepository creates an empty in-memory keeper repository
func NewKeeperRepository() *KeeperRepository {
	return &KeeperRepository{records: make(map[string]ports.KeeperRecord)}
}

func (r *KeeperRepository) LoadAll(ctx context.Context) ([]ports.KeeperRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]ports.KeeperRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	return records, nil
}

func (r *KeeperRepository) Insert(ctx context.Context, record ports.KeeperRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *KeeperRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *KeeperRepository) UpdateAviaries(ctx context.Context, id string, aviaryIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		rec.AviaryIDs = append([]string(nil), aviaryIDs...)
		r.records[id] = rec
	}
	return nil
}
