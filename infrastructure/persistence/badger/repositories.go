package badger

import (
	"context"
	"encoding/json"
	"fmt"

	"zoograph-backend/application/ports"
	pkgerrors "zoograph-backend/pkg/errors"
)

const (
	aviaryPrefix = "aviary/"
	pathPrefix   = "path/"
	animalPrefix = "animal/"
	keeperPrefix = "keeper/"
)

// AviaryRepository persists aviary records
type AviaryRepository struct {
	store *Store
}

// NewAviaryRepository creates a badger-backed aviary repository
func NewAviaryRepository(store *Store) *AviaryRepository {
	return &AviaryRepository{store: store}
}

func (r *AviaryRepository) LoadAll(ctx context.Context) ([]ports.AviaryRecord, error) {
	var records []ports.AviaryRecord
	err := r.store.scan([]byte(aviaryPrefix), func(value []byte) error {
		var rec ports.AviaryRecord
		if err := json.Unmarshal(value, &rec); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("load aviaries", err)
	}
	return records, nil
}

func (r *AviaryRepository) Insert(ctx context.Context, record ports.AviaryRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return pkgerrors.NewDatabaseError("encode aviary", err)
	}
	if err := r.store.set([]byte(aviaryPrefix+record.ID), value); err != nil {
		return pkgerrors.NewDatabaseError("insert aviary", err)
	}
	return nil
}

func (r *AviaryRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.remove([]byte(aviaryPrefix + id)); err != nil {
		return pkgerrors.NewDatabaseError("delete aviary", err)
	}
	return nil
}

func (r *AviaryRepository) UpdateKeeper(ctx context.Context, id, keeperID string) error {
	value, found, err := r.store.get([]byte(aviaryPrefix + id))
	if err != nil {
		return pkgerrors.NewDatabaseError("read aviary", err)
	}
	if !found {
		return nil
	}
	var rec ports.AviaryRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		return pkgerrors.NewDatabaseError("decode aviary", err)
	}
	rec.KeeperID = keeperID
	return r.Insert(ctx, rec)
}

// PathRepository persists path records. The key is built from the sorted
// endpoint pair, so a path is stored once regardless of argument order.
type PathRepository struct {
	store *Store
}

// NewPathRepository creates a badger-backed path repository
func NewPathRepository(store *Store) *PathRepository {
	return &PathRepository{store: store}
}

func pathKey(fromID, toID string) []byte {
	if toID < fromID {
		fromID, toID = toID, fromID
	}
	return []byte(fmt.Sprintf("%s%s/%s", pathPrefix, fromID, toID))
}

func (r *PathRepository) LoadAll(ctx context.Context) ([]ports.PathRecord, error) {
	var records []ports.PathRecord
	err := r.store.scan([]byte(pathPrefix), func(value []byte) error {
		var rec ports.PathRecord
		if err := json.Unmarshal(value, &rec); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("load paths", err)
	}
	return records, nil
}

func (r *PathRepository) Insert(ctx context.Context, record ports.PathRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return pkgerrors.NewDatabaseError("encode path", err)
	}
	if err := r.store.set(pathKey(record.FromID, record.ToID), value); err != nil {
		return pkgerrors.NewDatabaseError("insert path", err)
	}
	return nil
}

func (r *PathRepository) Delete(ctx context.Context, fromID, toID string) error {
	if err := r.store.remove(pathKey(fromID, toID)); err != nil {
		return pkgerrors.NewDatabaseError("delete path", err)
	}
	return nil
}

// AnimalRepository persists animal records
type AnimalRepository struct {
	store *Store
}

// NewAnimalRepository creates a badger-backed animal repository
func NewAnimalRepository(store *Store) *AnimalRepository {
	return &AnimalRepository{store: store}
}

func (r *AnimalRepository) LoadAll(ctx context.Context) ([]ports.AnimalRecord, error) {
	var records []ports.AnimalRecord
	err := r.store.scan([]byte(animalPrefix), func(value []byte) error {
		var rec ports.AnimalRecord
		if err := json.Unmarshal(value, &rec); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("load animals", err)
	}
	return records, nil
}

func (r *AnimalRepository) Insert(ctx context.Context, record ports.AnimalRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return pkgerrors.NewDatabaseError("encode animal", err)
	}
	if err := r.store.set([]byte(animalPrefix+record.ID), value); err != nil {
		return pkgerrors.NewDatabaseError("insert animal", err)
	}
	return nil
}

func (r *AnimalRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.remove([]byte(animalPrefix + id)); err != nil {
		return pkgerrors.NewDatabaseError("delete animal", err)
	}
	return nil
}

func (r *AnimalRepository) UpdateAviary(ctx context.Context, id, aviaryID string) error {
	value, found, err := r.store.get([]byte(animalPrefix + id))
	if err != nil {
		return pkgerrors.NewDatabaseError("read animal", err)
	}
	if !found {
		return nil
	}
	var rec ports.AnimalRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		return pkgerrors.NewDatabaseError("decode animal", err)
	}
	rec.AviaryID = aviaryID
	return r.Insert(ctx, rec)
}

// KeeperRepository persists keeper records
type KeeperRepository struct {
	store *Store
}

// NewKeeperRepository creates a badger-backed keeper repository
func NewKeeperRepository(store *Store) *KeeperRepository {
	return &KeeperRepository{store: store}
}

func (r *KeeperRepository) LoadAll(ctx context.Context) ([]ports.KeeperRecord, error) {
	var records []ports.KeeperRecord
	err := r.store.scan([]byte(keeperPrefix), func(value []byte) error {
		var rec ports.KeeperRecord
		if err := json.Unmarshal(value, &rec); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("load keepers", err)
	}
	return records, nil
}

func (r *KeeperRepository) Insert(ctx context.Context, record ports.KeeperRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return pkgerrors.NewDatabaseError("encode keeper", err)
	}
	if err := r.store.set([]byte(keeperPrefix+record.ID), value); err != nil {
		return pkgerrors.NewDatabaseError("insert keeper", err)
	}
	return nil
}

func (r *KeeperRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.remove([]byte(keeperPrefix + id)); err != nil {
		return pkgerrors.NewDatabaseError("delete keeper", err)
	}
	return nil
}

func (r *KeeperRepository) UpdateAviaries(ctx context.Context, id string, aviaryIDs []string) error {
	value, found, err := r.store.get([]byte(keeperPrefix + id))
	if err != nil {
		return pkgerrors.NewDatabaseError("read keeper", err)
	}
	if !found {
		return nil
	}
	var rec ports.KeeperRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		return pkgerrors.NewDatabaseError("decode keeper", err)
	}
	rec.AviaryIDs = append([]string(nil), aviaryIDs...)
	return r.Insert(ctx, rec)
}
