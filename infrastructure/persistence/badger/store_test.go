package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zoograph-backend/application/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(InMemoryConfig(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(Config{}, zap.NewNop())
	assert.Error(t, err)
}

func TestAviaryRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewAviaryRepository(newTestStore(t))

	rec := ports.AviaryRecord{
		ID:       "av-1",
		Name:     "North Wing",
		Habitat:  "savannah",
		Area:     120,
		Capacity: 4,
	}
	require.NoError(t, repo.Insert(ctx, rec))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])

	require.NoError(t, repo.UpdateKeeper(ctx, "av-1", "keeper-1"))
	records, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "keeper-1", records[0].KeeperID)

	// Updating an absent record is a no-op
	require.NoError(t, repo.UpdateKeeper(ctx, "missing", "keeper-1"))

	require.NoError(t, repo.Delete(ctx, "av-1"))
	records, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPathRepository_OrderIndependentKeys(t *testing.T) {
	ctx := context.Background()
	repo := NewPathRepository(newTestStore(t))

	require.NoError(t, repo.Insert(ctx, ports.PathRecord{FromID: "b", ToID: "a", Length: 5}))
	require.NoError(t, repo.Insert(ctx, ports.PathRecord{FromID: "a", ToID: "b", Length: 7}))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1, "both endpoint orders address the same record")
	assert.Equal(t, 7.0, records[0].Length)

	require.NoError(t, repo.Delete(ctx, "a", "b"))
	records, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAnimalRepository_UpdateAviary(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepository(newTestStore(t))

	require.NoError(t, repo.Insert(ctx, ports.AnimalRecord{
		ID:      "an-1",
		Name:    "Bugs",
		Species: "Rabbit",
		Weight:  4.5,
	}))
	require.NoError(t, repo.UpdateAviary(ctx, "an-1", "av-1"))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "av-1", records[0].AviaryID)

	require.NoError(t, repo.UpdateAviary(ctx, "an-1", ""))
	records, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records[0].AviaryID)
}

func TestKeeperRepository_UpdateAviaries(t *testing.T) {
	ctx := context.Background()
	repo := NewKeeperRepository(newTestStore(t))

	require.NoError(t, repo.Insert(ctx, ports.KeeperRecord{ID: "kp-1", Name: "Alex", Age: 30}))
	require.NoError(t, repo.UpdateAviaries(ctx, "kp-1", []string{"av-1", "av-2"}))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"av-1", "av-2"}, records[0].AviaryIDs)
}

func TestStore_PrefixesDoNotCollide(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	aviaries := NewAviaryRepository(store)
	animals := NewAnimalRepository(store)

	require.NoError(t, aviaries.Insert(ctx, ports.AviaryRecord{ID: "shared", Name: "A", Habitat: "h", Area: 1, Capacity: 1}))
	require.NoError(t, animals.Insert(ctx, ports.AnimalRecord{ID: "shared", Name: "B", Species: "Owl", Weight: 2}))

	aviaryRecords, err := aviaries.LoadAll(ctx)
	require.NoError(t, err)
	animalRecords, err := animals.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, aviaryRecords, 1)
	assert.Len(t, animalRecords, 1)
}
