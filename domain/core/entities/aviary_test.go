package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoograph-backend/domain/core/compatibility"
	"zoograph-backend/domain/core/valueobjects"
)

// arena is a map-backed AnimalResolver for tests
type arena map[string]*Animal

func (a arena) AnimalByID(id valueobjects.AnimalID) (*Animal, bool) {
	animal, ok := a[id.String()]
	return animal, ok
}

func (a arena) add(animal *Animal) *Animal {
	a[animal.ID().String()] = animal
	return animal
}

func mustAnimal(t *testing.T, name, species string, category compatibility.Category) *Animal {
	t.Helper()
	animal, err := NewAnimal(name, species, category, 3, 10)
	require.NoError(t, err)
	return animal
}

func mustAviary(t *testing.T, capacity int) *Aviary {
	t.Helper()
	aviary, err := NewAviary("North Wing", "savannah", 120, capacity)
	require.NoError(t, err)
	return aviary
}

func TestNewAviary_Validation(t *testing.T) {
	_, err := NewAviary("", "savannah", 120, 2)
	assert.Error(t, err)

	_, err = NewAviary("North Wing", "", 120, 2)
	assert.Error(t, err)

	_, err = NewAviary("North Wing", "savannah", 0, 2)
	assert.Error(t, err)

	_, err = NewAviary("North Wing", "savannah", 120, -1)
	assert.Error(t, err)
}

func TestAviary_AdmitAndEvict(t *testing.T) {
	animals := arena{}
	aviary := mustAviary(t, 1)
	rabbit := animals.add(mustAnimal(t, "Bugs", "Rabbit", compatibility.CategoryMammal))

	require.NoError(t, aviary.Admit(rabbit, animals))
	assert.True(t, aviary.Contains(rabbit.ID()))
	assert.True(t, rabbit.IsPlaced())
	assert.True(t, rabbit.AviaryID().Equals(aviary.ID()))
	assert.Equal(t, 1, aviary.OccupantCount())

	require.NoError(t, aviary.Evict(rabbit.ID(), animals))
	assert.False(t, aviary.Contains(rabbit.ID()))
	assert.False(t, rabbit.IsPlaced())
	assert.Zero(t, aviary.OccupantCount())

	// Evicting again reports non-residency
	assert.ErrorIs(t, aviary.Evict(rabbit.ID(), animals), ErrNotResident)
}

func TestAviary_Admit_Nil(t *testing.T) {
	aviary := mustAviary(t, 1)
	assert.ErrorIs(t, aviary.Admit(nil, arena{}), ErrNilAnimal)
}

func TestAviary_Admit_Duplicate(t *testing.T) {
	animals := arena{}
	aviary := mustAviary(t, 2)
	rabbit := animals.add(mustAnimal(t, "Bugs", "Rabbit", compatibility.CategoryMammal))

	require.NoError(t, aviary.Admit(rabbit, animals))
	assert.ErrorIs(t, aviary.Admit(rabbit, animals), ErrAlreadyResident)
	assert.Equal(t, 1, aviary.OccupantCount())
}

func TestAviary_Admit_CapacityReached(t *testing.T) {
	animals := arena{}
	aviary := mustAviary(t, 1)
	first := animals.add(mustAnimal(t, "Bugs", "Rabbit", compatibility.CategoryMammal))
	second := animals.add(mustAnimal(t, "Roger", "Rabbit", compatibility.CategoryMammal))

	require.NoError(t, aviary.Admit(first, animals))
	assert.ErrorIs(t, aviary.Admit(second, animals), ErrAviaryFull)
	assert.False(t, second.IsPlaced(), "rejected admission must not change the animal")
}

func TestAviary_Admit_IncompatibleBothOrders(t *testing.T) {
	animals := arena{}
	lion := animals.add(mustAnimal(t, "Leo", "Lion", compatibility.CategoryMammal))
	tiger := animals.add(mustAnimal(t, "Shere", "Tiger", compatibility.CategoryMammal))

	// Lion first, then tiger
	first := mustAviary(t, 2)
	require.NoError(t, first.Admit(lion, animals))
	assert.ErrorIs(t, first.Admit(tiger, animals), ErrIncompatible)
	require.NoError(t, first.Evict(lion.ID(), animals))

	// Tiger first, then lion: same verdict
	second := mustAviary(t, 2)
	require.NoError(t, second.Admit(tiger, animals))
	assert.ErrorIs(t, second.Admit(lion, animals), ErrIncompatible)
}

func TestAviary_Admit_ChecksEveryOccupant(t *testing.T) {
	animals := arena{}
	aviary := mustAviary(t, 3)
	rabbit := animals.add(mustAnimal(t, "Bugs", "Rabbit", compatibility.CategoryMammal))
	bear := animals.add(mustAnimal(t, "Baloo", "Bear", compatibility.CategoryMammal))
	wolf := animals.add(mustAnimal(t, "Akela", "Wolf", compatibility.CategoryMammal))

	require.NoError(t, aviary.Admit(rabbit, animals))
	require.NoError(t, aviary.Admit(bear, animals))

	// Wolf clears the rabbit check but clashes with the bear
	assert.ErrorIs(t, aviary.Admit(wolf, animals), ErrIncompatible)
	assert.Equal(t, 2, aviary.OccupantCount())
}

func TestAviary_CanAdmit_DanglingOccupantIgnored(t *testing.T) {
	animals := arena{}
	aviary := mustAviary(t, 2)
	ghost := mustAnimal(t, "Ghost", "Lion", compatibility.CategoryMammal)

	// Linked during load but never registered in the arena
	aviary.LinkOccupant(ghost)

	tiger := animals.add(mustAnimal(t, "Shere", "Tiger", compatibility.CategoryMammal))
	assert.NoError(t, aviary.CanAdmit(tiger, animals), "unresolvable occupant cannot veto admission")
}

func TestAviary_LinkOccupant_BypassesChecks(t *testing.T) {
	animals := arena{}
	aviary := mustAviary(t, 1)
	lion := animals.add(mustAnimal(t, "Leo", "Lion", compatibility.CategoryMammal))
	tiger := animals.add(mustAnimal(t, "Shere", "Tiger", compatibility.CategoryMammal))

	aviary.LinkOccupant(lion)
	aviary.LinkOccupant(tiger)

	assert.Equal(t, 2, aviary.OccupantCount())
	assert.True(t, lion.IsPlaced())
	assert.True(t, tiger.IsPlaced())
}

func TestAviary_Occupants_ReturnsCopy(t *testing.T) {
	animals := arena{}
	aviary := mustAviary(t, 2)
	rabbit := animals.add(mustAnimal(t, "Bugs", "Rabbit", compatibility.CategoryMammal))
	require.NoError(t, aviary.Admit(rabbit, animals))

	occupants := aviary.Occupants()
	occupants[0] = valueobjects.NewAnimalID()
	assert.True(t, aviary.Contains(rabbit.ID()))
}

func TestAviary_KeeperAssignment(t *testing.T) {
	aviary := mustAviary(t, 1)
	assert.True(t, aviary.KeeperID().IsZero())

	keeperID := valueobjects.NewKeeperID()
	aviary.AssignKeeper(keeperID)
	assert.True(t, aviary.KeeperID().Equals(keeperID))

	aviary.UnassignKeeper()
	assert.True(t, aviary.KeeperID().IsZero())
}
