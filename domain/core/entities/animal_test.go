package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoograph-backend/domain/core/compatibility"
)

func TestNewAnimal_Validation(t *testing.T) {
	cases := []struct {
		name     string
		animal   string
		species  string
		category compatibility.Category
		age      int
		weight   float64
	}{
		{"empty name", "", "Rabbit", compatibility.CategoryMammal, 1, 2},
		{"empty species", "Bugs", "", compatibility.CategoryMammal, 1, 2},
		{"unknown category", "Bugs", "Rabbit", "Dinosaur", 1, 2},
		{"negative age", "Bugs", "Rabbit", compatibility.CategoryMammal, -1, 2},
		{"zero weight", "Bugs", "Rabbit", compatibility.CategoryMammal, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAnimal(tc.animal, tc.species, tc.category, tc.age, tc.weight)
			assert.Error(t, err)
		})
	}
}

func TestNewAnimal_StartsUnplacedAndUnfed(t *testing.T) {
	animal, err := NewAnimal("Bugs", "Rabbit", compatibility.CategoryMammal, 2, 4.5)
	require.NoError(t, err)

	assert.False(t, animal.IsPlaced())
	assert.False(t, animal.IsFed())
	assert.False(t, animal.ID().IsZero())
	assert.Equal(t, compatibility.Subject{Species: "Rabbit", Category: compatibility.CategoryMammal}, animal.Subject())
}

func TestAnimal_Feed(t *testing.T) {
	animal, err := NewAnimal("Bugs", "Rabbit", compatibility.CategoryMammal, 2, 4.5)
	require.NoError(t, err)

	assert.True(t, animal.Feed())
	assert.True(t, animal.IsFed())
	assert.False(t, animal.Feed(), "feeding twice is reported")
}

func TestAnimal_Updates(t *testing.T) {
	animal, err := NewAnimal("Bugs", "Rabbit", compatibility.CategoryMammal, 2, 4.5)
	require.NoError(t, err)

	require.NoError(t, animal.Rename("Roger"))
	assert.Equal(t, "Roger", animal.Name())
	assert.Error(t, animal.Rename(""))

	require.NoError(t, animal.SetAge(3))
	assert.Equal(t, 3, animal.Age())
	assert.Error(t, animal.SetAge(-1))

	require.NoError(t, animal.SetWeight(5))
	assert.Equal(t, 5.0, animal.Weight())
	assert.Error(t, animal.SetWeight(0))
}
