package entities

import (
	"fmt"

	"zoograph-backend/domain/core/compatibility"
	"zoograph-backend/domain/core/valueobjects"
	pkgerrors "zoograph-backend/pkg/errors"
)

// Animal is a placeable resource: it lives in at most one aviary at a time,
// tracked by its aviary ID. The species/category pair drives compatibility
// checks during admission.
type Animal struct {
	id       valueobjects.AnimalID
	name     string
	species  string
	category compatibility.Category
	age      int
	weight   float64
	aviaryID valueobjects.AviaryID
	fed      bool
}

// NewAnimal creates a new animal with business rule validation.
// The animal starts unassigned; it gains an aviary ID only after a
// successful admission.
func NewAnimal(name, species string, category compatibility.Category, age int, weight float64) (*Animal, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("animal name cannot be empty")
	}
	if species == "" {
		return nil, pkgerrors.NewValidationError("animal species cannot be empty")
	}
	if !compatibility.IsKnownCategory(category) {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("unknown animal category: %s", category))
	}
	if age < 0 {
		return nil, pkgerrors.NewValidationError("animal age cannot be negative")
	}
	if weight <= 0 {
		return nil, pkgerrors.NewValidationError("animal weight must be positive")
	}

	return &Animal{
		id:       valueobjects.NewAnimalID(),
		name:     name,
		species:  species,
		category: category,
		age:      age,
		weight:   weight,
	}, nil
}

// ReconstructAnimal rebuilds an animal from repository data
func ReconstructAnimal(
	id valueobjects.AnimalID,
	name, species string,
	category compatibility.Category,
	age int,
	weight float64,
	aviaryID valueobjects.AviaryID,
	fed bool,
) (*Animal, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("animal name cannot be empty")
	}
	if !compatibility.IsKnownCategory(category) {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("unknown animal category: %s", category))
	}

	return &Animal{
		id:       id,
		name:     name,
		species:  species,
		category: category,
		age:      age,
		weight:   weight,
		aviaryID: aviaryID,
		fed:      fed,
	}, nil
}

// ID returns the animal's unique identifier
func (a *Animal) ID() valueobjects.AnimalID {
	return a.id
}

// Name returns the animal's display name
func (a *Animal) Name() string {
	return a.name
}

// Species returns the biological species
func (a *Animal) Species() string {
	return a.species
}

// Category returns the biological category
func (a *Animal) Category() compatibility.Category {
	return a.category
}

// Age returns the animal's age in years
func (a *Animal) Age() int {
	return a.age
}

// Weight returns the animal's weight in kilograms
func (a *Animal) Weight() float64 {
	return a.weight
}

// AviaryID returns the aviary the animal lives in; zero when unassigned
func (a *Animal) AviaryID() valueobjects.AviaryID {
	return a.aviaryID
}

// IsPlaced reports whether the animal currently lives in an aviary
func (a *Animal) IsPlaced() bool {
	return !a.aviaryID.IsZero()
}

// IsFed reports whether the animal has been fed
func (a *Animal) IsFed() bool {
	return a.fed
}

// Subject returns the compatibility view of the animal
func (a *Animal) Subject() compatibility.Subject {
	return compatibility.Subject{Species: a.species, Category: a.category}
}

// Rename changes the animal's name
func (a *Animal) Rename(name string) error {
	if name == "" {
		return pkgerrors.NewValidationError("animal name cannot be empty")
	}
	a.name = name
	return nil
}

// SetAge updates the animal's age
func (a *Animal) SetAge(age int) error {
	if age < 0 {
		return pkgerrors.NewValidationError("animal age cannot be negative")
	}
	a.age = age
	return nil
}

// SetWeight updates the animal's weight
func (a *Animal) SetWeight(weight float64) error {
	if weight <= 0 {
		return pkgerrors.NewValidationError("animal weight must be positive")
	}
	a.weight = weight
	return nil
}

// Feed marks the animal as fed; feeding an already fed animal is reported
// so callers can warn instead of silently re-feeding
func (a *Animal) Feed() bool {
	if a.fed {
		return false
	}
	a.fed = true
	return true
}

// assignAviary and clearAviary are paired updates driven by the aviary's
// admission engine; they are unexported so occupancy and the location
// pointer cannot drift apart.

func (a *Animal) assignAviary(id valueobjects.AviaryID) {
	a.aviaryID = id
}

func (a *Animal) clearAviary() {
	a.aviaryID = valueobjects.AviaryID{}
}
