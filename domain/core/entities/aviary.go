package entities

import (
	"errors"

	"zoograph-backend/domain/core/compatibility"
	"zoograph-backend/domain/core/valueobjects"
	pkgerrors "zoograph-backend/pkg/errors"
)

// Admission failures are sentinel errors so callers can tell the causes
// apart instead of guessing from a bare false.
var (
	ErrNilAnimal       = errors.New("aviary: animal is nil")
	ErrAlreadyResident = errors.New("aviary: animal is already an occupant")
	ErrAviaryFull      = errors.New("aviary: capacity reached")
	ErrIncompatible    = errors.New("aviary: animal is incompatible with an occupant")
	ErrNotResident     = errors.New("aviary: animal is not an occupant")
)

// AnimalResolver resolves occupant IDs to animal entities. The animal arena
// (the zoo graph) is the single owner of Animal values; aviaries hold IDs
// only, so admission checks borrow the arena through this port.
type AnimalResolver interface {
	AnimalByID(id valueobjects.AnimalID) (*Animal, bool)
}

// Aviary is a vertex of the zoo graph: a capacity-bounded enclosure holding
// a compatibility-checked set of animals.
type Aviary struct {
	id        valueobjects.AviaryID
	name      string
	habitat   string
	area      float64
	capacity  int
	occupants []valueobjects.AnimalID
	keeperID  valueobjects.KeeperID
}

// NewAviary creates a new aviary with business rule validation
func NewAviary(name, habitat string, area float64, capacity int) (*Aviary, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("aviary name cannot be empty")
	}
	if habitat == "" {
		return nil, pkgerrors.NewValidationError("aviary habitat cannot be empty")
	}
	if area <= 0 {
		return nil, pkgerrors.NewValidationError("aviary area must be positive")
	}
	if capacity < 0 {
		return nil, pkgerrors.NewValidationError("aviary capacity cannot be negative")
	}

	return &Aviary{
		id:       valueobjects.NewAviaryID(),
		name:     name,
		habitat:  habitat,
		area:     area,
		capacity: capacity,
	}, nil
}

// ReconstructAviary rebuilds an aviary from repository data. Occupants are
// linked separately during load-time reconciliation, once the animal arena
// has been populated.
func ReconstructAviary(
	id valueobjects.AviaryID,
	name, habitat string,
	area float64,
	capacity int,
	keeperID valueobjects.KeeperID,
) (*Aviary, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("aviary name cannot be empty")
	}
	if capacity < 0 {
		return nil, pkgerrors.NewValidationError("aviary capacity cannot be negative")
	}

	return &Aviary{
		id:       id,
		name:     name,
		habitat:  habitat,
		area:     area,
		capacity: capacity,
		keeperID: keeperID,
	}, nil
}

// ID returns the aviary's unique identifier
func (av *Aviary) ID() valueobjects.AviaryID {
	return av.id
}

// Name returns the aviary's display name
func (av *Aviary) Name() string {
	return av.name
}

// Habitat returns the enclosure type (savannah, aquarium, terrarium, ...)
func (av *Aviary) Habitat() string {
	return av.habitat
}

// Area returns the enclosure area in square meters
func (av *Aviary) Area() float64 {
	return av.area
}

// Capacity returns the maximum number of occupants
func (av *Aviary) Capacity() int {
	return av.capacity
}

// KeeperID returns the assigned keeper; zero when unassigned
func (av *Aviary) KeeperID() valueobjects.KeeperID {
	return av.keeperID
}

// Occupants returns the occupant IDs in admission order
func (av *Aviary) Occupants() []valueobjects.AnimalID {
	// Return a copy to maintain encapsulation
	occupants := make([]valueobjects.AnimalID, len(av.occupants))
	copy(occupants, av.occupants)
	return occupants
}

// OccupantCount returns the current number of occupants
func (av *Aviary) OccupantCount() int {
	return len(av.occupants)
}

// Rename changes the aviary's name
func (av *Aviary) Rename(name string) error {
	if name == "" {
		return pkgerrors.NewValidationError("aviary name cannot be empty")
	}
	av.name = name
	return nil
}

// AssignKeeper records the keeper responsible for this aviary
func (av *Aviary) AssignKeeper(id valueobjects.KeeperID) {
	av.keeperID = id
}

// UnassignKeeper clears the keeper assignment
func (av *Aviary) UnassignKeeper() {
	av.keeperID = valueobjects.KeeperID{}
}

// Contains reports whether the animal with the given ID is an occupant
func (av *Aviary) Contains(id valueobjects.AnimalID) bool {
	for _, occ := range av.occupants {
		if occ.Equals(id) {
			return true
		}
	}
	return false
}

// CanAdmit checks whether the candidate may occupy this aviary. A nil
// verdict means admissible; otherwise one of the sentinel errors above
// names the first constraint violated. Compatibility is evaluated in both
// directions against every occupant, since the rule table is written
// one-sidedly.
func (av *Aviary) CanAdmit(candidate *Animal, animals AnimalResolver) error {
	if candidate == nil {
		return ErrNilAnimal
	}
	if av.Contains(candidate.ID()) {
		return ErrAlreadyResident
	}
	if len(av.occupants) >= av.capacity {
		return ErrAviaryFull
	}

	for _, occID := range av.occupants {
		existing, ok := animals.AnimalByID(occID)
		if !ok {
			// Dangling occupant reference; it cannot veto an admission.
			continue
		}
		if !compatibility.Compatible(existing.Subject(), candidate.Subject()) {
			return ErrIncompatible
		}
	}

	return nil
}

// Admit places the candidate into the aviary. All-or-nothing: on any
// constraint violation no state changes. On success the occupant list and
// the animal's location pointer are updated together.
func (av *Aviary) Admit(candidate *Animal, animals AnimalResolver) error {
	if err := av.CanAdmit(candidate, animals); err != nil {
		return err
	}

	av.occupants = append(av.occupants, candidate.ID())
	candidate.assignAviary(av.id)
	return nil
}

// Evict removes the first occupant with the given ID and clears the
// animal's location pointer as a paired update. Returns ErrNotResident
// when the animal is not an occupant.
func (av *Aviary) Evict(id valueobjects.AnimalID, animals AnimalResolver) error {
	for i, occ := range av.occupants {
		if occ.Equals(id) {
			av.occupants = append(av.occupants[:i], av.occupants[i+1:]...)
			if animal, ok := animals.AnimalByID(id); ok {
				animal.clearAviary()
			}
			return nil
		}
	}
	return ErrNotResident
}

// LinkOccupant attaches an already-persisted occupant during load-time
// reconciliation, bypassing admission checks: stored data is trusted as-is
// so a partially inconsistent dataset still loads.
func (av *Aviary) LinkOccupant(animal *Animal) {
	av.occupants = append(av.occupants, animal.ID())
	animal.assignAviary(av.id)
}
