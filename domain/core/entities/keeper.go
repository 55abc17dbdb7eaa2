package entities

import (
	"zoograph-backend/domain/core/valueobjects"
	pkgerrors "zoograph-backend/pkg/errors"
)

// Keeper is a zoo employee tracked only for aviary assignment bookkeeping.
type Keeper struct {
	id         valueobjects.KeeperID
	name       string
	age        int
	salary     int
	experience int
	aviaryIDs  []valueobjects.AviaryID
}

// NewKeeper creates a new keeper with business rule validation
func NewKeeper(name string, age, salary, experience int) (*Keeper, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("keeper name cannot be empty")
	}
	if age <= 0 {
		return nil, pkgerrors.NewValidationError("keeper age must be positive")
	}
	if salary < 0 {
		return nil, pkgerrors.NewValidationError("keeper salary cannot be negative")
	}
	if experience < 0 {
		return nil, pkgerrors.NewValidationError("keeper experience cannot be negative")
	}

	return &Keeper{
		id:         valueobjects.NewKeeperID(),
		name:       name,
		age:        age,
		salary:     salary,
		experience: experience,
	}, nil
}

// ReconstructKeeper rebuilds a keeper from repository data
func ReconstructKeeper(
	id valueobjects.KeeperID,
	name string,
	age, salary, experience int,
	aviaryIDs []valueobjects.AviaryID,
) (*Keeper, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("keeper name cannot be empty")
	}

	keeper := &Keeper{
		id:         id,
		name:       name,
		age:        age,
		salary:     salary,
		experience: experience,
	}
	keeper.aviaryIDs = append(keeper.aviaryIDs, aviaryIDs...)
	return keeper, nil
}

// ID returns the keeper's unique identifier
func (k *Keeper) ID() valueobjects.KeeperID {
	return k.id
}

// Name returns the keeper's name
func (k *Keeper) Name() string {
	return k.name
}

// Age returns the keeper's age
func (k *Keeper) Age() int {
	return k.age
}

// Salary returns the keeper's salary
func (k *Keeper) Salary() int {
	return k.salary
}

// Experience returns the keeper's years of experience
func (k *Keeper) Experience() int {
	return k.experience
}

// AviaryIDs returns the aviaries this keeper is responsible for
func (k *Keeper) AviaryIDs() []valueobjects.AviaryID {
	// Return a copy to maintain encapsulation
	ids := make([]valueobjects.AviaryID, len(k.aviaryIDs))
	copy(ids, k.aviaryIDs)
	return ids
}

// IsAssigned reports whether the keeper covers at least one aviary
func (k *Keeper) IsAssigned() bool {
	return len(k.aviaryIDs) > 0
}

// Covers reports whether the keeper is assigned to the given aviary
func (k *Keeper) Covers(id valueobjects.AviaryID) bool {
	for _, a := range k.aviaryIDs {
		if a.Equals(id) {
			return true
		}
	}
	return false
}

// AssignAviary adds an aviary to the keeper's responsibilities; adding the
// same aviary twice is a no-op
func (k *Keeper) AssignAviary(id valueobjects.AviaryID) {
	if k.Covers(id) {
		return
	}
	k.aviaryIDs = append(k.aviaryIDs, id)
}

// UnassignAviary removes an aviary from the keeper's responsibilities
func (k *Keeper) UnassignAviary(id valueobjects.AviaryID) bool {
	for i, a := range k.aviaryIDs {
		if a.Equals(id) {
			k.aviaryIDs = append(k.aviaryIDs[:i], k.aviaryIDs[i+1:]...)
			return true
		}
	}
	return false
}
