package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// AnimalID is a value object identifying an animal
type AnimalID struct {
	value string
}

// NewAnimalID creates a new random AnimalID
func NewAnimalID() AnimalID {
	return AnimalID{value: uuid.New().String()}
}

// NewAnimalIDFromString creates an AnimalID from an existing string
func NewAnimalIDFromString(id string) (AnimalID, error) {
	if id == "" {
		return AnimalID{}, errors.New("animal ID cannot be empty")
	}
	if !isValidUUID(id) {
		return AnimalID{}, errors.New("animal ID must be a valid UUID")
	}
	return AnimalID{value: id}, nil
}

// String returns the string representation of the AnimalID
func (id AnimalID) String() string {
	return id.value
}

// Equals checks if two AnimalIDs are equal
func (id AnimalID) Equals(other AnimalID) bool {
	return id.value == other.value
}

// IsZero checks if the AnimalID is the zero value
func (id AnimalID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id AnimalID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *AnimalID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("AnimalID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
