package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// AviaryID is a value object identifying an aviary (a vertex of the zoo graph)
// Value objects are immutable and have no identity beyond their value
type AviaryID struct {
	value string
}

// NewAviaryID creates a new random AviaryID
func NewAviaryID() AviaryID {
	return AviaryID{value: uuid.New().String()}
}

// NewAviaryIDFromString creates an AviaryID from an existing string
func NewAviaryIDFromString(id string) (AviaryID, error) {
	if id == "" {
		return AviaryID{}, errors.New("aviary ID cannot be empty")
	}
	if !isValidUUID(id) {
		return AviaryID{}, errors.New("aviary ID must be a valid UUID")
	}
	return AviaryID{value: id}, nil
}

// String returns the string representation of the AviaryID
func (id AviaryID) String() string {
	return id.value
}

// Equals checks if two AviaryIDs are equal
func (id AviaryID) Equals(other AviaryID) bool {
	return id.value == other.value
}

// IsZero checks if the AviaryID is the zero value
func (id AviaryID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id AviaryID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *AviaryID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("AviaryID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

// isValidUUID validates if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
