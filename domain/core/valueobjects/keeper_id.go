package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// KeeperID is a value object identifying a zoo keeper
type KeeperID struct {
	value string
}

// NewKeeperID creates a new random KeeperID
func NewKeeperID() KeeperID {
	return KeeperID{value: uuid.New().String()}
}

// NewKeeperIDFromString creates a KeeperID from an existing string
func NewKeeperIDFromString(id string) (KeeperID, error) {
	if id == "" {
		return KeeperID{}, errors.New("keeper ID cannot be empty")
	}
	if !isValidUUID(id) {
		return KeeperID{}, errors.New("keeper ID must be a valid UUID")
	}
	return KeeperID{value: id}, nil
}

// String returns the string representation of the KeeperID
func (id KeeperID) String() string {
	return id.value
}

// Equals checks if two KeeperIDs are equal
func (id KeeperID) Equals(other KeeperID) bool {
	return id.value == other.value
}

// IsZero checks if the KeeperID is the zero value
func (id KeeperID) IsZero() bool {
	return id.value == ""
}
