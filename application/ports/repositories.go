// Package ports declares the persistence interfaces the zoo graph depends
// on. These are hexagonal-architecture ports: the domain never learns which
// store (BadgerDB, in-memory, ...) sits behind them. Records are flat DTOs;
// entities are rebuilt from them through the Reconstruct* factories.
package ports

import "context"

// AviaryRecord is the persisted shape of an aviary
type AviaryRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Habitat  string  `json:"habitat"`
	Area     float64 `json:"area"`
	Capacity int     `json:"capacity"`
	KeeperID string  `json:"keeper_id,omitempty"`
}

// PathRecord is the persisted shape of a path between two aviaries.
// One record corresponds to one logical undirected connection.
type PathRecord struct {
	FromID string  `json:"from_id"`
	ToID   string  `json:"to_id"`
	Length float64 `json:"length"`
}

// AnimalRecord is the persisted shape of an animal
type AnimalRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	Category string  `json:"category"`
	Age      int     `json:"age"`
	Weight   float64 `json:"weight"`
	AviaryID string  `json:"aviary_id,omitempty"`
	Fed      bool    `json:"fed"`
}

// KeeperRecord is the persisted shape of a keeper
type KeeperRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Salary     int      `json:"salary"`
	Experience int      `json:"experience"`
	AviaryIDs  []string `json:"aviary_ids,omitempty"`
}

// AviaryRepository persists aviary records
type AviaryRepository interface {
	// LoadAll retrieves every stored aviary
	LoadAll(ctx context.Context) ([]AviaryRecord, error)

	// Insert stores a new aviary record
	Insert(ctx context.Context, record AviaryRecord) error

	// Delete removes an aviary record
	Delete(ctx context.Context, id string) error

	// UpdateKeeper updates the keeper link of an aviary; an empty keeperID
	// clears the link
	UpdateKeeper(ctx context.Context, aviaryID, keeperID string) error
}

// PathRepository persists path records
type PathRepository interface {
	// LoadAll retrieves every stored path
	LoadAll(ctx context.Context) ([]PathRecord, error)

	// Insert stores a new path record
	Insert(ctx context.Context, record PathRecord) error

	// Delete removes the path between two aviaries, regardless of the
	// order the endpoints were stored in
	Delete(ctx context.Context, fromID, toID string) error
}

// AnimalRepository persists animal records
type AnimalRepository interface {
	// LoadAll retrieves every stored animal
	LoadAll(ctx context.Context) ([]AnimalRecord, error)

	// Insert stores a new animal record
	Insert(ctx context.Context, record AnimalRecord) error

	// Delete removes an animal record
	Delete(ctx context.Context, id string) error

	// UpdateAviary updates the animal's location link; an empty aviaryID
	// marks the animal as unplaced
	UpdateAviary(ctx context.Context, animalID, aviaryID string) error
}

// KeeperRepository persists keeper records
type KeeperRepository interface {
	// LoadAll retrieves every stored keeper
	LoadAll(ctx context.Context) ([]KeeperRecord, error)

	// Insert stores a new keeper record
	Insert(ctx context.Context, record KeeperRecord) error

	// Delete removes a keeper record
	Delete(ctx context.Context, id string) error

	// UpdateAviaries replaces the keeper's aviary assignment list
	UpdateAviaries(ctx context.Context, keeperID string, aviaryIDs []string) error
}
