package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"zoograph-backend/application/ports"
	"zoograph-backend/domain/core/compatibility"
	"zoograph-backend/domain/core/entities"
	"zoograph-backend/domain/core/valueobjects"
	pkgerrors "zoograph-backend/pkg/errors"
)

// The ZooGraph is the single owner of every Animal value; aviaries hold
// occupant IDs only. This file covers the arena and placement operations.

// AnimalByID implements entities.AnimalResolver for the admission logic
func (zg *ZooGraph) AnimalByID(id valueobjects.AnimalID) (*entities.Animal, bool) {
	animal, ok := zg.animals[id.String()]
	return animal, ok
}

// GetAnimal returns the animal with the given ID
func (zg *ZooGraph) GetAnimal(id string) (*entities.Animal, error) {
	animal, ok := zg.animals[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("animal")
	}
	return animal, nil
}

// Animals returns every animal in the arena
func (zg *ZooGraph) Animals() []*entities.Animal {
	animals := make([]*entities.Animal, 0, len(zg.animals))
	for _, animal := range zg.animals {
		animals = append(animals, animal)
	}
	return animals
}

// CreateAnimal registers a new, initially unplaced animal and persists it
func (zg *ZooGraph) CreateAnimal(
	ctx context.Context,
	name, species string,
	category compatibility.Category,
	age int,
	weight float64,
) (*entities.Animal, error) {
	animal, err := entities.NewAnimal(name, species, category, age, weight)
	if err != nil {
		return nil, err
	}
	zg.animals[animal.ID().String()] = animal

	record := ports.AnimalRecord{
		ID:       animal.ID().String(),
		Name:     animal.Name(),
		Species:  animal.Species(),
		Category: string(animal.Category()),
		Age:      animal.Age(),
		Weight:   animal.Weight(),
	}
	if err := zg.animalRepo.Insert(ctx, record); err != nil {
		zg.logger.Error("animal persisted state is behind memory",
			zap.String("animal", record.ID), zap.Error(err))
	}

	zg.logger.Info("animal created",
		zap.String("id", record.ID),
		zap.String("name", name),
		zap.String("species", species),
	)
	return animal, nil
}

// DeleteAnimal removes an animal from the system, evicting it first when
// it currently lives in an aviary
func (zg *ZooGraph) DeleteAnimal(ctx context.Context, id string) error {
	animal, ok := zg.animals[id]
	if !ok {
		return pkgerrors.NewNotFoundError("animal")
	}

	if animal.IsPlaced() {
		if aviary, found := zg.graph.Payload(animal.AviaryID().String()); found {
			if err := aviary.Evict(animal.ID(), zg); err == nil {
				if err := zg.animalRepo.UpdateAviary(ctx, id, ""); err != nil {
					zg.logger.Error("animal location persisted state is behind memory",
						zap.String("animal", id), zap.Error(err))
				}
			}
		}
	}

	delete(zg.animals, id)
	if err := zg.animalRepo.Delete(ctx, id); err != nil {
		zg.logger.Error("animal persisted state is behind memory",
			zap.String("animal", id), zap.Error(err))
	}

	zg.logger.Info("animal deleted", zap.String("id", id))
	return nil
}

// PlaceAnimal admits an animal into an aviary. Constraint violations
// (already resident, full, incompatible) come back as conflict errors with
// the admission cause attached; nothing changes on failure.
func (zg *ZooGraph) PlaceAnimal(ctx context.Context, aviaryID, animalID string) error {
	aviary, ok := zg.graph.Payload(aviaryID)
	if !ok {
		return pkgerrors.NewNotFoundError("aviary")
	}
	animal, ok := zg.animals[animalID]
	if !ok {
		return pkgerrors.NewNotFoundError("animal")
	}
	if animal.IsPlaced() {
		return pkgerrors.NewConflictError("animal already lives in an aviary")
	}

	if err := aviary.Admit(animal, zg); err != nil {
		zg.logger.Warn("admission rejected",
			zap.String("aviary", aviaryID),
			zap.String("animal", animalID),
			zap.Error(err),
		)
		return admissionError(err)
	}

	if err := zg.animalRepo.UpdateAviary(ctx, animalID, aviaryID); err != nil {
		zg.logger.Error("animal location persisted state is behind memory",
			zap.String("animal", animalID), zap.Error(err))
	}

	zg.logger.Info("animal placed",
		zap.String("aviary", aviaryID), zap.String("animal", animalID))
	return nil
}

// TakeOutAnimal evicts an animal from an aviary
func (zg *ZooGraph) TakeOutAnimal(ctx context.Context, aviaryID, animalID string) error {
	aviary, ok := zg.graph.Payload(aviaryID)
	if !ok {
		return pkgerrors.NewNotFoundError("aviary")
	}
	id, err := valueobjects.NewAnimalIDFromString(animalID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	if err := aviary.Evict(id, zg); err != nil {
		return pkgerrors.NewNotFoundError("animal in aviary").WithCause(err)
	}

	if err := zg.animalRepo.UpdateAviary(ctx, animalID, ""); err != nil {
		zg.logger.Error("animal location persisted state is behind memory",
			zap.String("animal", animalID), zap.Error(err))
	}

	zg.logger.Info("animal taken out",
		zap.String("aviary", aviaryID), zap.String("animal", animalID))
	return nil
}

// MoveAnimal relocates an animal between two aviaries as one logical
// operation. The move is evict-then-admit with rollback: when the target
// rejects the animal, the eviction is undone before the failure is
// returned, so the animal is never left un-homed.
func (zg *ZooGraph) MoveAnimal(ctx context.Context, fromID, toID, animalID string) error {
	from, ok := zg.graph.Payload(fromID)
	if !ok {
		return pkgerrors.NewNotFoundError("source aviary")
	}
	to, ok := zg.graph.Payload(toID)
	if !ok {
		return pkgerrors.NewNotFoundError("target aviary")
	}
	animal, ok := zg.animals[animalID]
	if !ok {
		return pkgerrors.NewNotFoundError("animal")
	}
	if !from.Contains(animal.ID()) {
		return pkgerrors.NewConflictError("animal does not live in the source aviary")
	}

	if err := from.Evict(animal.ID(), zg); err != nil {
		return pkgerrors.NewInternalError("eviction failed").WithCause(err)
	}

	if err := to.Admit(animal, zg); err != nil {
		// Roll back the eviction; the freed slot and the previously
		// coexisting occupants guarantee re-admission succeeds.
		if rbErr := from.Admit(animal, zg); rbErr != nil {
			zg.logger.Error("move rollback failed, animal left unplaced",
				zap.String("animal", animalID),
				zap.String("aviary", fromID),
				zap.Error(rbErr),
			)
		}
		zg.logger.Warn("move rejected by target aviary",
			zap.String("from", fromID),
			zap.String("to", toID),
			zap.String("animal", animalID),
			zap.Error(err),
		)
		return admissionError(err)
	}

	if err := zg.animalRepo.UpdateAviary(ctx, animalID, toID); err != nil {
		zg.logger.Error("animal location persisted state is behind memory",
			zap.String("animal", animalID), zap.Error(err))
	}

	zg.logger.Info("animal moved",
		zap.String("from", fromID), zap.String("to", toID), zap.String("animal", animalID))
	return nil
}

// UnplacedAnimals returns every animal that does not live in an aviary
func (zg *ZooGraph) UnplacedAnimals() []*entities.Animal {
	var unplaced []*entities.Animal
	for _, animal := range zg.animals {
		if !animal.IsPlaced() {
			unplaced = append(unplaced, animal)
		}
	}
	return unplaced
}

// AllAnimalsPlaced reports whether every animal lives in some aviary
func (zg *ZooGraph) AllAnimalsPlaced() bool {
	return len(zg.UnplacedAnimals()) == 0
}

// FeedAnimal marks an animal as fed
func (zg *ZooGraph) FeedAnimal(id string) error {
	animal, ok := zg.animals[id]
	if !ok {
		return pkgerrors.NewNotFoundError("animal")
	}
	if !animal.Feed() {
		zg.logger.Warn("animal already fed", zap.String("animal", id))
		return pkgerrors.NewConflictError("animal is already fed")
	}
	zg.logger.Info("animal fed", zap.String("animal", id))
	return nil
}

// admissionError translates admission sentinels into API-facing errors
// while keeping the cause inspectable through errors.Is.
func admissionError(err error) error {
	switch {
	case errors.Is(err, entities.ErrAviaryFull):
		return pkgerrors.NewConflictError("aviary is at capacity").WithCause(err)
	case errors.Is(err, entities.ErrIncompatible):
		return pkgerrors.NewConflictError("animal is incompatible with an occupant").WithCause(err)
	case errors.Is(err, entities.ErrAlreadyResident):
		return pkgerrors.NewConflictError("animal is already an occupant").WithCause(err)
	default:
		return pkgerrors.NewValidationError("admission rejected").WithCause(err)
	}
}
