package services

import (
	"context"

	"go.uber.org/zap"

	"zoograph-backend/application/ports"
	"zoograph-backend/domain/core/entities"
	"zoograph-backend/domain/core/valueobjects"
	pkgerrors "zoograph-backend/pkg/errors"
)

// Keepers returns every keeper on staff
func (zg *ZooGraph) Keepers() []*entities.Keeper {
	keepers := make([]*entities.Keeper, 0, len(zg.keepers))
	for _, keeper := range zg.keepers {
		keepers = append(keepers, keeper)
	}
	return keepers
}

// KeeperByID returns the keeper with the given ID
func (zg *ZooGraph) KeeperByID(id string) (*entities.Keeper, error) {
	keeper, ok := zg.keepers[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("keeper")
	}
	return keeper, nil
}

// UnassignedKeepers returns keepers with no aviary duties
func (zg *ZooGraph) UnassignedKeepers() []*entities.Keeper {
	var idle []*entities.Keeper
	for _, keeper := range zg.keepers {
		if !keeper.IsAssigned() {
			idle = append(idle, keeper)
		}
	}
	return idle
}

// HireKeeper adds a new keeper to the staff and persists them
func (zg *ZooGraph) HireKeeper(
	ctx context.Context,
	name string,
	age, salary, experience int,
) (*entities.Keeper, error) {
	keeper, err := entities.NewKeeper(name, age, salary, experience)
	if err != nil {
		return nil, err
	}
	zg.keepers[keeper.ID().String()] = keeper

	record := ports.KeeperRecord{
		ID:         keeper.ID().String(),
		Name:       keeper.Name(),
		Age:        keeper.Age(),
		Salary:     keeper.Salary(),
		Experience: keeper.Experience(),
	}
	if err := zg.keeperRepo.Insert(ctx, record); err != nil {
		zg.logger.Error("keeper persisted state is behind memory",
			zap.String("keeper", record.ID), zap.Error(err))
	}

	zg.logger.Info("keeper hired", zap.String("id", record.ID), zap.String("name", name))
	return keeper, nil
}

// FireKeeper removes a keeper, clearing them from every aviary they cover
func (zg *ZooGraph) FireKeeper(ctx context.Context, id string) error {
	keeper, ok := zg.keepers[id]
	if !ok {
		return pkgerrors.NewNotFoundError("keeper")
	}

	for _, aviaryID := range keeper.AviaryIDs() {
		if aviary, found := zg.graph.Payload(aviaryID.String()); found {
			aviary.UnassignKeeper()
			if err := zg.aviaryRepo.UpdateKeeper(ctx, aviaryID.String(), ""); err != nil {
				zg.logger.Error("aviary persisted state is behind memory",
					zap.String("aviary", aviaryID.String()), zap.Error(err))
			}
		}
	}

	delete(zg.keepers, id)
	if err := zg.keeperRepo.Delete(ctx, id); err != nil {
		zg.logger.Error("keeper persisted state is behind memory",
			zap.String("keeper", id), zap.Error(err))
	}

	zg.logger.Info("keeper fired", zap.String("id", id))
	return nil
}

// AssignKeeper puts a keeper in charge of an aviary. An aviary has at
// most one keeper; a keeper may cover several aviaries.
func (zg *ZooGraph) AssignKeeper(ctx context.Context, keeperID, aviaryID string) error {
	keeper, ok := zg.keepers[keeperID]
	if !ok {
		return pkgerrors.NewNotFoundError("keeper")
	}
	aviary, ok := zg.graph.Payload(aviaryID)
	if !ok {
		return pkgerrors.NewNotFoundError("aviary")
	}
	if !aviary.KeeperID().IsZero() && !aviary.KeeperID().Equals(keeper.ID()) {
		return pkgerrors.NewConflictError("aviary already has a keeper")
	}

	aviary.AssignKeeper(keeper.ID())
	keeper.AssignAviary(aviary.ID())

	if err := zg.aviaryRepo.UpdateKeeper(ctx, aviaryID, keeperID); err != nil {
		zg.logger.Error("aviary persisted state is behind memory",
			zap.String("aviary", aviaryID), zap.Error(err))
	}
	zg.persistKeeperAviaries(ctx, keeper)

	zg.logger.Info("keeper assigned",
		zap.String("keeper", keeperID), zap.String("aviary", aviaryID))
	return nil
}

// UnassignKeeper releases a keeper from an aviary
func (zg *ZooGraph) UnassignKeeper(ctx context.Context, keeperID, aviaryID string) error {
	keeper, ok := zg.keepers[keeperID]
	if !ok {
		return pkgerrors.NewNotFoundError("keeper")
	}
	id, err := valueobjects.NewAviaryIDFromString(aviaryID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	if !keeper.UnassignAviary(id) {
		return pkgerrors.NewConflictError("keeper does not cover this aviary")
	}

	if aviary, found := zg.graph.Payload(aviaryID); found {
		aviary.UnassignKeeper()
		if err := zg.aviaryRepo.UpdateKeeper(ctx, aviaryID, ""); err != nil {
			zg.logger.Error("aviary persisted state is behind memory",
				zap.String("aviary", aviaryID), zap.Error(err))
		}
	}
	zg.persistKeeperAviaries(ctx, keeper)

	zg.logger.Info("keeper unassigned",
		zap.String("keeper", keeperID), zap.String("aviary", aviaryID))
	return nil
}

// ReassignKeeper moves responsibility for an aviary from one keeper to
// another in a single step. Both keepers and the aviary are checked
// before anything changes, so a rejected reassignment leaves the
// original keeper in place.
func (zg *ZooGraph) ReassignKeeper(ctx context.Context, fromKeeperID, toKeeperID, aviaryID string) error {
	if _, ok := zg.keepers[toKeeperID]; !ok {
		return pkgerrors.NewNotFoundError("keeper")
	}
	if _, ok := zg.graph.Payload(aviaryID); !ok {
		return pkgerrors.NewNotFoundError("aviary")
	}
	if err := zg.UnassignKeeper(ctx, fromKeeperID, aviaryID); err != nil {
		return err
	}
	return zg.AssignKeeper(ctx, toKeeperID, aviaryID)
}

// persistKeeperAviaries mirrors a keeper's current duty list to storage
func (zg *ZooGraph) persistKeeperAviaries(ctx context.Context, keeper *entities.Keeper) {
	ids := keeper.AviaryIDs()
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}
	if err := zg.keeperRepo.UpdateAviaries(ctx, keeper.ID().String(), raw); err != nil {
		zg.logger.Error("keeper persisted state is behind memory",
			zap.String("keeper", keeper.ID().String()), zap.Error(err))
	}
}
