// Package services wires the graph engine, the admission logic and the
// repository ports into the zoo graph the interface layer talks to.
package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"zoograph-backend/application/ports"
	"zoograph-backend/domain/core/compatibility"
	"zoograph-backend/domain/core/entities"
	"zoograph-backend/domain/core/valueobjects"
	"zoograph-backend/domain/graph"
	pkgerrors "zoograph-backend/pkg/errors"
)

// ZooGraph binds aviaries and weighted paths into one graph instance and
// owns the animal and keeper arenas. All pure graph algorithms are delegated
// to the graph engine; placement decisions are delegated to the aviary's
// admission logic.
//
// Mutations follow a fixed two-step order: the in-memory graph first, the
// repository second. A failed persistence call is logged and does not roll
// back the in-memory change; the load-time reconciliation below is what
// brings a drifted store back in line on the next start.
type ZooGraph struct {
	graph   *graph.Graph[*entities.Aviary]
	animals map[string]*entities.Animal
	keepers map[string]*entities.Keeper

	aviaryRepo ports.AviaryRepository
	pathRepo   ports.PathRepository
	animalRepo ports.AnimalRepository
	keeperRepo ports.KeeperRepository

	logger *zap.Logger
}

// NewZooGraph loads the persisted zoo and reconciles it into a consistent
// in-memory graph. Aviaries load first, then paths: a path whose endpoint
// is missing is dropped with a warning, never a fatal error, so a partially
// inconsistent dataset still produces a working graph. Animals load last
// and are linked into their recorded aviaries the same lenient way.
func NewZooGraph(
	ctx context.Context,
	aviaryRepo ports.AviaryRepository,
	pathRepo ports.PathRepository,
	animalRepo ports.AnimalRepository,
	keeperRepo ports.KeeperRepository,
	logger *zap.Logger,
) (*ZooGraph, error) {
	zg := &ZooGraph{
		graph:      graph.New[*entities.Aviary](),
		animals:    make(map[string]*entities.Animal),
		keepers:    make(map[string]*entities.Keeper),
		aviaryRepo: aviaryRepo,
		pathRepo:   pathRepo,
		animalRepo: animalRepo,
		keeperRepo: keeperRepo,
		logger:     logger,
	}

	if err := zg.loadAviaries(ctx); err != nil {
		return nil, err
	}
	if err := zg.loadPaths(ctx); err != nil {
		return nil, err
	}
	if err := zg.loadAnimals(ctx); err != nil {
		return nil, err
	}
	if err := zg.loadKeepers(ctx); err != nil {
		return nil, err
	}

	logger.Info("zoo graph loaded",
		zap.Int("aviaries", zg.graph.VertexCount()),
		zap.Int("animals", len(zg.animals)),
		zap.Int("keepers", len(zg.keepers)),
	)
	return zg, nil
}

func (zg *ZooGraph) loadAviaries(ctx context.Context) error {
	records, err := zg.aviaryRepo.LoadAll(ctx)
	if err != nil {
		return pkgerrors.NewDatabaseError("load aviaries", err)
	}

	for _, rec := range records {
		id, err := valueobjects.NewAviaryIDFromString(rec.ID)
		if err != nil {
			zg.logger.Warn("skipping aviary with invalid id", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		var keeperID valueobjects.KeeperID
		if rec.KeeperID != "" {
			if keeperID, err = valueobjects.NewKeeperIDFromString(rec.KeeperID); err != nil {
				zg.logger.Warn("aviary has invalid keeper link, clearing",
					zap.String("aviary", rec.ID), zap.String("keeper", rec.KeeperID))
			}
		}
		aviary, err := entities.ReconstructAviary(id, rec.Name, rec.Habitat, rec.Area, rec.Capacity, keeperID)
		if err != nil {
			zg.logger.Warn("skipping invalid aviary record", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		zg.graph.AddVertex(id.String(), aviary)
	}
	return nil
}

func (zg *ZooGraph) loadPaths(ctx context.Context) error {
	records, err := zg.pathRepo.LoadAll(ctx)
	if err != nil {
		return pkgerrors.NewDatabaseError("load paths", err)
	}

	for _, rec := range records {
		if err := zg.graph.AddEdge(rec.FromID, rec.ToID, rec.Length); err != nil {
			// Dangling or malformed paths are dropped; the graph must stay
			// constructible from a partially inconsistent dataset.
			zg.logger.Warn("dropping unloadable path",
				zap.String("from", rec.FromID),
				zap.String("to", rec.ToID),
				zap.Float64("length", rec.Length),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (zg *ZooGraph) loadAnimals(ctx context.Context) error {
	records, err := zg.animalRepo.LoadAll(ctx)
	if err != nil {
		return pkgerrors.NewDatabaseError("load animals", err)
	}

	for _, rec := range records {
		id, err := valueobjects.NewAnimalIDFromString(rec.ID)
		if err != nil {
			zg.logger.Warn("skipping animal with invalid id", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		var aviaryID valueobjects.AviaryID
		if rec.AviaryID != "" {
			aviaryID, _ = valueobjects.NewAviaryIDFromString(rec.AviaryID)
		}
		animal, err := entities.ReconstructAnimal(
			id, rec.Name, rec.Species, compatibility.Category(rec.Category),
			rec.Age, rec.Weight, valueobjects.AviaryID{}, rec.Fed,
		)
		if err != nil {
			zg.logger.Warn("skipping invalid animal record", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		zg.animals[id.String()] = animal

		if aviaryID.IsZero() {
			continue
		}
		aviary, ok := zg.graph.Payload(aviaryID.String())
		if !ok {
			zg.logger.Warn("animal points at missing aviary, leaving unplaced",
				zap.String("animal", rec.ID), zap.String("aviary", rec.AviaryID))
			continue
		}
		aviary.LinkOccupant(animal)
		if aviary.OccupantCount() > aviary.Capacity() {
			zg.logger.Warn("aviary loaded over capacity",
				zap.String("aviary", aviary.ID().String()),
				zap.Int("occupants", aviary.OccupantCount()),
				zap.Int("capacity", aviary.Capacity()),
			)
		}
	}
	return nil
}

func (zg *ZooGraph) loadKeepers(ctx context.Context) error {
	records, err := zg.keeperRepo.LoadAll(ctx)
	if err != nil {
		return pkgerrors.NewDatabaseError("load keepers", err)
	}

	for _, rec := range records {
		id, err := valueobjects.NewKeeperIDFromString(rec.ID)
		if err != nil {
			zg.logger.Warn("skipping keeper with invalid id", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		var aviaryIDs []valueobjects.AviaryID
		for _, raw := range rec.AviaryIDs {
			aviaryID, err := valueobjects.NewAviaryIDFromString(raw)
			if err != nil || !zg.graph.HasVertex(aviaryID.String()) {
				zg.logger.Warn("keeper assigned to missing aviary, dropping assignment",
					zap.String("keeper", rec.ID), zap.String("aviary", raw))
				continue
			}
			aviaryIDs = append(aviaryIDs, aviaryID)
		}
		keeper, err := entities.ReconstructKeeper(id, rec.Name, rec.Age, rec.Salary, rec.Experience, aviaryIDs)
		if err != nil {
			zg.logger.Warn("skipping invalid keeper record", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		zg.keepers[id.String()] = keeper
	}
	return nil
}

// AddAviary registers a new aviary as a graph vertex and persists it.
func (zg *ZooGraph) AddAviary(ctx context.Context, aviary *entities.Aviary) error {
	if aviary == nil {
		return pkgerrors.NewValidationError("aviary cannot be nil")
	}
	if !zg.graph.AddVertex(aviary.ID().String(), aviary) {
		return pkgerrors.NewConflictError("aviary already exists")
	}

	record := ports.AviaryRecord{
		ID:       aviary.ID().String(),
		Name:     aviary.Name(),
		Habitat:  aviary.Habitat(),
		Area:     aviary.Area(),
		Capacity: aviary.Capacity(),
		KeeperID: aviary.KeeperID().String(),
	}
	if err := zg.aviaryRepo.Insert(ctx, record); err != nil {
		zg.logger.Error("aviary persisted state is behind memory",
			zap.String("aviary", record.ID), zap.Error(err))
	}

	zg.logger.Info("aviary added", zap.String("id", record.ID), zap.String("name", record.Name))
	return nil
}

// RemoveAviary evicts all occupants, drops keeper assignments, removes the
// vertex with every incident path, and deletes the persisted records.
func (zg *ZooGraph) RemoveAviary(ctx context.Context, id string) error {
	aviary, ok := zg.graph.Payload(id)
	if !ok {
		return pkgerrors.NewNotFoundError("aviary")
	}

	// Occupants must be evicted (or orphaned) before the vertex goes away.
	for _, animalID := range aviary.Occupants() {
		if err := aviary.Evict(animalID, zg); err != nil {
			continue
		}
		if err := zg.animalRepo.UpdateAviary(ctx, animalID.String(), ""); err != nil {
			zg.logger.Error("animal location persisted state is behind memory",
				zap.String("animal", animalID.String()), zap.Error(err))
		}
	}

	for _, keeper := range zg.keepers {
		if keeper.UnassignAviary(aviary.ID()) {
			zg.persistKeeperAviaries(ctx, keeper)
		}
	}

	neighbors, _ := zg.graph.Neighbors(id)
	zg.graph.RemoveVertex(id)

	for _, neighbor := range neighbors {
		if err := zg.pathRepo.Delete(ctx, id, neighbor); err != nil {
			zg.logger.Error("path persisted state is behind memory",
				zap.String("from", id), zap.String("to", neighbor), zap.Error(err))
		}
	}
	if err := zg.aviaryRepo.Delete(ctx, id); err != nil {
		zg.logger.Error("aviary persisted state is behind memory",
			zap.String("aviary", id), zap.Error(err))
	}

	zg.logger.Info("aviary removed", zap.String("id", id))
	return nil
}

// AddPath connects two aviaries with an undirected path of the given
// length. Unknown endpoints surface as a not-found error rather than the
// silent no-op of earlier designs.
func (zg *ZooGraph) AddPath(ctx context.Context, fromID, toID string, length float64) error {
	if fromID == toID {
		return pkgerrors.NewValidationError("a path must connect two distinct aviaries")
	}
	if length <= 0 {
		return pkgerrors.NewValidationError("path length must be positive").
			WithDetails(map[string]interface{}{"length": length})
	}
	if err := zg.graph.AddEdge(fromID, toID, length); err != nil {
		return pkgerrors.NewNotFoundError("aviary").WithCause(err)
	}

	record := ports.PathRecord{FromID: fromID, ToID: toID, Length: length}
	if err := zg.pathRepo.Insert(ctx, record); err != nil {
		zg.logger.Error("path persisted state is behind memory",
			zap.String("from", fromID), zap.String("to", toID), zap.Error(err))
	}

	zg.logger.Info("path added",
		zap.String("from", fromID), zap.String("to", toID), zap.Float64("length", length))
	return nil
}

// RemovePath removes the path between two aviaries in both directions.
func (zg *ZooGraph) RemovePath(ctx context.Context, fromID, toID string) error {
	if !zg.graph.RemoveEdge(fromID, toID) {
		return pkgerrors.NewNotFoundError("path")
	}

	if err := zg.pathRepo.Delete(ctx, fromID, toID); err != nil {
		zg.logger.Error("path persisted state is behind memory",
			zap.String("from", fromID), zap.String("to", toID), zap.Error(err))
	}

	zg.logger.Info("path removed", zap.String("from", fromID), zap.String("to", toID))
	return nil
}

// Aviaries returns every aviary ordered by ID
func (zg *ZooGraph) Aviaries() []*entities.Aviary {
	ids := zg.graph.VertexIDs()
	aviaries := make([]*entities.Aviary, 0, len(ids))
	for _, id := range ids {
		if aviary, ok := zg.graph.Payload(id); ok {
			aviaries = append(aviaries, aviary)
		}
	}
	return aviaries
}

// AviaryByID returns the aviary with the given ID
func (zg *ZooGraph) AviaryByID(id string) (*entities.Aviary, error) {
	aviary, ok := zg.graph.Payload(id)
	if !ok {
		return nil, pkgerrors.NewNotFoundError("aviary")
	}
	return aviary, nil
}

// AviaryNameByID resolves an aviary ID to its display name
func (zg *ZooGraph) AviaryNameByID(id string) string {
	if aviary, ok := zg.graph.Payload(id); ok {
		return aviary.Name()
	}
	return ""
}

// Paths returns every path exactly once
func (zg *ZooGraph) Paths() []graph.Edge {
	return zg.graph.Edges()
}

// Neighbors returns the IDs of aviaries directly connected to the given one
func (zg *ZooGraph) Neighbors(id string) ([]string, error) {
	neighbors, err := zg.graph.Neighbors(id)
	if err != nil {
		return nil, pkgerrors.NewNotFoundError("aviary").WithCause(err)
	}
	return neighbors, nil
}

// ShortestPath returns the minimum-total-length route between two aviaries
func (zg *ZooGraph) ShortestPath(fromID, toID string) ([]string, error) {
	path, err := zg.graph.FindPathByWeight(fromID, toID)
	return path, zg.translatePathErr(err)
}

// ShortestHopPath returns the route with the fewest intermediate aviaries
func (zg *ZooGraph) ShortestHopPath(fromID, toID string) ([]string, error) {
	path, err := zg.graph.FindPath(fromID, toID)
	return path, zg.translatePathErr(err)
}

// DistanceBetween returns the walking distance along the shortest path.
// "No route" and "unknown aviary" stay distinguishable for the caller.
func (zg *ZooGraph) DistanceBetween(fromID, toID string) (float64, error) {
	distance, err := zg.graph.Distance(fromID, toID)
	return distance, zg.translatePathErr(err)
}

// IsConnected reports whether every aviary is reachable from every other
func (zg *ZooGraph) IsConnected() bool {
	return zg.graph.IsConnected()
}

func (zg *ZooGraph) translatePathErr(err error) error {
	switch err {
	case nil:
		return nil
	case graph.ErrVertexNotFound:
		return pkgerrors.NewNotFoundError("aviary").WithCause(err)
	case graph.ErrNoPath:
		return pkgerrors.NewNotFoundError("route between aviaries").WithCause(err)
	default:
		return pkgerrors.NewInternalError(fmt.Sprintf("path query failed: %v", err)).WithCause(err)
	}
}
