package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"zoograph-backend/application/services"
	"zoograph-backend/domain/core/entities"
	"zoograph-backend/pkg/common"
	"zoograph-backend/pkg/utils"
)

// AviaryHandler handles aviary-related HTTP requests
type AviaryHandler struct {
	zoo    *services.ZooGraph
	logger *zap.Logger
}

// NewAviaryHandler creates a new aviary handler
func NewAviaryHandler(zoo *services.ZooGraph, logger *zap.Logger) *AviaryHandler {
	return &AviaryHandler{zoo: zoo, logger: logger}
}

// CreateAviaryRequest represents the request body for creating an aviary
type CreateAviaryRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Habitat  string  `json:"habitat" validate:"required,min=1,max=200"`
	Area     float64 `json:"area" validate:"required,gt=0"`
	Capacity int     `json:"capacity" validate:"required,gt=0"`
}

// AviaryResponse is the JSON view of an aviary
type AviaryResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Habitat   string   `json:"habitat"`
	Area      float64  `json:"area"`
	Capacity  int      `json:"capacity"`
	Occupants []string `json:"occupants"`
	KeeperID  string   `json:"keeper_id,omitempty"`
}

func toAviaryResponse(aviary *entities.Aviary) AviaryResponse {
	occupants := make([]string, 0, aviary.OccupantCount())
	for _, id := range aviary.Occupants() {
		occupants = append(occupants, id.String())
	}
	resp := AviaryResponse{
		ID:        aviary.ID().String(),
		Name:      aviary.Name(),
		Habitat:   aviary.Habitat(),
		Area:      aviary.Area(),
		Capacity:  aviary.Capacity(),
		Occupants: occupants,
	}
	if !aviary.KeeperID().IsZero() {
		resp.KeeperID = aviary.KeeperID().String()
	}
	return resp
}

// CreateAviary handles POST /aviaries
func (h *AviaryHandler) CreateAviary(w http.ResponseWriter, r *http.Request) {
	var req CreateAviaryRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	aviary, err := entities.NewAviary(req.Name, req.Habitat, req.Area, req.Capacity)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := h.zoo.AddAviary(r.Context(), aviary); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, toAviaryResponse(aviary))
}

// ListAviaries handles GET /aviaries
func (h *AviaryHandler) ListAviaries(w http.ResponseWriter, r *http.Request) {
	aviaries := h.zoo.Aviaries()
	views := make([]AviaryResponse, 0, len(aviaries))
	for _, aviary := range aviaries {
		views = append(views, toAviaryResponse(aviary))
	}
	common.RespondJSON(w, http.StatusOK, views)
}

// GetAviary handles GET /aviaries/{aviaryID}
func (h *AviaryHandler) GetAviary(w http.ResponseWriter, r *http.Request) {
	aviary, err := h.zoo.AviaryByID(chi.URLParam(r, "aviaryID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, toAviaryResponse(aviary))
}

// DeleteAviary handles DELETE /aviaries/{aviaryID}
func (h *AviaryHandler) DeleteAviary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "aviaryID")
	if err := h.zoo.RemoveAviary(r.Context(), id); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"id": id, "message": "aviary removed"})
}

// GetNeighbors handles GET /aviaries/{aviaryID}/neighbors
func (h *AviaryHandler) GetNeighbors(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "aviaryID")
	neighbors, err := h.zoo.Neighbors(id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	type neighbor struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	views := make([]neighbor, 0, len(neighbors))
	for _, neighborID := range neighbors {
		views = append(views, neighbor{ID: neighborID, Name: h.zoo.AviaryNameByID(neighborID)})
	}
	common.RespondJSON(w, http.StatusOK, views)
}

// GetOccupants handles GET /aviaries/{aviaryID}/occupants
func (h *AviaryHandler) GetOccupants(w http.ResponseWriter, r *http.Request) {
	aviary, err := h.zoo.AviaryByID(chi.URLParam(r, "aviaryID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	views := make([]AnimalResponse, 0, aviary.OccupantCount())
	for _, animalID := range aviary.Occupants() {
		animal, ok := h.zoo.AnimalByID(animalID)
		if !ok {
			h.logger.Warn("occupant without animal record", zap.String("animal", animalID.String()))
			continue
		}
		views = append(views, toAnimalResponse(animal))
	}
	common.RespondJSON(w, http.StatusOK, views)
}
