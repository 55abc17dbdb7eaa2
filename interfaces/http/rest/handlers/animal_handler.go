package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"zoograph-backend/application/services"
	"zoograph-backend/domain/core/compatibility"
	"zoograph-backend/domain/core/entities"
	"zoograph-backend/pkg/common"
	"zoograph-backend/pkg/utils"
)

// AnimalHandler handles animal-related HTTP requests
type AnimalHandler struct {
	zoo    *services.ZooGraph
	logger *zap.Logger
}

// NewAnimalHandler creates a new animal handler
func NewAnimalHandler(zoo *services.ZooGraph, logger *zap.Logger) *AnimalHandler {
	return &AnimalHandler{zoo: zoo, logger: logger}
}

// CreateAnimalRequest represents the request body for registering an animal
type CreateAnimalRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Species  string  `json:"species" validate:"required,min=1,max=100"`
	Category string  `json:"category" validate:"required"`
	Age      int     `json:"age" validate:"gte=0"`
	Weight   float64 `json:"weight" validate:"required,gt=0"`
}

// PlacementRequest names the aviary an animal should be placed into
type PlacementRequest struct {
	AviaryID string `json:"aviary_id" validate:"required,uuid"`
}

// MoveRequest names the aviary an animal should be moved to
type MoveRequest struct {
	ToAviaryID string `json:"to_aviary_id" validate:"required,uuid"`
}

// AnimalResponse is the JSON view of an animal
type AnimalResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	Category string  `json:"category"`
	Age      int     `json:"age"`
	Weight   float64 `json:"weight"`
	AviaryID string  `json:"aviary_id,omitempty"`
	Fed      bool    `json:"fed"`
}

func toAnimalResponse(animal *entities.Animal) AnimalResponse {
	resp := AnimalResponse{
		ID:       animal.ID().String(),
		Name:     animal.Name(),
		Species:  animal.Species(),
		Category: string(animal.Category()),
		Age:      animal.Age(),
		Weight:   animal.Weight(),
		Fed:      animal.IsFed(),
	}
	if animal.IsPlaced() {
		resp.AviaryID = animal.AviaryID().String()
	}
	return resp
}

// CreateAnimal handles POST /animals
func (h *AnimalHandler) CreateAnimal(w http.ResponseWriter, r *http.Request) {
	var req CreateAnimalRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	animal, err := h.zoo.CreateAnimal(
		r.Context(), req.Name, req.Species,
		compatibility.Category(req.Category), req.Age, req.Weight,
	)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, toAnimalResponse(animal))
}

// ListAnimals handles GET /animals with an optional unplaced=true filter
func (h *AnimalHandler) ListAnimals(w http.ResponseWriter, r *http.Request) {
	var animals []*entities.Animal
	if r.URL.Query().Get("unplaced") == "true" {
		animals = h.zoo.UnplacedAnimals()
	} else {
		animals = h.zoo.Animals()
	}

	views := make([]AnimalResponse, 0, len(animals))
	for _, animal := range animals {
		views = append(views, toAnimalResponse(animal))
	}
	common.RespondJSON(w, http.StatusOK, views)
}

// GetAnimal handles GET /animals/{animalID}
func (h *AnimalHandler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	animal, err := h.zoo.GetAnimal(chi.URLParam(r, "animalID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, toAnimalResponse(animal))
}

// DeleteAnimal handles DELETE /animals/{animalID}
func (h *AnimalHandler) DeleteAnimal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "animalID")
	if err := h.zoo.DeleteAnimal(r.Context(), id); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"id": id, "message": "animal deleted"})
}

// PlaceAnimal handles POST /animals/{animalID}/placement
func (h *AnimalHandler) PlaceAnimal(w http.ResponseWriter, r *http.Request) {
	var req PlacementRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	animalID := chi.URLParam(r, "animalID")
	if err := h.zoo.PlaceAnimal(r.Context(), req.AviaryID, animalID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"animal_id": animalID,
		"aviary_id": req.AviaryID,
		"message":   "animal placed",
	})
}

// TakeOutAnimal handles DELETE /animals/{animalID}/placement
func (h *AnimalHandler) TakeOutAnimal(w http.ResponseWriter, r *http.Request) {
	animalID := chi.URLParam(r, "animalID")
	animal, err := h.zoo.GetAnimal(animalID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	if !animal.IsPlaced() {
		common.RespondError(w, http.StatusConflict, "CONFLICT", "animal does not live in an aviary")
		return
	}

	if err := h.zoo.TakeOutAnimal(r.Context(), animal.AviaryID().String(), animalID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"animal_id": animalID, "message": "animal taken out"})
}

// MoveAnimal handles POST /animals/{animalID}/move
func (h *AnimalHandler) MoveAnimal(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	animalID := chi.URLParam(r, "animalID")
	animal, err := h.zoo.GetAnimal(animalID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	if !animal.IsPlaced() {
		common.RespondError(w, http.StatusConflict, "CONFLICT", "animal does not live in an aviary")
		return
	}

	fromID := animal.AviaryID().String()
	if err := h.zoo.MoveAnimal(r.Context(), fromID, req.ToAviaryID, animalID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"animal_id": animalID,
		"from":      fromID,
		"to":        req.ToAviaryID,
		"message":   "animal moved",
	})
}

// FeedAnimal handles POST /animals/{animalID}/feed
func (h *AnimalHandler) FeedAnimal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "animalID")
	if err := h.zoo.FeedAnimal(id); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"animal_id": id, "message": "animal fed"})
}

// GetPlacementStatus handles GET /animals/status
func (h *AnimalHandler) GetPlacementStatus(w http.ResponseWriter, r *http.Request) {
	unplaced := h.zoo.UnplacedAnimals()
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"all_placed": h.zoo.AllAnimalsPlaced(),
		"unplaced":   len(unplaced),
	})
}
