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

// KeeperHandler handles keeper-related HTTP requests
type KeeperHandler struct {
	zoo    *services.ZooGraph
	logger *zap.Logger
}

// NewKeeperHandler creates a new keeper handler
func NewKeeperHandler(zoo *services.ZooGraph, logger *zap.Logger) *KeeperHandler {
	return &KeeperHandler{zoo: zoo, logger: logger}
}

// HireKeeperRequest represents the request body for hiring a keeper
type HireKeeperRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Age        int    `json:"age" validate:"required,gte=18"`
	Salary     int    `json:"salary" validate:"required,gt=0"`
	Experience int    `json:"experience" validate:"gte=0"`
}

// AssignKeeperRequest names the aviary a keeper takes charge of
type AssignKeeperRequest struct {
	AviaryID string `json:"aviary_id" validate:"required,uuid"`
}

// ReassignKeeperRequest names the keeper taking over an aviary
type ReassignKeeperRequest struct {
	AviaryID   string `json:"aviary_id" validate:"required,uuid"`
	ToKeeperID string `json:"to_keeper_id" validate:"required,uuid"`
}

// KeeperResponse is the JSON view of a keeper
type KeeperResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Salary     int      `json:"salary"`
	Experience int      `json:"experience"`
	AviaryIDs  []string `json:"aviary_ids"`
}

func toKeeperResponse(keeper *entities.Keeper) KeeperResponse {
	ids := keeper.AviaryIDs()
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}
	return KeeperResponse{
		ID:         keeper.ID().String(),
		Name:       keeper.Name(),
		Age:        keeper.Age(),
		Salary:     keeper.Salary(),
		Experience: keeper.Experience(),
		AviaryIDs:  raw,
	}
}

// HireKeeper handles POST /keepers
func (h *KeeperHandler) HireKeeper(w http.ResponseWriter, r *http.Request) {
	var req HireKeeperRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	keeper, err := h.zoo.HireKeeper(r.Context(), req.Name, req.Age, req.Salary, req.Experience)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, toKeeperResponse(keeper))
}

// ListKeepers handles GET /keepers with an optional unassigned=true filter
func (h *KeeperHandler) ListKeepers(w http.ResponseWriter, r *http.Request) {
	var keepers []*entities.Keeper
	if r.URL.Query().Get("unassigned") == "true" {
		keepers = h.zoo.UnassignedKeepers()
	} else {
		keepers = h.zoo.Keepers()
	}

	views := make([]KeeperResponse, 0, len(keepers))
	for _, keeper := range keepers {
		views = append(views, toKeeperResponse(keeper))
	}
	common.RespondJSON(w, http.StatusOK, views)
}

// GetKeeper handles GET /keepers/{keeperID}
func (h *KeeperHandler) GetKeeper(w http.ResponseWriter, r *http.Request) {
	keeper, err := h.zoo.KeeperByID(chi.URLParam(r, "keeperID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, toKeeperResponse(keeper))
}

// FireKeeper handles DELETE /keepers/{keeperID}
func (h *KeeperHandler) FireKeeper(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "keeperID")
	if err := h.zoo.FireKeeper(r.Context(), id); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"id": id, "message": "keeper fired"})
}

// AssignAviary handles POST /keepers/{keeperID}/aviaries
func (h *KeeperHandler) AssignAviary(w http.ResponseWriter, r *http.Request) {
	var req AssignKeeperRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	keeperID := chi.URLParam(r, "keeperID")
	if err := h.zoo.AssignKeeper(r.Context(), keeperID, req.AviaryID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"keeper_id": keeperID,
		"aviary_id": req.AviaryID,
		"message":   "keeper assigned",
	})
}

// UnassignAviary handles DELETE /keepers/{keeperID}/aviaries/{aviaryID}
func (h *KeeperHandler) UnassignAviary(w http.ResponseWriter, r *http.Request) {
	keeperID := chi.URLParam(r, "keeperID")
	aviaryID := chi.URLParam(r, "aviaryID")
	if err := h.zoo.UnassignKeeper(r.Context(), keeperID, aviaryID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"keeper_id": keeperID,
		"aviary_id": aviaryID,
		"message":   "keeper unassigned",
	})
}

// ReassignAviary handles POST /keepers/{keeperID}/reassign
func (h *KeeperHandler) ReassignAviary(w http.ResponseWriter, r *http.Request) {
	var req ReassignKeeperRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	fromKeeperID := chi.URLParam(r, "keeperID")
	if err := h.zoo.ReassignKeeper(r.Context(), fromKeeperID, req.ToKeeperID, req.AviaryID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"from_keeper_id": fromKeeperID,
		"to_keeper_id":   req.ToKeeperID,
		"aviary_id":      req.AviaryID,
		"message":        "aviary reassigned",
	})
}
