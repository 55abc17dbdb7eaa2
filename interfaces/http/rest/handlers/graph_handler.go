package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"zoograph-backend/application/services"
	"zoograph-backend/pkg/common"
	"zoograph-backend/pkg/utils"
)

// GraphHandler handles path and route queries over the aviary graph
type GraphHandler struct {
	zoo    *services.ZooGraph
	logger *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(zoo *services.ZooGraph, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{zoo: zoo, logger: logger}
}

// CreatePathRequest represents the request body for connecting two aviaries
type CreatePathRequest struct {
	FromID string  `json:"from_id" validate:"required,uuid"`
	ToID   string  `json:"to_id" validate:"required,uuid"`
	Length float64 `json:"length" validate:"required,gt=0"`
}

// PathResponse is the JSON view of a path
type PathResponse struct {
	FromID string  `json:"from_id"`
	ToID   string  `json:"to_id"`
	Length float64 `json:"length"`
}

// CreatePath handles POST /paths
func (h *GraphHandler) CreatePath(w http.ResponseWriter, r *http.Request) {
	var req CreatePathRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.zoo.AddPath(r.Context(), req.FromID, req.ToID, req.Length); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, PathResponse(req))
}

// ListPaths handles GET /paths
func (h *GraphHandler) ListPaths(w http.ResponseWriter, r *http.Request) {
	edges := h.zoo.Paths()
	views := make([]PathResponse, 0, len(edges))
	for _, edge := range edges {
		views = append(views, PathResponse{FromID: edge.From, ToID: edge.To, Length: edge.Weight})
	}
	common.RespondJSON(w, http.StatusOK, views)
}

// DeletePath handles DELETE /paths/{fromID}/{toID}
func (h *GraphHandler) DeletePath(w http.ResponseWriter, r *http.Request) {
	fromID := chi.URLParam(r, "fromID")
	toID := chi.URLParam(r, "toID")
	if err := h.zoo.RemovePath(r.Context(), fromID, toID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "path removed"})
}

// RouteResponse describes a computed route between two aviaries
type RouteResponse struct {
	Route    []string `json:"route"`
	Names    []string `json:"names"`
	Distance float64  `json:"distance,omitempty"`
}

// GetRoute handles GET /routes?from={id}&to={id}&by=length|hops
func (h *GraphHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	fromID := r.URL.Query().Get("from")
	toID := r.URL.Query().Get("to")
	if fromID == "" || toID == "" {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "from and to query parameters are required")
		return
	}

	var (
		route []string
		err   error
	)
	switch by := r.URL.Query().Get("by"); by {
	case "", "length":
		route, err = h.zoo.ShortestPath(fromID, toID)
	case "hops":
		route, err = h.zoo.ShortestHopPath(fromID, toID)
	default:
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "by must be one of: length hops")
		return
	}
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	resp := RouteResponse{Route: route, Names: make([]string, 0, len(route))}
	for _, id := range route {
		resp.Names = append(resp.Names, h.zoo.AviaryNameByID(id))
	}
	if distance, err := h.zoo.DistanceBetween(fromID, toID); err == nil {
		resp.Distance = distance
	}
	common.RespondJSON(w, http.StatusOK, resp)
}

// GetDistance handles GET /routes/distance?from={id}&to={id}
func (h *GraphHandler) GetDistance(w http.ResponseWriter, r *http.Request) {
	fromID := r.URL.Query().Get("from")
	toID := r.URL.Query().Get("to")
	if fromID == "" || toID == "" {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "from and to query parameters are required")
		return
	}

	distance, err := h.zoo.DistanceBetween(fromID, toID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]float64{"distance": distance})
}

// GetConnectivity handles GET /connectivity
func (h *GraphHandler) GetConnectivity(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]bool{"connected": h.zoo.IsConnected()})
}
