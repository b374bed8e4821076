package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/garden"
	"github.com/osse101/CoffeeGarden_Go/internal/logger"
	"github.com/osse101/CoffeeGarden_Go/internal/user"
)

// PlantRequest represents the request to plant a tree
type PlantRequest struct {
	Identity
	Variety string `json:"variety" validate:"required,max=32"`
}

// TreeActionRequest targets one of the caller's trees
type TreeActionRequest struct {
	Identity
	TreeID string `json:"tree_id" validate:"required,uuid"`
}

// VarietyResponse is a catalog entry with its localized display name
type VarietyResponse struct {
	Name              string         `json:"name"`
	DisplayName       string         `json:"display_name"`
	Description       string         `json:"description"`
	HarvestMultiplier string         `json:"harvest_multiplier"`
	TotalDays         int            `json:"total_days"`
	Stages            []domain.Stage `json:"stages"`
}

// GardenHandler handles tree planting, care and harvest requests
type GardenHandler struct {
	gardenSvc garden.Service
	userSvc   user.Service
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(gardenSvc garden.Service, userSvc user.Service) *GardenHandler {
	return &GardenHandler{gardenSvc: gardenSvc, userSvc: userSvc}
}

// HandlePlant plants a new tree
// @Summary Plant a tree
// @Description Plants a coffee tree of the given variety for the caller
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plant request"
// @Success 201 {object} domain.TreeView
// @Failure 400 {object} ErrorResponse "Unknown variety or invalid request"
// @Failure 500 {object} ErrorResponse
// @Router /garden/plant [post]
func (h *GardenHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}
	u, ok := resolveCaller(w, r, h.userSvc, req.Identity)
	if !ok {
		return
	}

	view, err := h.gardenSvc.Plant(r.Context(), u.ID, req.Variety)
	if err != nil {
		respondServiceError(w, r, "plant", err)
		return
	}
	logger.FromContext(r.Context()).Info("Tree planted", "user_id", u.ID, "tree_id", view.Tree.ID)
	respondJSON(w, r, http.StatusCreated, view)
}

// HandleWater waters a tree
// @Summary Water a tree
// @Tags garden
// @Accept json
// @Produce json
// @Param request body TreeActionRequest true "Tree action"
// @Success 200 {object} domain.CareResult
// @Failure 404 {object} ErrorResponse "Tree not found"
// @Failure 409 {object} ErrorResponse "Tree already harvested"
// @Failure 429 {object} CooldownErrorResponse "Watering is on cooldown"
// @Router /garden/water [post]
func (h *GardenHandler) HandleWater(w http.ResponseWriter, r *http.Request) {
	h.handleCare(w, r, "Water", h.gardenSvc.Water)
}

// HandleFertilize fertilizes a tree
// @Summary Fertilize a tree
// @Tags garden
// @Accept json
// @Produce json
// @Param request body TreeActionRequest true "Tree action"
// @Success 200 {object} domain.CareResult
// @Failure 404 {object} ErrorResponse "Tree not found"
// @Failure 409 {object} ErrorResponse "Tree already harvested"
// @Failure 429 {object} CooldownErrorResponse "Fertilizing is on cooldown"
// @Router /garden/fertilize [post]
func (h *GardenHandler) HandleFertilize(w http.ResponseWriter, r *http.Request) {
	h.handleCare(w, r, "Fertilize", h.gardenSvc.Fertilize)
}

func (h *GardenHandler) handleCare(w http.ResponseWriter, r *http.Request, opName string,
	action func(ctx context.Context, userID, treeID string) (*domain.CareResult, error)) {
	var req TreeActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}
	u, ok := resolveCaller(w, r, h.userSvc, req.Identity)
	if !ok {
		return
	}

	res, err := action(r.Context(), u.ID, req.TreeID)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, r, http.StatusOK, res)
}

// HandleHarvest harvests a mature tree
// @Summary Harvest a tree
// @Tags garden
// @Accept json
// @Produce json
// @Param request body TreeActionRequest true "Tree action"
// @Success 200 {object} domain.HarvestResult
// @Failure 404 {object} ErrorResponse "Tree not found"
// @Failure 409 {object} ErrorResponse "Not mature or already harvested"
// @Router /garden/harvest [post]
func (h *GardenHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	var req TreeActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}
	u, ok := resolveCaller(w, r, h.userSvc, req.Identity)
	if !ok {
		return
	}

	res, err := h.gardenSvc.Harvest(r.Context(), u.ID, req.TreeID)
	if err != nil {
		respondServiceError(w, r, "harvest", err)
		return
	}
	logger.FromContext(r.Context()).Info("Tree harvested", "user_id", u.ID, "tree_id", req.TreeID, "quality", res.Quality)
	respondJSON(w, r, http.StatusOK, res)
}

// HandleGetTree returns the computed view of one tree
// @Summary Get a tree
// @Tags garden
// @Produce json
// @Param platform query string true "Platform"
// @Param platform_id query string true "Platform user ID"
// @Param tree_id query string true "Tree ID"
// @Success 200 {object} domain.TreeView
// @Failure 404 {object} ErrorResponse
// @Router /garden/tree [get]
func (h *GardenHandler) HandleGetTree(w http.ResponseWriter, r *http.Request) {
	treeID, ok := GetQueryParam(r, w, ParamTreeID)
	if !ok {
		return
	}
	u, ok := lookupCaller(w, r, h.userSvc)
	if !ok {
		return
	}

	view, err := h.gardenSvc.GetTreeView(r.Context(), u.ID, treeID)
	if err != nil {
		respondServiceError(w, r, "get tree", err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

// HandleListTrees returns the caller's trees, newest first
// @Summary List trees
// @Tags garden
// @Produce json
// @Param platform query string true "Platform"
// @Param platform_id query string true "Platform user ID"
// @Param include_harvested query bool false "Include harvested trees"
// @Success 200 {array} domain.TreeView
// @Router /garden/trees [get]
func (h *GardenHandler) HandleListTrees(w http.ResponseWriter, r *http.Request) {
	includeHarvested, ok := GetBoolQueryParam(r, w, ParamIncludeHarvested)
	if !ok {
		return
	}
	u, ok := lookupCaller(w, r, h.userSvc)
	if !ok {
		return
	}

	views, err := h.gardenSvc.ListTrees(r.Context(), u.ID, includeHarvested)
	if err != nil {
		respondServiceError(w, r, "list trees", err)
		return
	}
	respondJSON(w, r, http.StatusOK, views)
}

// HandleGetTreeLog returns the activity log of one tree
// @Summary Tree activity log
// @Tags garden
// @Produce json
// @Param platform query string true "Platform"
// @Param platform_id query string true "Platform user ID"
// @Param tree_id query string true "Tree ID"
// @Param limit query int false "Maximum entries (default 20, max 100)"
// @Success 200 {array} domain.ActivityEntry
// @Router /garden/tree/log [get]
func (h *GardenHandler) HandleGetTreeLog(w http.ResponseWriter, r *http.Request) {
	treeID, ok := GetQueryParam(r, w, ParamTreeID)
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, ParamLimit, 0)
	if !ok {
		return
	}
	u, ok := lookupCaller(w, r, h.userSvc)
	if !ok {
		return
	}

	entries, err := h.gardenSvc.GetTreeLog(r.Context(), u.ID, treeID, limit)
	if err != nil {
		respondServiceError(w, r, "tree log", err)
		return
	}
	respondJSON(w, r, http.StatusOK, entries)
}

// HandleGetResources returns the caller's resource balances
// @Summary Resource balances
// @Tags garden
// @Produce json
// @Param platform query string true "Platform"
// @Param platform_id query string true "Platform user ID"
// @Success 200 {object} domain.Resources
// @Router /garden/resources [get]
func (h *GardenHandler) HandleGetResources(w http.ResponseWriter, r *http.Request) {
	u, ok := lookupCaller(w, r, h.userSvc)
	if !ok {
		return
	}

	res, err := h.gardenSvc.GetResources(r.Context(), u.ID)
	if err != nil {
		respondServiceError(w, r, "resources", err)
		return
	}
	respondJSON(w, r, http.StatusOK, res)
}

// HandleListVarieties returns the catalog with localized names
// @Summary List coffee varieties
// @Tags garden
// @Produce json
// @Param Accept-Language header string false "Preferred display language"
// @Success 200 {array} VarietyResponse
// @Router /garden/varieties [get]
func (h *GardenHandler) HandleListVarieties(w http.ResponseWriter, r *http.Request) {
	tag := negotiateLanguage(r)

	varieties := h.gardenSvc.ListVarieties()
	out := make([]VarietyResponse, 0, len(varieties))
	for _, v := range varieties {
		out = append(out, VarietyResponse{
			Name:              v.Name,
			DisplayName:       displayName(v, tag),
			Description:       v.Description,
			HarvestMultiplier: v.HarvestMultiplier.String(),
			TotalDays:         v.TotalDays(),
			Stages:            v.Stages,
		})
	}

	w.Header().Set(HeaderContentLang, tag.String())
	respondJSON(w, r, http.StatusOK, out)
}
