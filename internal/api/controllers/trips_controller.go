package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rumbo/internal/models/request_models"
	"rumbo/internal/models/response_models"
	"rumbo/internal/services"
	"rumbo/pkg/store"
	"rumbo/pkg/utils"
)

type TripsController struct {
	store store.ItineraryStore
}

func NewTripsController(itineraryStore store.ItineraryStore) *TripsController {
	return &TripsController{store: itineraryStore}
}

// ListItineraries godoc
// @Summary List saved itineraries
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/itineraries [get]
func (tc *TripsController) ListItineraries(c *gin.Context) {
	utils.RespondSuccess(c, tc.store.List(), "Itineraries fetched successfully")
}

// GetItinerary godoc
// @Summary Get a saved itinerary with its parsed day schedules
// @Tags Trips
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itineraries/{id} [get]
func (tc *TripsController) GetItinerary(c *gin.Context) {
	record, found := tc.store.Get(c.Param("id"))
	if !found {
		utils.HandleServiceError(c, utils.ErrItineraryNotFound)
		return
	}

	detail := response_models.ItineraryDetailResponse{
		SavedItinerary: record,
		Days:           services.ParseItineraryIntoDays(record.Itinerary),
	}
	utils.RespondSuccess(c, detail, "Itinerary fetched successfully")
}

// SaveItinerary godoc
// @Summary Save a generated itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveItineraryRequest true "Preferences and raw itinerary text"
// @Success 200 {object} utils.APIResponse
// @Router /api/itineraries [post]
func (tc *TripsController) SaveItinerary(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Preferences.Destination) == "" ||
		req.Preferences.Duration <= 0 ||
		strings.TrimSpace(req.Itinerary) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Preferences and itinerary text are required")
		return
	}

	record := response_models.SavedItinerary{
		ID:          uuid.New().String(),
		Preferences: req.Preferences,
		Itinerary:   req.Itinerary,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := tc.store.Upsert(record); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Itinerary saved successfully")
}

// UpdateItinerary godoc
// @Summary Replace a saved itinerary after an edit-and-regenerate
// @Description Keeps the existing id so the client's selection stays valid
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.SaveItineraryRequest true "Updated preferences and itinerary text"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itineraries/{id} [put]
func (tc *TripsController) UpdateItinerary(c *gin.Context) {
	id := c.Param("id")
	if _, found := tc.store.Get(id); !found {
		utils.HandleServiceError(c, utils.ErrItineraryNotFound)
		return
	}

	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Preferences.Destination) == "" ||
		req.Preferences.Duration <= 0 ||
		strings.TrimSpace(req.Itinerary) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Preferences and itinerary text are required")
		return
	}

	record := response_models.SavedItinerary{
		ID:          id,
		Preferences: req.Preferences,
		Itinerary:   req.Itinerary,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := tc.store.Upsert(record); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Itinerary updated successfully")
}

// DeleteItinerary godoc
// @Summary Delete a saved itinerary
// @Tags Trips
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itineraries/{id} [delete]
func (tc *TripsController) DeleteItinerary(c *gin.Context) {
	if err := tc.store.Delete(c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// ClearItineraries godoc
// @Summary Delete every saved itinerary
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/itineraries [delete]
func (tc *TripsController) ClearItineraries(c *gin.Context) {
	if err := tc.store.Clear(); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itineraries cleared successfully")
}
