package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/internal/services"
	"fyyurtrivia/pkg/utils"
)

type VenueController struct {
	venueService services.VenueServiceInterface
}

func NewVenueController(venueService services.VenueServiceInterface) *VenueController {
	return &VenueController{venueService: venueService}
}

// ListVenues godoc
// @Summary List venues grouped by city and state
// @Tags Venues
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /venues [get]
func (vc *VenueController) ListVenues(c *gin.Context) {
	areas, err := vc.venueService.ListByArea(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"areas": areas})
}

// SearchVenues godoc
// @Summary Search venues
// @Tags Venues
// @Accept json
// @Produce json
// @Param request body request_models.SearchRequest true "Search filters"
// @Success 200 {object} response_models.SearchResult
// @Failure 400 {object} utils.APIError
// @Router /venues/search [post]
func (vc *VenueController) SearchVenues(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	result, err := vc.venueService.Search(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"count": result.Count, "data": result.Data})
}

// GetVenue godoc
// @Summary Venue detail with past and upcoming shows
// @Tags Venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} response_models.VenueDetail
// @Failure 404 {object} utils.APIError
// @Router /venues/{id} [get]
func (vc *VenueController) GetVenue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusNotFound)
		return
	}

	venue, err := vc.venueService.GetVenue(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"venue": venue})
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags Venues
// @Accept json
// @Produce json
// @Param request body request_models.VenueRequest true "Venue payload"
// @Success 200 {object} response_models.VenueDetail
// @Failure 400 {object} utils.APIError
// @Failure 409 {object} utils.APIError
// @Router /venues [post]
func (vc *VenueController) CreateVenue(c *gin.Context) {
	var req request_models.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	venue, err := vc.venueService.CreateVenue(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"venue": venue})
}

// UpdateVenue godoc
// @Summary Replace a venue's fields and genres
// @Tags Venues
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param request body request_models.VenueRequest true "Venue payload"
// @Success 200 {object} response_models.VenueDetail
// @Failure 400 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Router /venues/{id} [put]
func (vc *VenueController) UpdateVenue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusNotFound)
		return
	}
	var req request_models.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	venue, err := vc.venueService.UpdateVenue(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"venue": venue})
}

// DeleteVenue godoc
// @Summary Delete a venue and its shows
// @Tags Venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.APIError
// @Router /venues/{id} [delete]
func (vc *VenueController) DeleteVenue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusNotFound)
		return
	}

	if err := vc.venueService.DeleteVenue(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"venueId": id})
}
