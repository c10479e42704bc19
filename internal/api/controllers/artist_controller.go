package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/internal/services"
	"fyyurtrivia/pkg/utils"
)

type ArtistController struct {
	artistService services.ArtistServiceInterface
}

func NewArtistController(artistService services.ArtistServiceInterface) *ArtistController {
	return &ArtistController{artistService: artistService}
}

// ListArtists godoc
// @Summary List artists
// @Tags Artists
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /artists [get]
func (ac *ArtistController) ListArtists(c *gin.Context) {
	artists, err := ac.artistService.ListArtists(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"artists": artists})
}

// SearchArtists godoc
// @Summary Search artists
// @Tags Artists
// @Accept json
// @Produce json
// @Param request body request_models.SearchRequest true "Search filters"
// @Success 200 {object} response_models.SearchResult
// @Router /artists/search [post]
func (ac *ArtistController) SearchArtists(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	result, err := ac.artistService.Search(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"count": result.Count, "data": result.Data})
}

// GetArtist godoc
// @Summary Artist detail with past and upcoming shows
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} response_models.ArtistDetail
// @Failure 404 {object} utils.APIError
// @Router /artists/{id} [get]
func (ac *ArtistController) GetArtist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusNotFound)
		return
	}

	artist, err := ac.artistService.GetArtist(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"artist": artist})
}

// CreateArtist godoc
// @Summary Create an artist
// @Tags Artists
// @Accept json
// @Produce json
// @Param request body request_models.ArtistRequest true "Artist payload"
// @Success 200 {object} response_models.ArtistDetail
// @Failure 400 {object} utils.APIError
// @Failure 409 {object} utils.APIError
// @Router /artists [post]
func (ac *ArtistController) CreateArtist(c *gin.Context) {
	var req request_models.ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	artist, err := ac.artistService.CreateArtist(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"artist": artist})
}

// UpdateArtist godoc
// @Summary Replace an artist's fields and genres
// @Tags Artists
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param request body request_models.ArtistRequest true "Artist payload"
// @Success 200 {object} response_models.ArtistDetail
// @Failure 404 {object} utils.APIError
// @Router /artists/{id} [put]
func (ac *ArtistController) UpdateArtist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusNotFound)
		return
	}
	var req request_models.ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	artist, err := ac.artistService.UpdateArtist(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"artist": artist})
}
