package controllers

import (
	"github.com/gin-gonic/gin"

	"fyyurtrivia/internal/services"
	"fyyurtrivia/pkg/utils"
)

type HomeController struct {
	venueService  services.VenueServiceInterface
	artistService services.ArtistServiceInterface
}

func NewHomeController(venueService services.VenueServiceInterface, artistService services.ArtistServiceInterface) *HomeController {
	return &HomeController{venueService: venueService, artistService: artistService}
}

// Home godoc
// @Summary Recently listed venues and artists
// @Tags Home
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (hc *HomeController) Home(c *gin.Context) {
	ctx := c.Request.Context()

	venues, err := hc.venueService.ListRecent(ctx)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	artists, err := hc.artistService.ListRecent(ctx)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"venues": venues, "artists": artists})
}
