package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/internal/services"
	"fyyurtrivia/pkg/utils"
)

type ShowController struct {
	showService services.ShowServiceInterface
}

func NewShowController(showService services.ShowServiceInterface) *ShowController {
	return &ShowController{showService: showService}
}

// ListShows godoc
// @Summary List upcoming shows
// @Tags Shows
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /shows [get]
func (sc *ShowController) ListShows(c *gin.Context) {
	shows, err := sc.showService.ListUpcoming(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"shows": shows})
}

// CreateShow godoc
// @Summary Book a show
// @Tags Shows
// @Accept json
// @Produce json
// @Param request body request_models.ShowRequest true "Show payload"
// @Success 200 {object} response_models.Show
// @Failure 400 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Router /shows [post]
func (sc *ShowController) CreateShow(c *gin.Context) {
	var req request_models.ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	show, err := sc.showService.CreateShow(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"show": show})
}
