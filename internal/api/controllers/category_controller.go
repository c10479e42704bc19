package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fyyurtrivia/internal/services"
	"fyyurtrivia/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
	questionService services.QuestionServiceInterface
}

func NewCategoryController(
	categoryService services.CategoryServiceInterface,
	questionService services.QuestionServiceInterface,
) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories godoc
// @Summary List categories
// @Description Map of category id to category name
// @Tags Categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"categories": categories})
}

// QuestionsByCategory godoc
// @Summary List questions in a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Router /categories/{id}/questions [get]
func (cc *CategoryController) QuestionsByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusNotFound)
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	result, err := cc.questionService.QuestionsByCategory(c.Request.Context(), categoryID, page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"questions":       result.Questions,
		"totalQuestions":  result.TotalQuestions,
		"currentCategory": result.CurrentCategory,
	})
}
