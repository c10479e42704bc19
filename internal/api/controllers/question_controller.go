package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/internal/services"
	"fyyurtrivia/pkg/utils"
)

type QuestionController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionController(questionService services.QuestionServiceInterface) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// ListQuestions godoc
// @Summary List questions
// @Description Paginated questions with the category map
// @Tags Questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Router /questions [get]
func (qc *QuestionController) ListQuestions(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	result, err := qc.questionService.ListQuestions(c.Request.Context(), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"questions":       result.Questions,
		"totalQuestions":  result.TotalQuestions,
		"categories":      result.Categories,
		"currentCategory": "",
	})
}

// CreateOrSearch godoc
// @Summary Create or search questions
// @Description With searchTerm the body is a search, otherwise a new question
// @Tags Questions
// @Accept json
// @Produce json
// @Param request body request_models.QuestionsPostRequest true "Question or search payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.APIError
// @Failure 422 {object} utils.APIError
// @Router /questions [post]
func (qc *QuestionController) CreateOrSearch(c *gin.Context) {
	var req request_models.QuestionsPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	if req.IsSearch() {
		questions, err := qc.questionService.SearchQuestions(c.Request.Context(), *req.SearchTerm)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, gin.H{
			"questions":       questions,
			"totalQuestions":  len(questions),
			"currentCategory": "",
		})
		return
	}

	id, err := qc.questionService.AddQuestion(c.Request.Context(), req.NewQuestion())
	if err != nil {
		utils.HandleServiceErrorAs(c, err, http.StatusUnprocessableEntity)
		return
	}

	utils.RespondSuccess(c, gin.H{"questionId": id})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.APIError
// @Router /questions/{id} [delete]
func (qc *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	if err := qc.questionService.DeleteQuestion(c.Request.Context(), id); err != nil {
		utils.HandleServiceErrorAs(c, err, http.StatusUnprocessableEntity)
		return
	}

	utils.RespondSuccess(c, gin.H{"questionId": id})
}
