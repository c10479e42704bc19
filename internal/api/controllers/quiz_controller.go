package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/internal/services"
	"fyyurtrivia/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{quizService: quizService}
}

// NextQuestion godoc
// @Summary Next quiz question
// @Description Random question from the category (0 for all) not in previous_questions.
// @Description The question field is omitted once every question was asked.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body request_models.QuizRequest true "Quiz state"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.APIError
// @Failure 422 {object} utils.APIError
// @Router /quizzes [post]
func (qc *QuizController) NextQuestion(c *gin.Context) {
	var req request_models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}
	if req.QuizCategory == nil || req.QuizCategory.ID == nil || req.QuizCategory.ID.Int() < 0 {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	asked := make([]uint, 0, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		if id > 0 {
			asked = append(asked, uint(id))
		}
	}

	question, err := qc.quizService.NextQuestion(c.Request.Context(), uint(req.QuizCategory.ID.Int()), asked)
	if err != nil {
		utils.HandleServiceErrorAs(c, err, http.StatusUnprocessableEntity)
		return
	}
	if question == nil {
		utils.RespondSuccess(c, nil)
		return
	}

	utils.RespondSuccess(c, gin.H{"question": question})
}
