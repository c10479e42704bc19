package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "fyyurtrivia/docs"
	"fyyurtrivia/internal/api/controllers"
	"fyyurtrivia/pkg/middleware"
	"fyyurtrivia/pkg/utils"
)

type Controllers struct {
	Category *controllers.CategoryController
	Question *controllers.QuestionController
	Quiz     *controllers.QuizController
	Home     *controllers.HomeController
	Venue    *controllers.VenueController
	Artist   *controllers.ArtistController
	Show     *controllers.ShowController
}

// @title           Fyyur Trivia API
// @version         1.0
// @description     Trivia questions and quizzes, plus venue and artist booking.
// @BasePath        /

func NewRouter(logger *zap.Logger, metrics *middleware.Metrics, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	r.NoRoute(func(c *gin.Context) { utils.RespondError(c, http.StatusNotFound) })
	r.NoMethod(func(c *gin.Context) { utils.RespondError(c, http.StatusMethodNotAllowed) })

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterRoutes(r, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/categories", ctrl.Category.ListCategories)
	r.GET("/categories/:id/questions", ctrl.Category.QuestionsByCategory)

	questions := r.Group("/questions")
	questions.GET("", ctrl.Question.ListQuestions)
	questions.POST("", ctrl.Question.CreateOrSearch)
	questions.DELETE("/:id", ctrl.Question.DeleteQuestion)

	r.POST("/quizzes", ctrl.Quiz.NextQuestion)

	r.GET("/", ctrl.Home.Home)

	venues := r.Group("/venues")
	venues.GET("", ctrl.Venue.ListVenues)
	venues.POST("", ctrl.Venue.CreateVenue)
	venues.POST("/search", ctrl.Venue.SearchVenues)
	venues.GET("/:id", ctrl.Venue.GetVenue)
	venues.PUT("/:id", ctrl.Venue.UpdateVenue)
	venues.DELETE("/:id", ctrl.Venue.DeleteVenue)

	artists := r.Group("/artists")
	artists.GET("", ctrl.Artist.ListArtists)
	artists.POST("", ctrl.Artist.CreateArtist)
	artists.POST("/search", ctrl.Artist.SearchArtists)
	artists.GET("/:id", ctrl.Artist.GetArtist)
	artists.PUT("/:id", ctrl.Artist.UpdateArtist)

	shows := r.Group("/shows")
	shows.GET("", ctrl.Show.ListShows)
	shows.POST("", ctrl.Show.CreateShow)
}
