package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyurtrivia/internal/api"
	"fyyurtrivia/internal/api/controllers"
	"fyyurtrivia/internal/config"
	"fyyurtrivia/pkg/middleware"
)

type toolEnv struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

type routerParams struct {
	fx.In

	Logger   *zap.Logger
	Metrics  *middleware.Metrics
	Category *controllers.CategoryController
	Question *controllers.QuestionController
	Quiz     *controllers.QuizController
	Home     *controllers.HomeController
	Venue    *controllers.VenueController
	Artist   *controllers.ArtistController
	Show     *controllers.ShowController
}

func ProvideMetrics() *middleware.Metrics {
	return middleware.NewMetrics()
}

func ProvideRouter(cfg *config.Config, p routerParams) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(p.Logger, p.Metrics, api.Controllers{
		Category: p.Category,
		Question: p.Question,
		Quiz:     p.Quiz,
		Home:     p.Home,
		Venue:    p.Venue,
		Artist:   p.Artist,
		Show:     p.Show,
	})
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
