package rest

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	roadmapuc "github.com/personapath/api/internal/usecase/roadmap"
	surveyuc "github.com/personapath/api/internal/usecase/survey"
)

// NewRouter assembles the HTTP surface: survey catalog and classification,
// roadmap generation, and a liveness probe.
func NewRouter(surveySvc *surveyuc.Service, roadmapSvc *roadmapuc.Service, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(RequestID())
	engine.Use(RequestLogger())
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if slices.Contains(corsOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = corsOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", requestIDHeader}
	engine.Use(cors.New(corsConfig))

	surveyHandler := NewSurveyHandler(surveySvc)
	roadmapHandler := NewRoadmapHandler(roadmapSvc)

	api := engine.Group("/api")
	{
		api.GET("/survey/questions", surveyHandler.Questions)
		api.POST("/survey/submit", surveyHandler.Submit)
		api.POST("/roadmap/generate", roadmapHandler.Generate)
		api.POST("/roadmap/generate-weekly", roadmapHandler.GenerateWeekly)
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return engine
}
