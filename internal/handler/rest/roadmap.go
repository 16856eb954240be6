package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	roadmapuc "github.com/personapath/api/internal/usecase/roadmap"
)

// RoadmapHandler generates day-by-day and week-by-week learning plans for a
// classified persona.
type RoadmapHandler struct {
	service *roadmapuc.Service
}

func NewRoadmapHandler(service *roadmapuc.Service) *RoadmapHandler {
	return &RoadmapHandler{service: service}
}

func (h *RoadmapHandler) Generate(c *gin.Context) {
	personaType := c.Query("persona_type")
	userID := c.Query("user_id")

	rawDuration := c.DefaultQuery("duration_months", "1")
	durationMonths, err := strconv.Atoi(rawDuration)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("duration_months must be an integer, got %q", rawDuration))
		return
	}

	plan, err := h.service.GenerateDaily(c.Request.Context(), personaType, durationMonths, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *RoadmapHandler) GenerateWeekly(c *gin.Context) {
	personaType := c.Query("persona_type")
	userID := c.Query("user_id")

	plan, err := h.service.GenerateWeekly(c.Request.Context(), personaType, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
