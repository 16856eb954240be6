package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personapath/api/internal/domain/survey"
	surveyuc "github.com/personapath/api/internal/usecase/survey"
)

// SurveyHandler serves the fixed question catalog and runs persona
// classification on submitted answers.
type SurveyHandler struct {
	service *surveyuc.Service
}

func NewSurveyHandler(service *surveyuc.Service) *SurveyHandler {
	return &SurveyHandler{service: service}
}

// Questions returns the fixed catalog as a bare ordered array.
func (h *SurveyHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Questions())
}

func (h *SurveyHandler) Submit(c *gin.Context) {
	var sub survey.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respondBadRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	analysis, err := h.service.Analyze(c.Request.Context(), sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
