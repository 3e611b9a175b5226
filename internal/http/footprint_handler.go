package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carbon-edu/internal/service"
)

// FootprintHandler expone la calculadora y el generador de insights base.
type FootprintHandler struct {
	logger      *zap.Logger
	assessments *service.AssessmentService
}

func NewFootprintHandler(logger *zap.Logger, assessments *service.AssessmentService) *FootprintHandler {
	return &FootprintHandler{
		logger:      logger,
		assessments: assessments,
	}
}

// Calculate maneja POST /footprint.
func (h *FootprintHandler) Calculate(c *gin.Context) {
	var req struct {
		Activities activitiesDTO `json:"activities"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid footprint request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	footprint := h.assessments.Footprint(req.Activities.toDomain())
	c.JSON(http.StatusOK, gin.H{"footprint": footprint})
}

// Assess maneja POST /insights. No depende del LLM.
func (h *FootprintHandler) Assess(c *gin.Context) {
	var req struct {
		Profile    profileDTO    `json:"profile"`
		Activities activitiesDTO `json:"activities"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	assessment := h.assessments.Assess(req.Profile.toDomain(), req.Activities.toDomain())
	h.logger.Info("assessment computed",
		zap.String("assessment_id", assessment.ID),
		zap.String("category", string(assessment.Footprint.Category)),
		zap.Float64("total_kg_per_day", assessment.Footprint.TotalKgPerDay),
	)
	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}
