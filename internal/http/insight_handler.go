package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carbon-edu/internal/llm"
	"carbon-edu/internal/service"
)

// InsightHandler expone el servicio opcional de insights con LLM.
type InsightHandler struct {
	logger *zap.Logger
	ai     *service.AIInsightService
}

func NewInsightHandler(logger *zap.Logger, ai *service.AIInsightService) *InsightHandler {
	return &InsightHandler{
		logger: logger,
		ai:     ai,
	}
}

// GenerateAI maneja POST /insights/ai.
func (h *InsightHandler) GenerateAI(c *gin.Context) {
	var req aiInsightDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid ai insight request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.ai == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai insights not configured", "retryable": false})
		return
	}

	result, err := h.ai.Generate(c.Request.Context(), req.toRequest())
	if err != nil {
		status, body := aiErrorResponse(err)
		h.logger.Warn("ai insight failed", zap.Error(err), zap.Int("status", status))
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, result)
}

// aiErrorResponse traduce errores del LLM a mensajes informativos para el usuario.
func aiErrorResponse(err error) (int, gin.H) {
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		return http.StatusTooManyRequests, gin.H{
			"error":     "Rate limit tercapai. Silakan coba lagi nanti.",
			"retryable": true,
		}
	case errors.Is(err, llm.ErrQuotaExhausted):
		return http.StatusPaymentRequired, gin.H{
			"error":     "Kredit AI habis. Silakan tambahkan kredit di workspace settings.",
			"retryable": false,
		}
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable, gin.H{
			"error":     "ai insights not configured",
			"retryable": false,
		}
	default:
		return http.StatusBadGateway, gin.H{
			"error":     "could not generate ai insights",
			"retryable": llm.IsRetryable(err),
		}
	}
}
