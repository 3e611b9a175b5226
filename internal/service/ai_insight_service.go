package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"carbon-edu/internal/domain"
	"carbon-edu/internal/llm"
)

// KnowledgeSource entrega las filas de conocimiento usadas como contexto.
type KnowledgeSource interface {
	ListAll(ctx context.Context) ([]domain.KnowledgeEntry, error)
}

// AIInsightResult es la respuesta del LLM y si vino de cache.
type AIInsightResult struct {
	Insights string `json:"insights"`
	Cached   bool   `json:"cached"`
}

// AIInsightService genera explicaciones con un LLM, usando la tabla de conocimiento como contexto.
// Es opcional: el resultado base nunca depende de este servicio.
type AIInsightService struct {
	llmClient llm.LLMClient
	knowledge KnowledgeSource
	cache     InsightCache
	cacheTTL  time.Duration
	prompts   ClimatePromptBuilder
	logger    *zap.Logger
}

func NewAIInsightService(
	llmClient llm.LLMClient,
	knowledge KnowledgeSource,
	cache InsightCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *AIInsightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AIInsightService{
		llmClient: llmClient,
		knowledge: knowledge,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (s *AIInsightService) Generate(ctx context.Context, req AIInsightRequest) (AIInsightResult, error) {
	ctx, span := otel.Tracer("carbon-edu/service").Start(ctx, "ai_insight.generate")
	defer span.End()
	span.SetAttributes(attribute.Float64("footprint.total_kg_per_day", req.CarbonFootprint))

	if s.llmClient == nil {
		return AIInsightResult{}, llm.ErrNotConfigured
	}

	key, err := InsightCacheKey(req)
	if err != nil {
		s.logger.Warn("insight cache disabled for request", zap.Error(err))
	}
	useCache := s.cache != nil && err == nil
	if useCache {
		if text, ok, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn("insight cache get failed", zap.Error(err))
		} else if ok {
			span.SetAttributes(attribute.Bool("insight.cached", true))
			return AIInsightResult{Insights: text, Cached: true}, nil
		}
	}

	entries := s.loadKnowledge(ctx)
	span.SetAttributes(attribute.Int("knowledge.entries", len(entries)))

	systemPrompt := s.prompts.SystemPrompt(entries, req.UserProfile)
	userPrompt := s.prompts.UserPrompt(req)

	text, err := s.llmClient.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "llm generate failed")
		return AIInsightResult{}, fmt.Errorf("generate ai insight: %w", err)
	}
	text = cleanInsightText(text)

	if useCache && s.cacheTTL > 0 {
		if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil {
			s.logger.Warn("insight cache set failed", zap.Error(err))
		}
	}
	return AIInsightResult{Insights: text}, nil
}

// Un fallo al leer el conocimiento no bloquea la generacion: se sigue con contexto vacio.
func (s *AIInsightService) loadKnowledge(ctx context.Context) []domain.KnowledgeEntry {
	if s.knowledge == nil {
		return nil
	}
	entries, err := s.knowledge.ListAll(ctx)
	if err != nil {
		s.logger.Warn("climate knowledge fetch failed", zap.Error(err))
		return nil
	}
	s.logger.Info("climate knowledge retrieved", zap.Int("entries", len(entries)))
	return entries
}
