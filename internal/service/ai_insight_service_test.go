package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"carbon-edu/internal/domain"
	"carbon-edu/internal/llm"
)

type mockKnowledgeSource struct {
	entries []domain.KnowledgeEntry
	err     error
	calls   int
}

func (m *mockKnowledgeSource) ListAll(ctx context.Context) ([]domain.KnowledgeEntry, error) {
	m.calls++
	return m.entries, m.err
}

func sampleAIRequest() AIInsightRequest {
	return AIInsightRequest{
		CarbonFootprint: 32.33,
		Breakdown:       Breakdown{Transport: 12.5, Electricity: 12, Consumption: 7.83},
		UserProfile:     &domain.UserProfile{Name: "Budi", Age: 30, EducationLevel: domain.EducationSarjana, Location: "Jakarta"},
	}
}

func TestAIInsightServiceUsesAllKnowledgeRows(t *testing.T) {
	llmClient := &llm.MockClient{Response: "DAMPAK IKLIM ..."}
	knowledge := &mockKnowledgeSource{entries: []domain.KnowledgeEntry{
		{Category: "efek_rumah_kaca", Topic: "CO2", Content: "CO2 menahan panas."},
		{Category: "laut", Topic: "Pengasaman", Content: "Laut menyerap CO2."},
	}}
	svc := NewAIInsightService(llmClient, knowledge, nil, 0, zap.NewNop())

	res, err := svc.Generate(context.Background(), sampleAIRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Insights != "DAMPAK IKLIM ..." || res.Cached {
		t.Fatalf("unexpected result: %+v", res)
	}
	for _, want := range []string{"[efek_rumah_kaca] CO2: CO2 menahan panas.", "[laut] Pengasaman: Laut menyerap CO2.", "Usia: 30 tahun", "Tingkat Pendidikan: sarjana"} {
		if !strings.Contains(llmClient.LastSystemPrompt, want) {
			t.Fatalf("expected system prompt to contain %q", want)
		}
	}
	if !strings.Contains(llmClient.LastUserPrompt, "32.33 kg CO2/hari") {
		t.Fatalf("expected daily total in user prompt, got %q", llmClient.LastUserPrompt)
	}
}

func TestAIInsightServiceKnowledgeFailureIsNotFatal(t *testing.T) {
	llmClient := &llm.MockClient{Response: "ok"}
	knowledge := &mockKnowledgeSource{err: errors.New("connection refused")}
	svc := NewAIInsightService(llmClient, knowledge, nil, 0, zap.NewNop())

	if _, err := svc.Generate(context.Background(), sampleAIRequest()); err != nil {
		t.Fatalf("expected generation to continue without knowledge, got %v", err)
	}
	if llmClient.Calls != 1 {
		t.Fatalf("expected llm called once, got %d", llmClient.Calls)
	}
}

func TestAIInsightServicePropagatesClassifiedErrors(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		target    error
		retryable bool
	}{
		{name: "rate limited", err: &llm.StatusError{StatusCode: 429}, target: llm.ErrRateLimited, retryable: true},
		{name: "quota", err: &llm.StatusError{StatusCode: 402}, target: llm.ErrQuotaExhausted, retryable: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAIInsightService(&llm.MockClient{Err: tc.err}, nil, nil, 0, zap.NewNop())
			_, err := svc.Generate(context.Background(), sampleAIRequest())
			if !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
			if llm.IsRetryable(err) != tc.retryable {
				t.Fatalf("expected retryable=%v for %v", tc.retryable, err)
			}
		})
	}
}

func TestAIInsightServiceWithoutLLM(t *testing.T) {
	svc := NewAIInsightService(nil, nil, nil, 0, zap.NewNop())
	if _, err := svc.Generate(context.Background(), sampleAIRequest()); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestAIInsightServiceCachesResponses(t *testing.T) {
	llmClient := &llm.MockClient{Response: "cached text"}
	knowledge := &mockKnowledgeSource{}
	svc := NewAIInsightService(llmClient, knowledge, NewMemoryInsightCache(0), time.Hour, zap.NewNop())

	first, err := svc.Generate(context.Background(), sampleAIRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Generate(context.Background(), sampleAIRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached || !second.Cached || second.Insights != "cached text" {
		t.Fatalf("unexpected cache behaviour: first=%+v second=%+v", first, second)
	}
	if llmClient.Calls != 1 || knowledge.calls != 1 {
		t.Fatalf("expected one llm call and one knowledge read, got %d/%d", llmClient.Calls, knowledge.calls)
	}

	other := sampleAIRequest()
	other.CarbonFootprint = 3
	if res, _ := svc.Generate(context.Background(), other); res.Cached {
		t.Fatalf("expected different payload to miss the cache")
	}
}

func TestAIInsightServiceSkipsCacheForUnencodablePayload(t *testing.T) {
	llmClient := &llm.MockClient{Response: "teks"}
	cache := &countingCache{InsightCache: NewMemoryInsightCache(0)}
	svc := NewAIInsightService(llmClient, nil, cache, time.Hour, zap.NewNop())

	for _, transport := range []float64{1, 99} {
		req := sampleAIRequest()
		req.CarbonFootprint = math.NaN()
		req.Breakdown.Transport = transport
		res, err := svc.Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Cached {
			t.Fatalf("payload that cannot be encoded must not be served from cache")
		}
	}
	if llmClient.Calls != 2 {
		t.Fatalf("expected both requests to reach the llm, got %d calls", llmClient.Calls)
	}
	if cache.gets != 0 || cache.sets != 0 {
		t.Fatalf("expected cache untouched, got %d gets / %d sets", cache.gets, cache.sets)
	}
}

type countingCache struct {
	InsightCache
	gets, sets int
}

func (c *countingCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.gets++
	return c.InsightCache.Get(ctx, key)
}

func (c *countingCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.sets++
	return c.InsightCache.Set(ctx, key, value, ttl)
}
