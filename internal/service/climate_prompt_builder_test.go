package service

import (
	"strings"
	"testing"

	"carbon-edu/internal/domain"
)

func TestKnowledgeContextJoinsAllRows(t *testing.T) {
	b := ClimatePromptBuilder{}
	got := b.KnowledgeContext([]domain.KnowledgeEntry{
		{Category: "a", Topic: "t1", Content: "c1"},
		{Category: "b", Topic: "t2", Content: "c2"},
	})
	want := "[a] t1: c1\n\n[b] t2: c2"
	if got != want {
		t.Fatalf("context = %q, want %q", got, want)
	}
	if b.KnowledgeContext(nil) != "" {
		t.Fatalf("expected empty context without rows")
	}
}

func TestLanguageStyle(t *testing.T) {
	b := ClimatePromptBuilder{}
	cases := []struct {
		name    string
		profile *domain.UserProfile
		prefix  string
	}{
		{name: "nil profile defaults to adult", profile: nil, prefix: "Gunakan bahasa yang informatif"},
		{name: "sd", profile: &domain.UserProfile{Age: 30, EducationLevel: domain.EducationSD}, prefix: "Gunakan bahasa yang sangat sederhana"},
		{name: "child by age", profile: &domain.UserProfile{Age: 10, EducationLevel: domain.EducationSarjana}, prefix: "Gunakan bahasa yang sangat sederhana"},
		{name: "smp", profile: &domain.UserProfile{Age: 14, EducationLevel: domain.EducationSMP}, prefix: "Gunakan bahasa yang sederhana namun"},
		{name: "sma by age", profile: &domain.UserProfile{Age: 16, EducationLevel: domain.EducationMagister}, prefix: "Gunakan bahasa yang jelas"},
		{name: "secondary alias", profile: &domain.UserProfile{Age: 40, EducationLevel: "secondary"}, prefix: "Gunakan bahasa yang jelas"},
		{name: "adult graduate", profile: &domain.UserProfile{Age: 40, EducationLevel: domain.EducationDoktor}, prefix: "Gunakan bahasa yang informatif"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.LanguageStyle(tc.profile); !strings.HasPrefix(got, tc.prefix) {
				t.Fatalf("style = %q, want prefix %q", got, tc.prefix)
			}
		})
	}
}

func TestSystemPromptDefaults(t *testing.T) {
	got := ClimatePromptBuilder{}.SystemPrompt(nil, nil)
	if !strings.Contains(got, "Usia: 25 tahun") || !strings.Contains(got, "Tingkat Pendidikan: umum") {
		t.Fatalf("expected default profile in prompt, got %q", got)
	}
	if !strings.Contains(got, "MOTIVASI") {
		t.Fatalf("expected answer format in prompt")
	}
}

func TestUserPromptAnnualProjection(t *testing.T) {
	got := ClimatePromptBuilder{}.UserPrompt(AIInsightRequest{
		CarbonFootprint: 10,
		Breakdown:       Breakdown{Transport: 5, Electricity: 3, Consumption: 2},
	})
	for _, want := range []string{"10.00 kg CO2/hari", "3.65 ton CO2/tahun", "Transportasi: 5.00", "Listrik: 3.00", "Konsumsi: 2.00"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in user prompt %q", want, got)
		}
	}
}
