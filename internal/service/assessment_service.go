package service

import (
	"time"

	"github.com/google/uuid"

	"carbon-edu/internal/domain"
)

// Assessor calcula el resultado completo a partir del perfil y las actividades.
type Assessor interface {
	Assess(profile domain.UserProfile, activities domain.DailyActivities) domain.Assessment
}

// AssessmentService combina calculadora y generador de insights. No tiene I/O.
type AssessmentService struct {
	calculator FootprintCalculator
	insights   InsightGenerator
	now        func() time.Time
}

func NewAssessmentService(factors EmissionFactors) *AssessmentService {
	return &AssessmentService{
		calculator: NewFootprintCalculator(factors),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Footprint expone solo el calculo de huella.
func (s *AssessmentService) Footprint(activities domain.DailyActivities) domain.CarbonFootprint {
	return s.calculator.Compute(activities)
}

func (s *AssessmentService) Assess(profile domain.UserProfile, activities domain.DailyActivities) domain.Assessment {
	footprint := s.calculator.Compute(activities)
	return domain.Assessment{
		ID:                    uuid.NewString(),
		Footprint:             footprint,
		Insight:               s.insights.Generate(footprint, profile),
		AnnualTonnes:          footprint.AnnualTonnes(),
		GlobalAverageDeltaPct: footprint.GlobalAverageDeltaPct(),
		Shares:                footprint.Shares(),
		CreatedAt:             s.now(),
	}
}
