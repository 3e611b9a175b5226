package service

import "carbon-edu/internal/domain"

const (
	youngAgeLimit = 25

	transportationRecommendationKg = 5.0
	electricityRecommendationKg    = 8.0
	consumptionRecommendationKg    = 3.0
)

// InsightGenerator arma el texto de impacto, las recomendaciones y la explicacion climatica.
type InsightGenerator struct{}

func (InsightGenerator) Generate(f domain.CarbonFootprint, p domain.UserProfile) domain.Insight {
	higherEd := p.EducationLevel.AtLeastBachelor()
	return domain.Insight{
		ImpactText:         impactText(f.Category, p.Age, higherEd),
		Recommendations:    recommendations(f),
		ClimateExplanation: climateExplanation(higherEd),
	}
}

func impactText(category domain.Category, age int, higherEd bool) string {
	switch category {
	case domain.CategoryLow:
		if age < youngAgeLimit {
			return impactLowYoung
		}
		return impactLowAdult
	case domain.CategoryModerate:
		if higherEd {
			return impactModerateHigherEd
		}
		return impactModerate
	default:
		return impactHigh
	}
}

// Cada bloque se agrega de forma independiente, respetando el orden.
func recommendations(f domain.CarbonFootprint) []string {
	recs := make([]string, 0, 6)
	if f.TransportationKgPerDay > transportationRecommendationKg {
		recs = append(recs, transportationRecommendations...)
	}
	if f.ElectricityKgPerDay > electricityRecommendationKg {
		recs = append(recs, electricityRecommendations...)
	}
	if f.ConsumptionKgPerDay > consumptionRecommendationKg {
		recs = append(recs, consumptionRecommendations...)
	}
	return recs
}

func climateExplanation(higherEd bool) string {
	if higherEd {
		return explanationScientific
	}
	return explanationPlain
}
