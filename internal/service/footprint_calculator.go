package service

import "carbon-edu/internal/domain"

const (
	lowThresholdKg  = 5.0
	highThresholdKg = 15.0
)

// FootprintCalculator convierte actividades diarias en un desglose de emisiones.
type FootprintCalculator struct {
	factors EmissionFactors
}

func NewFootprintCalculator(factors EmissionFactors) FootprintCalculator {
	return FootprintCalculator{factors: factors}
}

// Compute es total: categorias desconocidas aportan 0 y nunca devuelve error.
func (c FootprintCalculator) Compute(a domain.DailyActivities) domain.CarbonFootprint {
	transportation := c.factors.TransportFactor(a.Transportation.Method) *
		a.Transportation.DistanceKm *
		(a.Transportation.WeeklyFrequency / 7)

	electricity := c.factors.ElectricityFactor(a.Electricity.Source) * a.Electricity.DailyUsageKwh

	meat := (a.Consumption.WeeklyMeatPortions / 7) * c.factors.MeatPerPortion
	waste := a.Consumption.DailyWasteKg * c.factors.WastePerKg
	water := a.Consumption.DailyWaterLiters * c.factors.WaterPerLiter
	consumption := meat + waste + water

	total := transportation + electricity + consumption

	return domain.CarbonFootprint{
		TransportationKgPerDay: transportation,
		ElectricityKgPerDay:    electricity,
		ConsumptionKgPerDay:    consumption,
		TotalKgPerDay:          total,
		Category:               CategoryFor(total),
	}
}

// CategoryFor clasifica el total diario sin histeresis.
func CategoryFor(totalKgPerDay float64) domain.Category {
	switch {
	case totalKgPerDay < lowThresholdKg:
		return domain.CategoryLow
	case totalKgPerDay < highThresholdKg:
		return domain.CategoryModerate
	default:
		return domain.CategoryHigh
	}
}
