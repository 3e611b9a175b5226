package domain

// Category clasifica la huella diaria total.
type Category string

const (
	CategoryLow      Category = "low"
	CategoryModerate Category = "moderate"
	CategoryHigh     Category = "high"
)

// GlobalAverageKgPerDay es la referencia usada para comparar la huella del usuario.
const GlobalAverageKgPerDay = 4.0

// CarbonFootprint es el desglose diario en kg de CO2. No se persiste.
type CarbonFootprint struct {
	TransportationKgPerDay float64  `json:"transportation_kg_per_day"`
	ElectricityKgPerDay    float64  `json:"electricity_kg_per_day"`
	ConsumptionKgPerDay    float64  `json:"consumption_kg_per_day"`
	TotalKgPerDay          float64  `json:"total_kg_per_day"`
	Category               Category `json:"category"`
}

// AnnualTonnes proyecta la huella diaria a toneladas por año.
func (f CarbonFootprint) AnnualTonnes() float64 {
	return f.TotalKgPerDay * 365 / 1000
}

// GlobalAverageDeltaPct devuelve la diferencia porcentual contra el promedio global.
func (f CarbonFootprint) GlobalAverageDeltaPct() float64 {
	return (f.TotalKgPerDay - GlobalAverageKgPerDay) / GlobalAverageKgPerDay * 100
}

// Shares devuelve el porcentaje de cada componente sobre el total.
func (f CarbonFootprint) Shares() FootprintShares {
	if f.TotalKgPerDay <= 0 {
		return FootprintShares{}
	}
	return FootprintShares{
		TransportationPct: f.TransportationKgPerDay / f.TotalKgPerDay * 100,
		ElectricityPct:    f.ElectricityKgPerDay / f.TotalKgPerDay * 100,
		ConsumptionPct:    f.ConsumptionKgPerDay / f.TotalKgPerDay * 100,
	}
}

type FootprintShares struct {
	TransportationPct float64 `json:"transportation_pct"`
	ElectricityPct    float64 `json:"electricity_pct"`
	ConsumptionPct    float64 `json:"consumption_pct"`
}
