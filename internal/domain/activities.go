package domain

import "strings"

type Transportation struct {
	Method          string  `json:"method"`
	DistanceKm      float64 `json:"distance_km"`
	WeeklyFrequency float64 `json:"weekly_frequency"`
}

type Electricity struct {
	DailyUsageKwh float64 `json:"daily_usage_kwh"`
	Source        string  `json:"source"`
}

type Consumption struct {
	WeeklyMeatPortions float64 `json:"weekly_meat_portions"`
	DailyWasteKg       float64 `json:"daily_waste_kg"`
	DailyWaterLiters   float64 `json:"daily_water_liters"`
}

// DailyActivities agrupa las actividades diarias declaradas en el tercer paso.
type DailyActivities struct {
	Transportation Transportation `json:"transportation"`
	Electricity    Electricity    `json:"electricity"`
	Consumption    Consumption    `json:"consumption"`
}

// Complete aplica los chequeos minimos antes de pasar a resultados.
func (a DailyActivities) Complete() bool {
	return strings.TrimSpace(a.Transportation.Method) != "" &&
		a.Transportation.DistanceKm > 0 &&
		a.Electricity.DailyUsageKwh > 0 &&
		strings.TrimSpace(a.Electricity.Source) != "" &&
		a.Consumption.WeeklyMeatPortions >= 0
}
