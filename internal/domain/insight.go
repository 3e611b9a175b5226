package domain

import "time"

// Insight es el texto explicativo generado a partir de la huella y el perfil.
type Insight struct {
	ImpactText         string   `json:"impact_text"`
	Recommendations    []string `json:"recommendations"`
	ClimateExplanation string   `json:"climate_explanation"`
}

// Assessment agrupa el resultado completo que se muestra en la pantalla final.
type Assessment struct {
	ID                    string          `json:"id"`
	Footprint             CarbonFootprint `json:"footprint"`
	Insight               Insight         `json:"insight"`
	AnnualTonnes          float64         `json:"annual_tonnes"`
	GlobalAverageDeltaPct float64         `json:"global_average_delta_pct"`
	Shares                FootprintShares `json:"shares"`
	CreatedAt             time.Time       `json:"created_at"`
}
