package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EmissionFactors contiene los coeficientes en kg de CO2 por unidad declarada.
type EmissionFactors struct {
	Transport      map[string]float64 `yaml:"transport"`
	Electricity    map[string]float64 `yaml:"electricity"`
	MeatPerPortion float64            `yaml:"meat_per_portion"`
	WastePerKg     float64            `yaml:"waste_per_kg"`
	WaterPerLiter  float64            `yaml:"water_per_liter"`
}

// DefaultEmissionFactors devuelve la tabla de factores por defecto.
func DefaultEmissionFactors() EmissionFactors {
	return EmissionFactors{
		Transport: map[string]float64{
			"walking":          0,
			"bicycle":          0,
			"motorcycle":       0.1,
			"car":              0.25,
			"public_transport": 0.05,
			"plane":            0.3,
		},
		Electricity: map[string]float64{
			"pln_coal":      0.8,
			"pln_gas":       0.4,
			"solar":         0.05,
			"hydroelectric": 0.02,
			"wind":          0.01,
			"mixed":         0.5,
		},
		MeatPerPortion: 6.5,
		WastePerKg:     0.5,
		WaterPerLiter:  0.0004,
	}
}

// TransportFactor devuelve 0 para metodos desconocidos.
func (f EmissionFactors) TransportFactor(method string) float64 {
	return f.Transport[method]
}

// ElectricityFactor devuelve 0 para fuentes desconocidas.
func (f EmissionFactors) ElectricityFactor(source string) float64 {
	return f.Electricity[source]
}

type emissionFactorsFile struct {
	Transport      map[string]float64 `yaml:"transport"`
	Electricity    map[string]float64 `yaml:"electricity"`
	MeatPerPortion *float64           `yaml:"meat_per_portion"`
	WastePerKg     *float64           `yaml:"waste_per_kg"`
	WaterPerLiter  *float64           `yaml:"water_per_liter"`
}

// LoadEmissionFactors superpone el archivo YAML sobre los factores por defecto.
// Un path vacio devuelve los valores por defecto.
func LoadEmissionFactors(path string) (EmissionFactors, error) {
	factors := DefaultEmissionFactors()
	if path == "" {
		return factors, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return EmissionFactors{}, fmt.Errorf("read emission factors: %w", err)
	}
	return ParseEmissionFactors(raw)
}

// ParseEmissionFactors aplica el contenido YAML sobre los valores por defecto.
func ParseEmissionFactors(raw []byte) (EmissionFactors, error) {
	factors := DefaultEmissionFactors()

	var file emissionFactorsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return EmissionFactors{}, fmt.Errorf("parse emission factors: %w", err)
	}

	for k, v := range file.Transport {
		if v < 0 {
			return EmissionFactors{}, fmt.Errorf("negative transport factor for %q", k)
		}
		factors.Transport[k] = v
	}
	for k, v := range file.Electricity {
		if v < 0 {
			return EmissionFactors{}, fmt.Errorf("negative electricity factor for %q", k)
		}
		factors.Electricity[k] = v
	}
	if file.MeatPerPortion != nil {
		factors.MeatPerPortion = *file.MeatPerPortion
	}
	if file.WastePerKg != nil {
		factors.WastePerKg = *file.WastePerKg
	}
	if file.WaterPerLiter != nil {
		factors.WaterPerLiter = *file.WaterPerLiter
	}
	return factors, nil
}
