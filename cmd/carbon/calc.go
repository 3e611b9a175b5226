package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"carbon-edu/internal/domain"
	"carbon-edu/internal/service"
)

func newCalcCmd(loadAssessments func() (*service.AssessmentService, error)) *cobra.Command {
	var (
		activities domain.DailyActivities
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calcula la huella diaria a partir de flags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			assessments, err := loadAssessments()
			if err != nil {
				return err
			}
			footprint := assessments.Footprint(activities)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(footprint)
			}
			printFootprint(cmd.OutOrStdout(), footprint)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&activities.Transportation.Method, "method", "", "walking|bicycle|motorcycle|car|public_transport|plane")
	f.Float64Var(&activities.Transportation.DistanceKm, "distance", 0, "distancia por viaje en km")
	f.Float64Var(&activities.Transportation.WeeklyFrequency, "frequency", 0, "viajes por semana")
	f.Float64Var(&activities.Electricity.DailyUsageKwh, "usage", 0, "consumo electrico diario en kWh")
	f.StringVar(&activities.Electricity.Source, "source", "", "pln_coal|pln_gas|solar|hydroelectric|wind|mixed")
	f.Float64Var(&activities.Consumption.WeeklyMeatPortions, "meat", 0, "porciones de carne por semana")
	f.Float64Var(&activities.Consumption.DailyWasteKg, "waste", 0, "residuos diarios en kg")
	f.Float64Var(&activities.Consumption.DailyWaterLiters, "water", 0, "agua diaria en litros")
	f.BoolVar(&asJSON, "json", false, "salida en JSON")

	return cmd
}

func printFootprint(w io.Writer, f domain.CarbonFootprint) {
	shares := f.Shares()
	fmt.Fprintf(w, "Transportasi : %8.2f kg CO2/hari (%5.1f%%)\n", f.TransportationKgPerDay, shares.TransportationPct)
	fmt.Fprintf(w, "Listrik      : %8.2f kg CO2/hari (%5.1f%%)\n", f.ElectricityKgPerDay, shares.ElectricityPct)
	fmt.Fprintf(w, "Konsumsi     : %8.2f kg CO2/hari (%5.1f%%)\n", f.ConsumptionKgPerDay, shares.ConsumptionPct)
	fmt.Fprintf(w, "Total        : %8.2f kg CO2/hari [%s]\n", f.TotalKgPerDay, categoryLabel(f.Category))
	fmt.Fprintf(w, "Emisi tahunan: %8.1f ton\n", f.AnnualTonnes())
	fmt.Fprintf(w, "vs rata-rata global: %+.0f%%\n", f.GlobalAverageDeltaPct())
}

func categoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryLow:
		return "Rendah"
	case domain.CategoryModerate:
		return "Sedang"
	case domain.CategoryHigh:
		return "Tinggi"
	default:
		return "Unknown"
	}
}
