package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"carbon-edu/internal/config"
	"carbon-edu/internal/service"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var factorsFile string

	root := &cobra.Command{
		Use:           "carbon",
		Short:         "Kalkulator jejak karbon harian dan edukasi iklim",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&factorsFile, "factors", "", "archivo YAML con factores de emision (default: EMISSION_FACTORS_FILE)")

	loadAssessments := func() (*service.AssessmentService, error) {
		path := factorsFile
		if path == "" {
			path = os.Getenv("EMISSION_FACTORS_FILE")
		}
		factors, err := service.LoadEmissionFactors(path)
		if err != nil {
			return nil, err
		}
		return service.NewAssessmentService(factors), nil
	}

	root.AddCommand(
		newCalcCmd(loadAssessments),
		newWizardCmd(loadAssessments),
		newKnowledgeCmd(),
		newTokenCmd(),
	)
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
