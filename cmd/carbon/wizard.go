package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"carbon-edu/internal/domain"
	"carbon-edu/internal/service"
)

var errQuit = errors.New("quit")

func newWizardCmd(loadAssessments func() (*service.AssessmentService, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Asistente interactivo de cuatro pasos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			assessments, err := loadAssessments()
			if err != nil {
				return err
			}
			wiz := service.NewWizard(assessments)
			return runWizard(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), wiz)
		},
	}
}

// runWizard recorre landing -> profile -> activities -> results hasta que el usuario sale.
func runWizard(in *bufio.Reader, out io.Writer, wiz service.Wizard) error {
	state := service.NewWizardState()
	for {
		var err error
		switch state.Stage {
		case service.StageLanding:
			state, err = landingStep(in, out, wiz, state)
		case service.StageProfile:
			state, err = profileStep(in, out, wiz, state)
		case service.StageActivities:
			state, err = activitiesStep(in, out, wiz, state)
		case service.StageResults:
			state, err = resultsStep(in, out, wiz, state)
		default:
			return fmt.Errorf("unknown wizard stage %q", state.Stage)
		}
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "Sampai jumpa!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func landingStep(in *bufio.Reader, out io.Writer, wiz service.Wizard, state service.WizardState) (service.WizardState, error) {
	fmt.Fprintln(out, "===== Jejak Karbon Harian =====")
	fmt.Fprintln(out, "Hitung jejak karbon Anda dan dapatkan edukasi iklim yang personal.")
	line, err := prompt(in, out, "Tekan Enter untuk mulai (q untuk keluar): ")
	if err != nil {
		return state, err
	}
	if strings.EqualFold(line, "q") {
		return state, errQuit
	}
	return wiz.Start(state)
}

func profileStep(in *bufio.Reader, out io.Writer, wiz service.Wizard, state service.WizardState) (service.WizardState, error) {
	fmt.Fprintln(out, "\n--- Profil Pengguna ---")
	var p domain.UserProfile
	var err error
	if p.Name, err = prompt(in, out, "Nama Lengkap: "); err != nil {
		return state, err
	}
	age, err := prompt(in, out, "Usia: ")
	if err != nil {
		return state, err
	}
	p.Age = int(parseNumber(age))
	edu, err := prompt(in, out, "Tingkat Pendidikan (sd/smp/sma/diploma/sarjana/magister/doktor): ")
	if err != nil {
		return state, err
	}
	p.EducationLevel = domain.EducationLevel(edu)
	if p.Location, err = prompt(in, out, "Lokasi: "); err != nil {
		return state, err
	}

	next, err := wiz.SubmitProfile(state, p)
	if errors.Is(err, service.ErrIncompleteProfile) {
		fmt.Fprintln(out, "Profil belum lengkap, silakan isi semua kolom.")
		return state, nil
	}
	return next, err
}

func activitiesStep(in *bufio.Reader, out io.Writer, wiz service.Wizard, state service.WizardState) (service.WizardState, error) {
	fmt.Fprintln(out, "\n--- Tracking Aktivitas Harian ---")
	var a domain.DailyActivities
	fields := []struct {
		label string
		text  *string
		num   *float64
	}{
		{label: "Transportasi utama (walking/bicycle/motorcycle/car/public_transport/plane): ", text: &a.Transportation.Method},
		{label: "Jarak per perjalanan (km): ", num: &a.Transportation.DistanceKm},
		{label: "Frekuensi per minggu: ", num: &a.Transportation.WeeklyFrequency},
		{label: "Penggunaan listrik harian (kWh): ", num: &a.Electricity.DailyUsageKwh},
		{label: "Sumber listrik (pln_coal/pln_gas/solar/hydroelectric/wind/mixed): ", text: &a.Electricity.Source},
		{label: "Porsi daging per minggu: ", num: &a.Consumption.WeeklyMeatPortions},
		{label: "Sampah harian (kg): ", num: &a.Consumption.DailyWasteKg},
		{label: "Penggunaan air harian (liter): ", num: &a.Consumption.DailyWaterLiters},
	}
	for _, f := range fields {
		line, err := prompt(in, out, f.label)
		if err != nil {
			return state, err
		}
		if f.text != nil {
			*f.text = line
		} else {
			*f.num = parseNumber(line)
		}
	}

	next, err := wiz.SubmitActivities(state, a)
	if errors.Is(err, service.ErrIncompleteActivities) {
		fmt.Fprintln(out, "Data aktivitas belum valid: metode, jarak, penggunaan listrik dan sumber listrik wajib diisi.")
		return state, nil
	}
	return next, err
}

func resultsStep(in *bufio.Reader, out io.Writer, wiz service.Wizard, state service.WizardState) (service.WizardState, error) {
	a := state.Assessment
	fmt.Fprintf(out, "\n===== Hasil Analisis untuk %s =====\n", state.Profile.Name)
	printFootprint(out, a.Footprint)

	fmt.Fprintln(out, "\n[Dampak]")
	fmt.Fprintln(out, a.Insight.ImpactText)
	fmt.Fprintln(out, "\n[Rekomendasi]")
	if len(a.Insight.Recommendations) == 0 {
		fmt.Fprintln(out, "- Pertahankan kebiasaan baik Anda!")
	}
	for _, r := range a.Insight.Recommendations {
		fmt.Fprintf(out, "- %s\n", r)
	}
	fmt.Fprintln(out, "\n[Edukasi]")
	fmt.Fprintln(out, a.Insight.ClimateExplanation)

	for {
		line, err := prompt(in, out, "\n[U] Hitung Ulang  [Q] Keluar: ")
		if err != nil {
			return state, err
		}
		switch strings.ToUpper(line) {
		case "U":
			return wiz.Reset(state)
		case "Q":
			return state, errQuit
		default:
			fmt.Fprintln(out, "Pilihan tidak valid.")
		}
	}
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseNumber convierte texto a numero; entradas invalidas (incluidas NaN e Inf) valen 0.
func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(raw, ",", ".")), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
