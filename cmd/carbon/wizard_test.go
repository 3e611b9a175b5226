package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"carbon-edu/internal/service"
)

const (
	scriptProfile    = "Budi\n30\nsarjana\nJakarta\n"
	scriptActivities = "car\n50\n7\n15\npln_coal\n7\n2,5\n200\n"
)

func runScript(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	wiz := service.NewWizard(service.NewAssessmentService(service.DefaultEmissionFactors()))
	if err := runWizard(bufio.NewReader(strings.NewReader(script)), &out, wiz); err != nil {
		t.Fatalf("runWizard: %v", err)
	}
	return out.String()
}

func TestRunWizardFullFlow(t *testing.T) {
	out := runScript(t, "\n"+scriptProfile+scriptActivities+"q\n")

	for _, want := range []string{
		"Hasil Analisis untuk Budi",
		"Total        :    32.33 kg CO2/hari [Tinggi]",
		"Kurangi penggunaan kendaraan pribadi",
		"Sampai jumpa!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunWizardResetReturnsToLanding(t *testing.T) {
	out := runScript(t, "\n"+scriptProfile+scriptActivities+"x\nu\nq\n")

	if strings.Count(out, "===== Jejak Karbon Harian =====") != 2 {
		t.Fatalf("expected landing shown twice:\n%s", out)
	}
	if !strings.Contains(out, "Pilihan tidak valid.") {
		t.Fatalf("expected invalid choice message:\n%s", out)
	}
}

func TestRunWizardRepromptsIncompleteInput(t *testing.T) {
	out := runScript(t, "\nBudi\nabc\nsarjana\nJakarta\n"+scriptProfile+"car\nabc\n7\n15\npln_coal\n0\n0\n0\n")

	if !strings.Contains(out, "Profil belum lengkap") {
		t.Fatalf("expected profile to be rejected when age is not a number:\n%s", out)
	}
	if !strings.Contains(out, "Data aktivitas belum valid") {
		t.Fatalf("expected activities to be rejected when distance coerces to 0:\n%s", out)
	}
	if !strings.Contains(out, "Sampai jumpa!") {
		t.Fatalf("expected EOF to end the wizard:\n%s", out)
	}
}

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"12": 12, " 2,5 ": 2.5, "1.75": 1.75, "abc": 0, "": 0,
		"NaN": 0, "inf": 0, "-Infinity": 0,
	}
	for in, want := range cases {
		if got := parseNumber(in); got != want {
			t.Errorf("parseNumber(%q) = %v, want %v", in, got, want)
		}
	}
}
