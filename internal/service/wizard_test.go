package service

import (
	"errors"
	"testing"

	"carbon-edu/internal/domain"
)

func validProfile() domain.UserProfile {
	return domain.UserProfile{Name: "Budi", Age: 21, EducationLevel: "bachelor", Location: "Jakarta"}
}

func validActivities() domain.DailyActivities {
	return domain.DailyActivities{
		Transportation: domain.Transportation{Method: "car", DistanceKm: 50, WeeklyFrequency: 7},
		Electricity:    domain.Electricity{DailyUsageKwh: 15, Source: "pln_coal"},
		Consumption:    domain.Consumption{WeeklyMeatPortions: 7, DailyWasteKg: 2.5, DailyWaterLiters: 200},
	}
}

func newTestWizard() Wizard {
	return NewWizard(NewAssessmentService(DefaultEmissionFactors()))
}

func TestWizardHappyPath(t *testing.T) {
	w := newTestWizard()
	s := NewWizardState()

	s, err := w.Start(s)
	if err != nil || s.Stage != StageProfile {
		t.Fatalf("start: stage=%s err=%v", s.Stage, err)
	}
	s, err = w.SubmitProfile(s, validProfile())
	if err != nil || s.Stage != StageActivities {
		t.Fatalf("profile: stage=%s err=%v", s.Stage, err)
	}
	if s.Profile.EducationLevel != domain.EducationSarjana {
		t.Fatalf("expected education normalized to sarjana, got %q", s.Profile.EducationLevel)
	}
	s, err = w.SubmitActivities(s, validActivities())
	if err != nil || s.Stage != StageResults {
		t.Fatalf("activities: stage=%s err=%v", s.Stage, err)
	}
	if s.Assessment == nil || s.Assessment.Footprint.Category != domain.CategoryHigh {
		t.Fatalf("expected high assessment, got %+v", s.Assessment)
	}
	if s.Assessment.ID == "" {
		t.Fatalf("expected assessment id")
	}

	s, err = w.Reset(s)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.Stage != StageLanding || s.Profile != nil || s.Activities != nil || s.Assessment != nil {
		t.Fatalf("expected clean landing state after reset, got %+v", s)
	}
}

func TestWizardTransitionsDoNotMutateInput(t *testing.T) {
	w := newTestWizard()
	start := NewWizardState()
	if _, err := w.Start(start); err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.Stage != StageLanding {
		t.Fatalf("expected original state untouched, got %s", start.Stage)
	}
}

func TestWizardRejectsInvalidTransitions(t *testing.T) {
	w := newTestWizard()
	landing := NewWizardState()

	if _, err := w.SubmitProfile(landing, validProfile()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition from landing to activities, got %v", err)
	}
	if _, err := w.SubmitActivities(landing, validActivities()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition from landing to results, got %v", err)
	}
	if _, err := w.Reset(landing); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected reset only from results, got %v", err)
	}

	profile, _ := w.Start(landing)
	if _, err := w.Start(profile); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected start only from landing, got %v", err)
	}

	// Sin perfil no se puede llegar a resultados aunque la etapa diga activities.
	forged := WizardState{Stage: StageActivities}
	if _, err := w.SubmitActivities(forged, validActivities()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected missing profile to block results, got %v", err)
	}
}

func TestWizardProfileValidation(t *testing.T) {
	w := newTestWizard()
	s, _ := w.Start(NewWizardState())

	cases := map[string]func(p *domain.UserProfile){
		"blank name":      func(p *domain.UserProfile) { p.Name = "  " },
		"zero age":        func(p *domain.UserProfile) { p.Age = 0 },
		"blank education": func(p *domain.UserProfile) { p.EducationLevel = "" },
		"blank location":  func(p *domain.UserProfile) { p.Location = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := validProfile()
			mutate(&p)
			next, err := w.SubmitProfile(s, p)
			if !errors.Is(err, ErrIncompleteProfile) {
				t.Fatalf("expected ErrIncompleteProfile, got %v", err)
			}
			if next.Stage != StageProfile {
				t.Fatalf("expected to stay on profile, got %s", next.Stage)
			}
		})
	}
}

func TestWizardActivitiesValidation(t *testing.T) {
	w := newTestWizard()
	s, _ := w.Start(NewWizardState())
	s, _ = w.SubmitProfile(s, validProfile())

	cases := map[string]func(a *domain.DailyActivities){
		"blank method":  func(a *domain.DailyActivities) { a.Transportation.Method = "" },
		"zero distance": func(a *domain.DailyActivities) { a.Transportation.DistanceKm = 0 },
		"zero usage":    func(a *domain.DailyActivities) { a.Electricity.DailyUsageKwh = 0 },
		"blank source":  func(a *domain.DailyActivities) { a.Electricity.Source = " " },
		"negative meat": func(a *domain.DailyActivities) { a.Consumption.WeeklyMeatPortions = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			a := validActivities()
			mutate(&a)
			if _, err := w.SubmitActivities(s, a); !errors.Is(err, ErrIncompleteActivities) {
				t.Fatalf("expected ErrIncompleteActivities, got %v", err)
			}
		})
	}

	t.Run("zero meat is valid", func(t *testing.T) {
		a := validActivities()
		a.Consumption.WeeklyMeatPortions = 0
		if _, err := w.SubmitActivities(s, a); err != nil {
			t.Fatalf("expected zero meat portions to pass, got %v", err)
		}
	})
}

func TestWizardResetDropsStaleProfile(t *testing.T) {
	w := newTestWizard()
	s, _ := w.Start(NewWizardState())
	s, _ = w.SubmitProfile(s, validProfile())
	s, _ = w.SubmitActivities(s, validActivities())
	s, _ = w.Reset(s)

	s, _ = w.Start(s)
	// Tras el reset, activities exige un perfil nuevo.
	if _, err := w.SubmitActivities(s, validActivities()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected activities to be unreachable without a new profile, got %v", err)
	}

	other := domain.UserProfile{Name: "Ani", Age: 40, EducationLevel: domain.EducationSMA, Location: "Medan"}
	s, _ = w.SubmitProfile(s, other)
	s, err := w.SubmitActivities(s, validActivities())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Profile.Name != "Ani" {
		t.Fatalf("expected fresh profile in results, got %q", s.Profile.Name)
	}
}
