package service

import (
	"errors"
	"fmt"

	"carbon-edu/internal/domain"
)

// WizardStage es la etapa actual del asistente lineal.
type WizardStage string

const (
	StageLanding    WizardStage = "landing"
	StageProfile    WizardStage = "profile"
	StageActivities WizardStage = "activities"
	StageResults    WizardStage = "results"
)

var (
	ErrInvalidTransition    = errors.New("invalid wizard transition")
	ErrIncompleteProfile    = errors.New("incomplete profile")
	ErrIncompleteActivities = errors.New("incomplete activities")
)

// WizardState es el estado explicito del asistente. Las transiciones devuelven un estado nuevo.
type WizardState struct {
	Stage      WizardStage
	Profile    *domain.UserProfile
	Activities *domain.DailyActivities
	Assessment *domain.Assessment
}

// NewWizardState devuelve el estado inicial (landing, sin registros).
func NewWizardState() WizardState {
	return WizardState{Stage: StageLanding}
}

// Wizard aplica las transiciones; no guarda estado propio.
type Wizard struct {
	assessor Assessor
}

func NewWizard(assessor Assessor) Wizard {
	return Wizard{assessor: assessor}
}

// Start: landing -> profile.
func (w Wizard) Start(s WizardState) (WizardState, error) {
	if s.Stage != StageLanding {
		return s, transitionError(s.Stage, StageProfile)
	}
	return WizardState{Stage: StageProfile}, nil
}

// SubmitProfile: profile -> activities.
func (w Wizard) SubmitProfile(s WizardState, profile domain.UserProfile) (WizardState, error) {
	if s.Stage != StageProfile {
		return s, transitionError(s.Stage, StageActivities)
	}
	if !profile.Complete() {
		return s, ErrIncompleteProfile
	}
	profile.EducationLevel = domain.ParseEducationLevel(string(profile.EducationLevel))
	return WizardState{Stage: StageActivities, Profile: &profile}, nil
}

// SubmitActivities: activities -> results, calculando la huella y los insights.
func (w Wizard) SubmitActivities(s WizardState, activities domain.DailyActivities) (WizardState, error) {
	if s.Stage != StageActivities || s.Profile == nil {
		return s, transitionError(s.Stage, StageResults)
	}
	if !activities.Complete() {
		return s, ErrIncompleteActivities
	}
	profile := *s.Profile
	assessment := w.assessor.Assess(profile, activities)
	return WizardState{
		Stage:      StageResults,
		Profile:    &profile,
		Activities: &activities,
		Assessment: &assessment,
	}, nil
}

// Reset: results -> landing, descartando perfil y actividades.
func (w Wizard) Reset(s WizardState) (WizardState, error) {
	if s.Stage != StageResults {
		return s, transitionError(s.Stage, StageLanding)
	}
	return NewWizardState(), nil
}

func transitionError(from, to WizardStage) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
