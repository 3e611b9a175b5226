package domain

import "strings"

// EducationLevel identifica el nivel educativo declarado por el usuario.
type EducationLevel string

const (
	EducationSD       EducationLevel = "sd"
	EducationSMP      EducationLevel = "smp"
	EducationSMA      EducationLevel = "sma"
	EducationDiploma  EducationLevel = "diploma"
	EducationSarjana  EducationLevel = "sarjana"
	EducationMagister EducationLevel = "magister"
	EducationDoktor   EducationLevel = "doktor"
)

// Alias en ingles aceptados por la API y el CLI.
var educationAliases = map[string]EducationLevel{
	"none":      EducationSD,
	"primary":   EducationSD,
	"secondary": EducationSMA,
	"bachelor":  EducationSarjana,
	"master":    EducationMagister,
	"doctorate": EducationDoktor,
}

var educationRank = map[EducationLevel]int{
	EducationSD:       1,
	EducationSMP:      2,
	EducationSMA:      3,
	EducationDiploma:  4,
	EducationSarjana:  5,
	EducationMagister: 6,
	EducationDoktor:   7,
}

// ParseEducationLevel normaliza el valor recibido. Valores desconocidos se conservan tal cual.
func ParseEducationLevel(raw string) EducationLevel {
	v := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := educationAliases[v]; ok {
		return alias
	}
	return EducationLevel(v)
}

// AtLeastBachelor indica si el nivel es sarjana (S1) o superior.
func (e EducationLevel) AtLeastBachelor() bool {
	return educationRank[ParseEducationLevel(string(e))] >= educationRank[EducationSarjana]
}

// UserProfile es el perfil capturado en el segundo paso del asistente.
type UserProfile struct {
	Name           string         `json:"name"`
	Age            int            `json:"age"`
	EducationLevel EducationLevel `json:"education_level"`
	Location       string         `json:"location"`
}

// Complete indica si todos los campos del perfil estan presentes.
func (p UserProfile) Complete() bool {
	return strings.TrimSpace(p.Name) != "" &&
		p.Age > 0 &&
		strings.TrimSpace(string(p.EducationLevel)) != "" &&
		strings.TrimSpace(p.Location) != ""
}
