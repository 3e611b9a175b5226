package service

import (
	"fmt"
	"strings"

	"carbon-edu/internal/domain"
)

const (
	defaultPromptEducation = "umum"
	defaultPromptAge       = 25
)

// Breakdown es el desglose por componente enviado por el cliente.
type Breakdown struct {
	Transport   float64 `json:"transport"`
	Electricity float64 `json:"electricity"`
	Consumption float64 `json:"consumption"`
}

// AIInsightRequest es el payload del servicio de insights con LLM.
type AIInsightRequest struct {
	CarbonFootprint float64             `json:"carbon_footprint"`
	Breakdown       Breakdown           `json:"breakdown"`
	UserProfile     *domain.UserProfile `json:"user_profile,omitempty"`
}

// ClimatePromptBuilder arma los prompts de sistema y usuario para el LLM.
type ClimatePromptBuilder struct{}

// KnowledgeContext concatena todas las filas de conocimiento como contexto.
func (ClimatePromptBuilder) KnowledgeContext(entries []domain.KnowledgeEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("[%s] %s: %s", e.Category, e.Topic, e.Content))
	}
	return strings.Join(parts, "\n\n")
}

func promptProfile(p *domain.UserProfile) (string, int) {
	education := defaultPromptEducation
	age := defaultPromptAge
	if p == nil {
		return education, age
	}
	if v := strings.TrimSpace(string(p.EducationLevel)); v != "" {
		education = string(domain.ParseEducationLevel(v))
	}
	if p.Age > 0 {
		age = p.Age
	}
	return education, age
}

// LanguageStyle adapta el registro del texto al nivel educativo y la edad.
func (ClimatePromptBuilder) LanguageStyle(p *domain.UserProfile) string {
	education, age := promptProfile(p)
	switch {
	case education == string(domain.EducationSD) || age < 12:
		return "Gunakan bahasa yang sangat sederhana dan mudah dipahami anak-anak. Gunakan analogi sehari-hari yang mudah dimengerti."
	case education == string(domain.EducationSMP) || age < 15:
		return "Gunakan bahasa yang sederhana namun informatif. Berikan contoh konkret dari kehidupan sehari-hari."
	case education == string(domain.EducationSMA) || age < 18:
		return "Gunakan bahasa yang jelas dengan beberapa istilah ilmiah. Jelaskan konsep dengan cukup detail."
	default:
		return "Gunakan bahasa yang informatif dan edukatif. Boleh gunakan istilah ilmiah dengan penjelasan yang tepat."
	}
}

func (b ClimatePromptBuilder) SystemPrompt(knowledge []domain.KnowledgeEntry, p *domain.UserProfile) string {
	education, age := promptProfile(p)

	var sb strings.Builder
	sb.WriteString("Anda adalah asisten edukasi perubahan iklim yang personal dan inklusif.\n\n")
	sb.WriteString("KONTEKS PENGETAHUAN IKLIM:\n")
	sb.WriteString(b.KnowledgeContext(knowledge))
	sb.WriteString("\n\nPROFIL PENGGUNA:\n")
	fmt.Fprintf(&sb, "- Usia: %d tahun\n", age)
	fmt.Fprintf(&sb, "- Tingkat Pendidikan: %s\n\n", education)
	sb.WriteString("GAYA BAHASA:\n")
	sb.WriteString(b.LanguageStyle(p))
	sb.WriteString(`

Tugas Anda:
1. Jelaskan dampak jejak karbon pengguna terhadap proses iklim menggunakan pengetahuan di atas
2. Hubungkan emisi mereka dengan dampak konkret (pengasaman laut, efek rumah kaca, perubahan cuaca)
3. Berikan rekomendasi pengurangan emisi yang spesifik dan praktis
4. Sesuaikan penjelasan dengan latar belakang pengguna

Format jawaban dalam 3 bagian:
1. DAMPAK IKLIM (2-3 paragraf)
2. REKOMENDASI (3-5 poin konkret)
3. MOTIVASI (1 paragraf inspiratif)`)
	return sb.String()
}

// UserPrompt usa unidades diarias, igual que la calculadora.
func (ClimatePromptBuilder) UserPrompt(req AIInsightRequest) string {
	annual := req.CarbonFootprint * 365 / 1000
	return fmt.Sprintf(`Jejak karbon saya adalah %.2f kg CO2/hari (%.2f ton CO2/tahun).

Detail emisi saya:
- Transportasi: %.2f kg CO2/hari
- Listrik: %.2f kg CO2/hari
- Konsumsi: %.2f kg CO2/hari

Tolong jelaskan dampak emisi saya terhadap perubahan iklim dan berikan rekomendasi personal untuk menguranginya.`,
		req.CarbonFootprint, annual,
		req.Breakdown.Transport, req.Breakdown.Electricity, req.Breakdown.Consumption)
}
