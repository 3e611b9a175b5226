package domain

import "time"

// KnowledgeEntry es una fila de la tabla climate_knowledge usada como contexto del LLM.
type KnowledgeEntry struct {
	ID        string    `json:"id" yaml:"id,omitempty"`
	Category  string    `json:"category" yaml:"category"`
	Topic     string    `json:"topic" yaml:"topic"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}
