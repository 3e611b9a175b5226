package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"carbon-edu/internal/db"
	"carbon-edu/internal/domain"
	"carbon-edu/internal/repository"
)

func newKnowledgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "Administra la tabla climate_knowledge",
	}
	cmd.AddCommand(newKnowledgeImportCmd(), newKnowledgeListCmd())
	return cmd
}

func withKnowledgeRepo(ctx context.Context, fn func(repository.KnowledgeRepository) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()
	if err := db.EnsureSchema(ctx, pool); err != nil {
		return err
	}
	return fn(repository.NewPgKnowledgeRepository(pool))
}

func newKnowledgeImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Importa filas desde un YAML (lista de category/topic/content)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read knowledge file: %w", err)
			}
			entries, err := parseKnowledgeFile(raw)
			if err != nil {
				return err
			}
			return withKnowledgeRepo(cmd.Context(), func(repo repository.KnowledgeRepository) error {
				now := time.Now().UTC()
				for i := range entries {
					entries[i].ID = uuid.NewString()
					entries[i].CreatedAt = now
				}
				if err := repo.Import(cmd.Context(), entries); err != nil {
					return fmt.Errorf("import knowledge: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d entries imported\n", len(entries))
				return nil
			})
		},
	}
}

func newKnowledgeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista todas las filas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withKnowledgeRepo(cmd.Context(), func(repo repository.KnowledgeRepository) error {
				entries, err := repo.ListAll(cmd.Context())
				if err != nil {
					return fmt.Errorf("list knowledge: %w", err)
				}
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", e.Category, e.Topic, e.Content)
				}
				return nil
			})
		},
	}
}

// parseKnowledgeFile valida que cada fila tenga category, topic y content.
func parseKnowledgeFile(raw []byte) ([]domain.KnowledgeEntry, error) {
	var entries []domain.KnowledgeEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Category) == "" || strings.TrimSpace(e.Topic) == "" || strings.TrimSpace(e.Content) == "" {
			return nil, fmt.Errorf("entry %d: category, topic and content are required", i+1)
		}
	}
	return entries, nil
}
