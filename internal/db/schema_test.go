package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeExecer struct {
	queries []string
	err     error
}

func (f *fakeExecer) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	return pgconn.NewCommandTag("CREATE TABLE"), f.err
}

func TestEnsureSchema(t *testing.T) {
	conn := &fakeExecer{}
	if err := EnsureSchema(context.Background(), conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.queries) != 1 || !strings.Contains(conn.queries[0], "CREATE TABLE IF NOT EXISTS climate_knowledge") {
		t.Fatalf("unexpected queries: %v", conn.queries)
	}
}

func TestEnsureSchemaWrapsError(t *testing.T) {
	boom := errors.New("permission denied")
	err := EnsureSchema(context.Background(), &fakeExecer{err: boom})
	if !errors.Is(err, boom) || !strings.HasPrefix(err.Error(), "ensure schema") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
