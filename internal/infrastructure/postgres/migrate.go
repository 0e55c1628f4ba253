package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate aplica los scripts de schema/ en orden lexicográfico.
// Los scripts son idempotentes, no se lleva tabla de versiones.
func Migrate(ctx context.Context, q Querier) error {
	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return fmt.Errorf("listar esquema: %w", err)
	}
	sort.Strings(files)
	for _, name := range files {
		script, err := schemaFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("leer %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("aplicar %s: %w", name, err)
		}
	}
	return nil
}
