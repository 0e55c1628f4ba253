package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/crm-api/internal/infrastructure/storage"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func migrateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el esquema (idempotente)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withStore(cmd.Context(), false, func(s *storage.Store, log *logger.Logger) error {
				if err := s.Migrate(cmd.Context()); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s migración fallida\n", failMark)
					return err
				}
				log.Info().Str("driver", s.Driver).Msg("esquema aplicado")
				fmt.Fprintf(cmd.OutOrStdout(), "%s esquema aplicado (%s)\n", okMark, s.Driver)
				return nil
			})
		},
	}
}
