package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jhoicas/crm-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/crm-api/internal/infrastructure/storage"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func importCustomersCmd(flags *globalFlags) *cobra.Command {
	var (
		latin1    bool
		delimiter string
	)
	cmd := &cobra.Command{
		Use:   "import-customers <archivo.csv>",
		Short: "Importa clientes desde un CSV con columnas name,email,phone,company",
		Long: `Cada fila pasa por las mismas validaciones que POST /api/customers.
Las filas inválidas se reportan con su número de línea y se omiten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := importOptions(latin1, delimiter)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return flags.withStore(cmd.Context(), false, func(s *storage.Store, log *logger.Logger) error {
				res, err := importCustomers(cmd.Context(), f, newServices(s), opts, cmd.OutOrStdout())
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s importación interrumpida: %v\n", failMark, err)
					return err
				}
				log.Info().
					Str("file", args[0]).
					Int("imported", len(res.Imported)).
					Int("rejected", len(res.Rejected)).
					Msg("importación de clientes")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&latin1, "latin1", false, "el archivo está en ISO-8859-1")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "separador de campos (un carácter)")
	return cmd
}

func importOptions(latin1 bool, delimiter string) (csvimport.Options, error) {
	opts := csvimport.Options{Latin1: latin1}
	if delimiter == "" {
		return opts, nil
	}
	r, size := utf8.DecodeRuneInString(delimiter)
	if r == utf8.RuneError || size != len(delimiter) {
		return opts, errors.New("--delimiter debe ser un único carácter")
	}
	opts.Delimiter = r
	return opts, nil
}

// importCustomers ejecuta la importación y escribe el resumen en out.
func importCustomers(ctx context.Context, r io.Reader, svc *services, opts csvimport.Options, out io.Writer) (*csvimport.Result, error) {
	res, err := csvimport.ImportCustomers(ctx, r, svc.customers, opts)
	if err != nil {
		return nil, err
	}
	for _, rej := range res.Rejected {
		fmt.Fprintf(out, "  %s %s\n", warnMark, rej.Error())
	}
	summary := color.New(color.FgGreen).Sprintf("%d importados", len(res.Imported))
	if len(res.Rejected) > 0 {
		summary += ", " + color.New(color.FgYellow).Sprintf("%d rechazados", len(res.Rejected))
	}
	fmt.Fprintf(out, "%s %s\n", okMark, summary)
	return res, nil
}
