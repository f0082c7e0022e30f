package commands

import (
	"github.com/spf13/cobra"

	"github.com/justsurfingit/staffing-crm/internal/jobid"
	"github.com/justsurfingit/staffing-crm/internal/services"
)

type migrate struct {
	app
}

func Migrate() *cobra.Command {
	var m migrate

	cmd := cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and seed job categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := m.load(); err != nil {
				return err
			}
			if err := m.open(); err != nil {
				return err
			}
			return services.NewCategoryService(m.db).Seed(cmd.Context(), jobid.DefaultRules())
		},
	}

	m.Flags(&cmd)

	return &cmd
}
