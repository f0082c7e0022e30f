package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/staffing-crm/internal/commands"
)

func main() {
	root := cobra.Command{
		Use:          "api",
		Short:        "Staffing CRM API: job requirements, vendors, resources and process flows",
		SilenceUsage: true,
	}

	root.AddCommand(commands.Serve())
	root.AddCommand(commands.Migrate())
	root.AddCommand(commands.JobID())

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
