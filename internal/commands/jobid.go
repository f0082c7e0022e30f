package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/staffing-crm/internal/jobid"
)

func JobID() *cobra.Command {
	cmd := cobra.Command{
		Use:   "jobid",
		Short: "Inspect job requirement identifiers",
	}

	cmd.AddCommand(classify())
	cmd.AddCommand(next())

	return &cmd
}

type classifyCmd struct {
	app
}

// classify uses the built-in rules so it works without a database.
func classify() *cobra.Command {
	var c classifyCmd

	cmd := cobra.Command{
		Use:   "classify [flags] title...",
		Short: "Print the category code a job title maps to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.load(); err != nil {
				return err
			}
			classifier := jobid.NewClassifier(jobid.DefaultRules(), jobid.Code(c.cfg.JobID.FallbackCode))
			title := strings.Join(args, " ")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), classifier.Classify(title))
			return err
		},
	}

	c.Flags(&cmd)

	return &cmd
}

type nextCmd struct {
	app
}

func next() *cobra.Command {
	var n nextCmd

	cmd := cobra.Command{
		Use:   "next [flags] title...",
		Short: "Print the identifier the next job requirement with this title would get",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := n.load(); err != nil {
				return err
			}
			if err := n.open(); err != nil {
				return err
			}
			_, jobs, err := wire(cmd.Context(), n.cfg, n.db)
			if err != nil {
				return err
			}
			id, err := jobs.PreviewID(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}

	n.Flags(&cmd)

	return &cmd
}
