package main

import (
	"fmt"

	"github.com/SabihaEylul/nextjswebb/internal/lib/email"
	"github.com/spf13/cobra"
)

func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Work with notification email templates",
	}
	cmd.AddCommand(newEmailPreviewCmd())
	return cmd
}

func newEmailPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [template]",
		Short: "Render a template with sample data to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := email.TemplateContactNotification
			if len(args) == 1 {
				name = email.Template(args[0])
			}

			html, err := email.Preview(name)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}
}
