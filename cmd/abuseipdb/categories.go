package main

import (
	"github.com/nao1215/abuseipdb/internal/model"
	"github.com/nao1215/abuseipdb/internal/report"
	"github.com/spf13/cobra"
)

// NewCategoriesCmd creates the categories command.
func NewCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories [filter...]",
		Short: "List AbuseIPDB report categories",
		Long: `Categories lists the category IDs accepted in the <categories> argument.

A filter matches a category ID exactly or any part of its name, ignoring case.

Examples:
  # All categories
  abuseipdb categories

  # Categories related to brute force and SSH, with descriptions
  abuseipdb categories -l brute ssh

  # Markdown table for documentation
  abuseipdb categories --markdown`,
		Args: cobra.ArbitraryArgs,
		RunE: runCategoriesCmd,
	}

	cmd.Flags().BoolP("long", "l", false,
		"Include category descriptions")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output a Markdown table (mutually exclusive with --json)")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	return cmd
}

// runCategoriesCmd executes the categories command.
func runCategoriesCmd(cmd *cobra.Command, args []string) error {
	long, err := cmd.Flags().GetBool("long")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	var w report.Writer
	switch {
	case jsonOutput:
		w = report.NewJSONWriter(cmd.OutOrStdout(), report.WithPrettyPrint())
	case markdownOutput:
		w = report.NewMarkdownWriter(cmd.OutOrStdout())
	default:
		w = report.NewSimpleWriter(cmd.OutOrStdout(), report.WithVerbose(long))
	}

	_, err = w.WriteCategories(model.FilterCategories(args...))
	return err
}
