package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/abuseipdb/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/abuseipdb.yaml templates/fail2ban-action.conf
var templates embed.FS

const (
	// configFileName is the default configuration file name.
	configFileName = config.DefaultConfigFile

	// fail2banFileName is the default name of the fail2ban action file.
	fail2banFileName = "abuseipdb.conf"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file or a fail2ban action",
		Long: `Init writes a commented .abuseipdb configuration file to the current directory.

With --fail2ban it writes a fail2ban action.d file that calls abuseipdb
for every ban instead.

Examples:
  # Create .abuseipdb in current directory
  abuseipdb init

  # Create the file in the XDG config directory
  abuseipdb init -o ~/.config/abuseipdb/config.yaml

  # Write the fail2ban action
  abuseipdb init --fail2ban -o /etc/fail2ban/action.d/abuseipdb.conf

  # Force overwrite existing file
  abuseipdb init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path (default "+fail2banFileName+" with --fail2ban)")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing file")
	cmd.Flags().Bool("fail2ban", false,
		"Write a fail2ban action.d file instead of a configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	fail2ban, err := cmd.Flags().GetBool("fail2ban")
	if err != nil {
		return err
	}

	templateName := "templates/abuseipdb.yaml"
	if fail2ban {
		templateName = "templates/fail2ban-action.conf"
		if !cmd.Flags().Changed("output") {
			outputPath = fail2banFileName
		}
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := templates.ReadFile(templateName)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// The configuration file may hold the API key.
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	out := cmd.OutOrStdout()
	if fail2ban {
		fmt.Fprintf(out, "Created fail2ban action: %s\n", outputPath)
		fmt.Fprintln(out, "\nCopy it to /etc/fail2ban/action.d/ and add \"abuseipdb\" to a jail's action list.")
		return nil
	}
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nSet api_key in this file, or export "+config.APIKeyEnv+".")
	return nil
}
