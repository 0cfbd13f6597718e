package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nao1215/abuseipdb/internal/config"
	"github.com/nao1215/abuseipdb/internal/report"
	"github.com/spf13/cobra"
)

// usageLine is printed to stdout when positional arguments are missing.
const usageLine = "Usage: abuseipdb <ip> <categories> <comment>"

// errUsage signals that usage was already printed and the exit code is 1.
var errUsage = errors.New("missing arguments")

// NewRootCmd creates the root command, which submits one report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abuseipdb <ip> <categories> <comment>",
		Short: "Report an abusive IP address to AbuseIPDB",
		Long: `abuseipdb submits a single abuse report to the AbuseIPDB v2 API.

It is designed to be invoked by an intrusion-prevention action such as a
fail2ban action.d file. The three arguments are sent unchanged:

  ip          the offending IPv4 or IPv6 address
  categories  comma-separated AbuseIPDB category IDs (see "abuseipdb categories")
  comment     free text describing the abuse

The API key is read from the ABUSEIPDB_API_KEY environment variable, or from
the api_key / api_key_file keys of the configuration file (.abuseipdb in the
current or home directory, or $XDG_CONFIG_HOME/abuseipdb/config.yaml).

Once the three arguments are given, every result is printed to stdout and the
exit code is 0: a rejected report, a network error, and a report that could
not be sent because of a configuration problem alike. The calling ban action
is never failed by the report. Flags must come before the arguments;
everything after the IP address is taken verbatim.`,
		Example: `  # Report a brute-force SSH attacker
  abuseipdb 203.0.113.7 18,22 "sshd: 6 failed logins"

  # Validate the arguments before sending
  abuseipdb --strict 203.0.113.7 18,22 "sshd: 6 failed logins"

  # Send through a local SOCKS5 proxy and print JSON
  abuseipdb -x 127.0.0.1:9050 -o json 203.0.113.7 14 "port scan"`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .abuseipdb in current or home directory)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Request timeout")
	cmd.Flags().StringP("proxy", "x", "",
		"Send the report through a SOCKS5 proxy (e.g., 127.0.0.1:9050)")
	cmd.Flags().Bool("strict", false,
		"Validate the IP address and category IDs before sending")
	cmd.Flags().StringP("output", "o", string(report.FormatText),
		"Output format: text, json or markdown")
	cmd.Flags().BoolP("json", "j", false,
		"Print the outcome as JSON (same as --output json)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print the outcome as Markdown (same as --output markdown)")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown", "output")

	// Flags end at the first positional argument, so a comment such as
	// "-x 5 failures" is sent as is.
	cmd.Flags().SetInterspersed(false)

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewCategoriesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
