package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/abuseipdb/internal/abuseipdb"
	"github.com/nao1215/abuseipdb/internal/config"
	"github.com/nao1215/abuseipdb/internal/log"
	"github.com/nao1215/abuseipdb/internal/model"
	"github.com/nao1215/abuseipdb/internal/report"
	"github.com/nao1215/abuseipdb/internal/transport"
	"github.com/spf13/cobra"
)

// runReportCmd submits the report named by the positional arguments.
// Once the three arguments are present every result, including a report
// that could not be sent, is printed to stdout and the exit code is 0.
func runReportCmd(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return errUsage
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	if len(args) > 3 {
		logger.Debug("ignoring extra arguments", "count", len(args)-3)
	}

	rep := model.NewReport(args[0], args[1], args[2])

	format, err := outputFormat(cmd)
	if err != nil {
		return notSent(cmd, logger, rep, report.FormatText, err)
	}

	cfg, err := buildConfig(cmd, logger)
	if err != nil {
		return notSent(cmd, logger, rep, format, fmt.Errorf("configuration error: %w", err))
	}

	if cfg.Strict {
		if err := rep.Validate(); err != nil {
			return notSent(cmd, logger, rep, format, fmt.Errorf("invalid report: %w", err))
		}
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return notSent(cmd, logger, rep, format, fmt.Errorf("configuration error: %w", err))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return writeOutcome(cmd, format, client.Submit(ctx, rep))
}

// notSent prints err as the outcome of a report that never left the host.
func notSent(cmd *cobra.Command, logger *slog.Logger, rep model.Report, format report.Format, err error) error {
	logger.Warn("report not sent", "ip", rep.IP, "error", err)
	return writeOutcome(cmd, format, model.NewTransportFailureOutcome(rep, err))
}

// writeOutcome prints outcome in format. Only a failed write is an error.
func writeOutcome(cmd *cobra.Command, format report.Format, outcome *model.Outcome) error {
	if _, err := report.NewWriter(format, cmd.OutOrStdout()).WriteOutcome(outcome); err != nil {
		return fmt.Errorf("failed to write outcome: %w", err)
	}
	return nil
}

// buildConfig layers defaults, the configuration file, the environment and
// flags, then validates the result.
func buildConfig(cmd *cobra.Command, logger *slog.Logger) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit path must exist; otherwise a missing file is fine as long
	// as the key comes from the environment.
	var file *config.File
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if file.APIKey != "" {
			if err := config.CheckPermissions(configPath); err != nil {
				logger.Warn("config file holds an API key but is accessible to other users", "error", err)
			}
		}
		logger.Debug("loaded config file", "path", configPath)
		if err := cfg.ApplyFile(file); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.Credential, err = config.ResolveCredential(file)
	if err != nil {
		return nil, err
	}

	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}

	strict, err := flags.GetBool("strict")
	if err != nil {
		return nil, err
	}
	cfg.Strict = cfg.Strict || strict
	cfg.Verbose = getVerboseFlag(cmd)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient wires the transport and the AbuseIPDB client from cfg.
func newClient(cfg *config.Config, logger *slog.Logger) (*abuseipdb.Client, error) {
	httpClient, err := transport.NewHTTPClient(cfg.Timeout, cfg.ProxyAddress)
	if err != nil {
		return nil, err
	}

	client, err := abuseipdb.NewClient(cfg.Credential,
		abuseipdb.WithEndpoint(cfg.Endpoint),
		abuseipdb.WithHTTPClient(httpClient),
		abuseipdb.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	logger.Debug("client configured",
		"endpoint", client.Endpoint(),
		"timeout", cfg.Timeout,
		"proxy", cfg.ProxyAddress,
		"api_key", cfg.Credential,
	)
	return client, nil
}

// outputFormat resolves --json, --markdown and --output into a report format.
func outputFormat(cmd *cobra.Command) (report.Format, error) {
	flags := cmd.Flags()

	jsonOutput, err := flags.GetBool("json")
	if err != nil {
		return "", err
	}
	markdownOutput, err := flags.GetBool("markdown")
	if err != nil {
		return "", err
	}

	switch {
	case jsonOutput:
		return report.FormatJSON, nil
	case markdownOutput:
		return report.FormatMarkdown, nil
	}

	name, err := flags.GetString("output")
	if err != nil {
		return "", err
	}
	return report.ParseFormat(name)
}
