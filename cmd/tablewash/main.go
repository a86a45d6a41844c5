package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"tablewash/internal/clean"
	"tablewash/internal/config"
	"tablewash/internal/csvio"
	"tablewash/internal/logging"
	"tablewash/internal/rules"
	"tablewash/internal/table"
)

var (
	rulesPath  string
	outputPath string
	policy     string
	signMode   string
)

var rootCmd = &cobra.Command{
	Use:   "tablewash <input.csv>",
	Short: "Deterministic tabular data cleaning",
	Long: `tablewash runs an ordered cleaning pipeline over a CSV dataset:
typed cell coercion, text trimming, categorical correction, outlier
remapping, sign normalization, placeholder filtering, and a configurable
null-handling policy. The cleaned table is written as CSV and an audit of
every change is logged.`,
	Args: cobra.ExactArgs(1),
	RunE: run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&rulesPath, "rules", "", "ruleset file (YAML/JSON); defaults to the built-in supermarket ruleset")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output CSV path (default: stdout)")
	rootCmd.Flags().StringVar(&policy, "policy", "", "null policy override: key-fields or all-columns")
	rootCmd.Flags().StringVar(&signMode, "sign-mode", "", "sign normalizer override: silent or flagged")
}

func run(cmd *cobra.Command, args []string) error {
	rs, err := loadRuleset()
	if err != nil {
		return err
	}

	if policy != "" {
		rs.NullPolicy.Mode = rules.NullPolicyMode(policy)
	}
	if signMode != "" {
		rs.Sign.Mode = rules.SignMode(signMode)
	}

	schema, err := rs.TableSchema()
	if err != nil {
		return err
	}
	if schema == nil {
		schema = rules.DefaultSchema()
	}

	tbl, err := csvio.LoadFile(args[0], schema)
	if err != nil {
		return err
	}

	cleaned, audit, err := clean.Run(tbl, rs)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := csvio.WriteFile(outputPath, cleaned); err != nil {
			return err
		}
		slog.Info("cleaned table written", "path", outputPath, "rows", len(cleaned.Rows))
	} else {
		if err := csvio.Write(os.Stdout, cleaned); err != nil {
			return err
		}
	}

	logging.WithFields("run_id", audit.RunID).Info("audit",
		"duration", audit.Duration,
		"rows_removed", audit.RowsRemoved(),
	)
	return nil
}

// loadRuleset resolves the ruleset: --rules flag, then TABLEWASH_RULES from
// the environment, then the built-in defaults.
func loadRuleset() (rules.Ruleset, error) {
	path := rulesPath
	if path == "" {
		path = cfg.Rules.Path
	}
	if path == "" {
		return rules.Default(), nil
	}
	return rules.Load(path)
}

var cfg *config.Config

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := rootCmd.Execute(); err != nil {
		var sv *table.SchemaViolation
		var ce *rules.ConfigurationError
		switch {
		case errors.As(err, &sv):
			slog.Error("input does not match schema", "error", err)
		case errors.As(err, &ce):
			slog.Error("ruleset rejected", "error", err)
		default:
			slog.Error("run failed", "error", err)
		}
		os.Exit(1)
	}
}
