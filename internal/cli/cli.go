package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/pmorel/cfp-radar/internal/logger"
	"github.com/pmorel/cfp-radar/internal/runner"
	"github.com/pmorel/cfp-radar/internal/scorer"
	"github.com/pmorel/cfp-radar/internal/scraper"
	"github.com/pmorel/cfp-radar/internal/sink"
)

const (
	ExitSuccess = 0
	ExitError   = 1

	// APIKeyEnv is the environment variable supplying the OpenAI API key
	APIKeyEnv = "OPENAI_API_KEY"

	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var (
	flagOutput     string
	flagFormat     string
	flagModel      string
	flagVerbose    bool
	flagNoProgress bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cfp-radar <abstract-file> <keyword>",
		Short: "Find WikiCFP conferences relevant to a research abstract",
		Long: `Searches WikiCFP for a keyword, extracts each conference's call for
papers, scores its relevance against your abstract with a language model, and
incrementally saves conferences scoring above 5 to a tabular file.`,
		Args: cobra.ExactArgs(2),
		RunE: runSearch,
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "conferences.csv", "Output file path")
	cmd.Flags().StringVar(&flagFormat, "format", FormatCSV, "Output format: csv or xlsx")
	cmd.Flags().StringVar(&flagModel, "model", scorer.DefaultModel, "Chat model used for scoring")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "Disable progress bars")

	return cmd
}

// runSearch is the main command logic
func runSearch(cmd *cobra.Command, args []string) error {
	abstractPath, keyword := args[0], args[1]

	format := strings.ToLower(flagFormat)
	if format != FormatCSV && format != FormatXLSX {
		return fmt.Errorf("invalid format: %s (must be 'csv' or 'xlsx')", flagFormat)
	}

	level := zapcore.InfoLevel
	if flagVerbose {
		level = zapcore.DebugLevel
	}
	log := logger.New(level)
	defer log.Sync()

	data, err := os.ReadFile(abstractPath)
	if err != nil {
		return fmt.Errorf("reading abstract file: %w", err)
	}
	abstract := strings.TrimSpace(string(data))
	if abstract == "" {
		return fmt.Errorf("abstract file %s is empty", abstractPath)
	}

	apiKey := os.Getenv(APIKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("%s is not set", APIKeyEnv)
	}

	output := flagOutput
	if format == FormatXLSX && !cmd.Flags().Changed("output") {
		output = "conferences.xlsx"
	}
	var snk sink.Sink
	if format == FormatXLSX {
		snk = sink.NewXLSX(output)
	} else {
		snk = sink.NewCSV(output)
	}

	var pw progress.Writer
	if !flagNoProgress {
		pw = progress.NewWriter()
		pw.SetOutputWriter(os.Stderr)
		pw.SetTrackerLength(25)
	}

	r := &runner.Runner{
		Scraper:  scraper.New(log),
		Scorer:   scorer.NewOpenAIScorer(apiKey, flagModel),
		Sink:     snk,
		Log:      log,
		Progress: pw,
	}

	return r.Run(cmd.Context(), abstract, keyword)
}

// Execute runs the CLI
func Execute() {
	// A local .env may carry the API key; missing files are fine
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
