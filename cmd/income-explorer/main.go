package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/iwvelando/income-explorer/internal/config"
	"github.com/iwvelando/income-explorer/internal/dataset"
	"github.com/iwvelando/income-explorer/internal/explore"
	"github.com/iwvelando/income-explorer/internal/rates"
	"github.com/iwvelando/income-explorer/internal/server"
	"github.com/iwvelando/income-explorer/pkg/constants"
	"github.com/iwvelando/income-explorer/pkg/output"
	"github.com/iwvelando/income-explorer/pkg/report"
	"github.com/iwvelando/income-explorer/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is stamped at build time.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}
		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	countryFlag := flag.String("country", "", "country code override (e.g. IN, FR)")
	variableFlag := flag.String("variable", "", "variable identifier override")
	yearFlag := flag.Int("year", 0, "year override (0 picks the default year)")
	groupFlag := flag.String("group", "", "percentile group override")
	startFlag := flag.Float64("start", 0, "detail range start percentile")
	endFlag := flag.Float64("end", constants.PercentileMax, "detail range end percentile")
	yaxisFlag := flag.String("yaxis", constants.AxisLinear, "detail chart y-axis type: linear, log")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	reportFlag := flag.String("report", "", "write the summary table to this PDF file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "serve the web UI instead of printing one selection")
	printConfig := flag.Bool("print-config", false, "print the effective configuration as YAML and exit")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *printConfig {
		data, err := conf.YAML()
		if err != nil {
			logger.Fatal("failed to serialize configuration",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Print(string(data))
		return
	}

	store := dataset.NewStore(conf.Data.Dir, logger)
	provider := rates.NewClient(conf.Rates.URL, time.Duration(conf.Rates.TimeoutSeconds)*time.Second, logger)
	explorer := explore.New(store, provider, logger)

	if *serve {
		handler := server.NewHandler(logger, store, explorer, version)
		logger.Info("serving web UI",
			zap.String("op", "main"),
			zap.String("address", conf.Server.Address),
		)
		if err := http.ListenAndServe(conf.Server.Address, handler); err != nil {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	sel := explore.Selection{
		Country:  conf.Explorer.Country,
		Variable: conf.Explorer.Variable,
		Group:    conf.Explorer.Group,
		Year:     *yearFlag,
		Start:    *startFlag,
		End:      *endFlag,
		YAxis:    *yaxisFlag,
	}
	if *countryFlag != "" {
		sel.Country = *countryFlag
	}
	if *variableFlag != "" {
		sel.Variable = *variableFlag
	}
	if *groupFlag != "" {
		sel.Group = *groupFlag
	}

	view, err := explorer.Explore(context.Background(), sel)
	if err != nil {
		logger.Fatal("failed to compute view",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(view)
	case constants.OutputFormatCSV:
		output.CsvFormat(view)
	}

	if *reportFlag != "" {
		if err := report.WriteSummary(*reportFlag, view); err != nil {
			logger.Fatal("failed to write PDF report",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info("wrote PDF report",
			zap.String("op", "main"),
			zap.String("path", *reportFlag),
		)
	}
}
