// Package main provides the CLI entry point for docreader.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/docreader-go/internal/config"
	"github.com/ukaji3/docreader-go/internal/server"
	"github.com/ukaji3/docreader-go/pkg/docreader"
	"github.com/ukaji3/docreader-go/pkg/docreader/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	logLevel   string
	outputPath string
	format     string
	pretty     bool
	byPage     bool
	bySheet    bool
	password   string
	addr       string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docreader",
		Short: "Extract text from PDF files and data from Excel files",
		Long: `docreader extracts page text from PDF documents and sheet data
from xlsx workbooks and outputs JSON, YAML or plain text.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "Output format: json, yaml, text")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	pdfCmd := &cobra.Command{
		Use:   "pdf [input.pdf]",
		Short: "Extract text from a PDF file",
		Args:  cobra.ExactArgs(1),
		RunE:  runPDF,
	}
	pdfCmd.Flags().BoolVar(&byPage, "pages", false, "Output text per page with character counts")

	xlsxCmd := &cobra.Command{
		Use:   "xlsx [input.xlsx]",
		Short: "Extract sheet data from an Excel file",
		Args:  cobra.ExactArgs(1),
		RunE:  runXLSX,
	}
	xlsxCmd.Flags().BoolVar(&bySheet, "sheets", false, "Output sheets with row and column counts")
	xlsxCmd.Flags().StringVar(&password, "password", "", "Password for encrypted workbooks")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP extraction service",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8000)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), server.AppName, server.Version)
		},
	}

	rootCmd.AddCommand(pdfCmd, xlsxCmd, serveCmd, versionCmd)
	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if password != "" {
		cfg.Password = password
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func newExtractor(cfg *config.Config, logger *zap.Logger) *docreader.Extractor {
	return docreader.New(docreader.Options{
		Logger:   logger,
		Password: cfg.Password,
	})
}

func runPDF(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ex := newExtractor(cfg, logger)
	if byPage {
		pages, err := ex.ExtractTextByPage(args[0])
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		return write(cmd.OutOrStdout(), pages, func() string { return output.PagesToText(pages) })
	}

	text, err := ex.ReadPDF(args[0])
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	return write(cmd.OutOrStdout(), map[string]string{"text": text}, func() string { return text + "\n" })
}

func runXLSX(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ex := newExtractor(cfg, logger)
	if bySheet {
		sheets, err := ex.ExtractSheets(args[0])
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		return write(cmd.OutOrStdout(), sheets, func() string { return output.SheetsToText(sheets) })
	}

	data, err := ex.ReadXLSX(args[0])
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	return write(cmd.OutOrStdout(), data, func() string { return output.SheetMapToText(data) })
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, newExtractor(cfg, logger), logger).ListenAndServe(ctx)
}

// write serializes v in the selected format and writes it to the output
// file or stdout. text renders the plain-text form.
func write(stdout io.Writer, v interface{}, text func() string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = output.ToJSON(v, pretty)
		data = append(data, '\n')
	case "yaml":
		data, err = output.ToYAML(v)
	case "text":
		data = []byte(text())
	default:
		return fmt.Errorf("invalid format: %s (must be json, yaml, or text)", format)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = stdout.Write(data)
	return err
}
