package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KingSharif1/resume-sub000/internal/config"
	"github.com/KingSharif1/resume-sub000/internal/observability"
	"github.com/KingSharif1/resume-sub000/internal/types"
)

var (
	parseConfigPath string
	parseVerbose    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a local resume file",
	Long:  "Parse a local PDF or DOCX resume and print the result as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to JSON config file")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a formatted profile summary")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load(parseConfigPath)
	if err != nil {
		return err
	}
	if parseVerbose {
		cfg.Verbose = true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var mimeType string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		mimeType = types.MimePDF
	case ".docx":
		mimeType = types.MimeDOCX
	default:
		return fmt.Errorf("unsupported file extension %q (expected .pdf or .docx)", filepath.Ext(path))
	}

	logger := newLogger(cfg.Verbose)
	runner, cleanup := buildRunner(context.Background(), cfg, logger)
	defer cleanup()

	result := runner.Parse(context.Background(), filepath.Base(path), mimeType, data)
	if !result.Success {
		return fmt.Errorf("parse failed: %s", result.Error)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(result.Profile)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(jsonBytes))

	return nil
}
