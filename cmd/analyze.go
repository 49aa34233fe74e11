package main

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/framehouse/estimate-cli/internal/compare"
	"github.com/framehouse/estimate-cli/internal/extractor"
	"github.com/framehouse/estimate-cli/internal/mapper"
	"github.com/framehouse/estimate-cli/internal/model"
	"github.com/framehouse/estimate-cli/pkg/anthropic"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <competitor-pdf> <our-pdf>",
	Short: "Extract two quote PDFs and compare them",
	Long:  "Runs Claude extraction on both PDFs, maps the results to canonical offer records, and prints the comparison report. Extractions are cached locally by document hash.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		compRes, ourRes, err := extractPDFPair(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		competitor, fbs := mapper.Map(compRes)
		mapper.LogFallbacks(model.SideCompetitor, fbs)
		our, fbs := mapper.Map(ourRes)
		mapper.LogFallbacks(model.SideOur, fbs)

		result, err := compare.Run(competitor, our)
		if err != nil {
			return err
		}

		return printComparison(ctx, result, competitor, our)
	},
}

func extractPDFPair(ctx context.Context, compPath, ourPath string) (model.ExtractionResult, model.ExtractionResult, error) {
	var zero model.ExtractionResult

	if err := cfg.Validate("extract"); err != nil {
		return zero, zero, err
	}

	compPDF, err := os.ReadFile(compPath)
	if err != nil {
		return zero, zero, eris.Wrapf(err, "read %s", compPath)
	}
	ourPDF, err := os.ReadFile(ourPath)
	if err != nil {
		return zero, zero, eris.Wrapf(err, "read %s", ourPath)
	}

	st, err := openStore(ctx)
	if err != nil {
		return zero, zero, err
	}
	defer st.Close()

	ext := extractor.New(anthropic.NewClient(cfg.Anthropic.Key), st, cfg.Anthropic, cacheTTL())
	compRes, ourRes, err := ext.ExtractPair(ctx, compPDF, ourPDF)
	if err != nil {
		return zero, zero, err
	}
	return *compRes, *ourRes, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
