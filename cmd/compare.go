package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/framehouse/estimate-cli/internal/compare"
	"github.com/framehouse/estimate-cli/internal/model"
	"github.com/framehouse/estimate-cli/pkg/rates"
)

var compareCmd = &cobra.Command{
	Use:   "compare <competitor-file> <our-file>",
	Short: "Compare two offer records",
	Long:  "Scores a competitor offer against ours and prints the report. Inputs are canonical offer JSON files, raw extraction JSON files, or manual two-column XLSX sheets.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		competitor, err := loadOfferFile(model.SideCompetitor, args[0])
		if err != nil {
			return eris.Wrap(err, "competitor offer")
		}
		our, err := loadOfferFile(model.SideOur, args[1])
		if err != nil {
			return eris.Wrap(err, "our offer")
		}

		result, err := compare.Run(competitor, our)
		if err != nil {
			return err
		}

		return printComparison(cmd.Context(), result, competitor, our)
	},
}

// printComparison renders the report, fetching exchange rates for an
// approximate competitor price when the two offers disagree on currency.
func printComparison(ctx context.Context, result model.Comparison, competitor, our model.OfferRecord) error {
	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	fmt.Print(renderer.Render(result))

	if result.CurrencyMismatch {
		rctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Rates.TimeoutSecs)*time.Second)
		defer cancel()

		client := rates.NewClient(
			rates.WithBaseURL(cfg.Rates.BaseURL),
			rates.WithFallbackURL(cfg.Rates.FallbackURL),
		)
		rs, err := client.Latest(rctx, competitor.Currency)
		if err != nil {
			zap.L().Warn("exchange rates unavailable", zap.Error(err))
			return nil
		}

		approx := renderer.WithRates(rs).ApproxMoney(competitor.Price, competitor.Currency, our.Currency)
		fmt.Printf("\n%s %s\n", renderer.Money(competitor.Price, competitor.Currency), approx)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
