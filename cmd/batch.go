package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/framehouse/estimate-cli/internal/compare"
	"github.com/framehouse/estimate-cli/internal/extractor"
	"github.com/framehouse/estimate-cli/internal/mapper"
	"github.com/framehouse/estimate-cli/internal/model"
	"github.com/framehouse/estimate-cli/pkg/anthropic"
)

var batchLimit int

// batchOutcome is the per-document summary line of a batch run.
type batchOutcome struct {
	Name   string
	Result model.Comparison
	Err    error
}

var batchCmd = &cobra.Command{
	Use:   "batch <our-file> <competitor-dir>",
	Short: "Compare our offer against every PDF in a directory",
	Long:  "Extracts every competitor quote PDF in the directory, compares each against our offer concurrently, and prints a summary table.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("extract"); err != nil {
			return err
		}

		our, err := loadOfferFile(model.SideOur, args[0])
		if err != nil {
			return eris.Wrap(err, "our offer")
		}

		docs, err := listPDFs(args[1])
		if err != nil {
			return err
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		ext := extractor.New(anthropic.NewClient(cfg.Anthropic.Key), st, cfg.Anthropic, cacheTTL())

		outcomes, err := processDocs(ctx, docs, batchLimit, cfg.Batch.MaxConcurrent, func(ctx context.Context, path string) (model.Comparison, error) {
			var result model.Comparison

			pdf, err := os.ReadFile(path)
			if err != nil {
				return result, eris.Wrapf(err, "read %s", path)
			}

			res, err := ext.ExtractDocument(ctx, pdf)
			if err != nil {
				return result, err
			}

			competitor, fbs := mapper.Map(*res)
			mapper.LogFallbacks(model.SideCompetitor, fbs)

			return compare.Run(competitor, our)
		})
		if err != nil {
			return err
		}

		printBatchSummary(outcomes)
		return nil
	},
}

// listPDFs returns the PDF files in a directory, sorted by name.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "read directory %s", dir)
	}

	var docs []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		docs = append(docs, filepath.Join(dir, e.Name()))
	}
	if len(docs) == 0 {
		return nil, eris.Errorf("no PDF documents in %s", dir)
	}

	sort.Strings(docs)
	return docs, nil
}

// compareDocFunc runs one competitor document end to end.
type compareDocFunc func(ctx context.Context, path string) (model.Comparison, error)

// processDocs applies limit, then works through the documents concurrently.
// Individual failures are recorded without aborting the batch.
func processDocs(ctx context.Context, docs []string, limit, concurrency int, run compareDocFunc) ([]batchOutcome, error) {
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}

	zap.L().Info("processing batch",
		zap.Int("documents", len(docs)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	outcomes := make([]batchOutcome, len(docs))
	var succeeded, failed atomic.Int64

	for i, path := range docs {
		g.Go(func() error {
			name := filepath.Base(path)
			log := zap.L().With(zap.String("document", name))

			result, err := run(gctx, path)
			if err != nil {
				failed.Add(1)
				log.Error("document failed", zap.Error(err))
				outcomes[i] = batchOutcome{Name: name, Err: err}
				return nil // keep going on individual failure
			}

			succeeded.Add(1)
			log.Info("document complete",
				zap.Float64("competitor", result.CompetitorScore.Total),
				zap.Float64("our", result.OurScore.Total),
				zap.String("winner", string(result.Winner)),
			)
			outcomes[i] = batchOutcome{Name: name, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return outcomes, nil
}

func printBatchSummary(outcomes []batchOutcome) {
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Printf("%-40s failed: %v\n", o.Name, o.Err)
			continue
		}
		fmt.Printf("%-40s %4.1f vs %4.1f  %s\n",
			o.Name,
			o.Result.CompetitorScore.Total,
			o.Result.OurScore.Total,
			o.Result.Winner,
		)
	}
}

func init() {
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of documents to process (0 = all)")
	rootCmd.AddCommand(batchCmd)
}
