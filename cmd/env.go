package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/framehouse/estimate-cli/internal/display"
	"github.com/framehouse/estimate-cli/internal/i18n"
	"github.com/framehouse/estimate-cli/internal/loader"
	"github.com/framehouse/estimate-cli/internal/mapper"
	"github.com/framehouse/estimate-cli/internal/model"
	"github.com/framehouse/estimate-cli/internal/store"
)

var langFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "report language: en or ru (default from config)")
}

// newRenderer builds the report renderer from config, honoring --lang.
func newRenderer() (*display.Renderer, error) {
	bundle, err := i18n.Load()
	if err != nil {
		return nil, err
	}

	lang := cfg.Display.Language
	if langFlag != "" {
		lang = langFlag
	}

	return display.New(lang, cfg.Display.Locale, bundle), nil
}

// openStore opens the SQLite store and runs migrations.
func openStore(ctx context.Context) (*store.SQLiteStore, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// loadOfferFile reads an offer record, dispatching on the file extension.
// XLSX files carry the manual two-column form. JSON files carry either a
// canonical record or a raw extraction result; extraction results are
// recognized by their nested sections and run through the mapper.
func loadOfferFile(side model.Side, path string) (model.OfferRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rec, skipped, err := loader.LoadOfferXLSX(path)
		if err != nil {
			return rec, err
		}
		for _, key := range skipped {
			zap.L().Warn("unrecognized field in manual sheet",
				zap.String("file", path),
				zap.String("key", key),
			)
		}
		return rec, nil
	case ".json":
		if isExtractionFile(path) {
			res, err := loader.LoadExtraction(path)
			if err != nil {
				return model.OfferRecord{}, err
			}
			rec, fbs := mapper.Map(res)
			mapper.LogFallbacks(side, fbs)
			return rec, nil
		}
		return loader.LoadOffer(path)
	default:
		return model.OfferRecord{}, eris.Errorf("unsupported offer file %s (want .json or .xlsx)", path)
	}
}

// isExtractionFile reports whether a JSON file looks like a raw extraction
// result rather than a canonical offer record.
func isExtractionFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	for _, key := range []string{"packages", "company", "assembly", "options"} {
		if _, ok := probe[key]; ok {
			return true
		}
	}
	return false
}

func cacheTTL() time.Duration {
	return time.Duration(cfg.Store.CacheTTLHours) * time.Hour
}
