package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/framehouse/estimate-cli/internal/compare"
	"github.com/framehouse/estimate-cli/internal/mapper"
	"github.com/framehouse/estimate-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the comparison HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(cfg.Server.AllowedOrigins),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// compareRequest is the POST /api/compare body: two raw extraction payloads
// as produced by the document extraction step.
type compareRequest struct {
	Competitor model.ExtractionResult `json:"competitor"`
	Our        model.ExtractionResult `json:"our"`
}

// compareResponse carries the comparison outcome together with the mapped
// canonical records, so API clients can show what was actually compared.
type compareResponse struct {
	Result          model.Comparison  `json:"result"`
	CompetitorOffer model.OfferRecord `json:"competitor_offer"`
	OurOffer        model.OfferRecord `json:"our_offer"`
}

func newRouter(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/compare", func(w http.ResponseWriter, req *http.Request) {
		var body compareRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		competitor, fbs := mapper.Map(body.Competitor)
		mapper.LogFallbacks(model.SideCompetitor, fbs)
		our, fbs := mapper.Map(body.Our)
		mapper.LogFallbacks(model.SideOur, fbs)

		result, err := compare.Run(competitor, our)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, compareResponse{
			Result:          result,
			CompetitorOffer: competitor,
			OurOffer:        our,
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
