package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/goliatone/go-phoneinput/components/countries"
	"github.com/goliatone/go-phoneinput/components/phoneinput"
	"github.com/goliatone/go-phoneinput/pkg/validation"
)

const shutdownTimeout = 5 * time.Second

type submitResponse struct {
	phoneinput.Result
	Value   string `json:"value,omitempty"`
	Display string `json:"display"`
	Country string `json:"country"`
}

func runServer(ctx context.Context, logger *slog.Logger, addr string, cfg phoneinput.Config) error {
	mux, err := newMux(logger, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func newMux(logger *slog.Logger, cfg phoneinput.Config) (*http.ServeMux, error) {
	if cfg.Name == "" {
		cfg.Name = "phone"
	}
	mux := http.NewServeMux()
	pattern, err := countries.RegisterRoutes(mux, "/")
	if err != nil {
		return nil, fmt.Errorf("register countries: %w", err)
	}
	logger.Debug("countries endpoint", slog.String("pattern", pattern))

	checker, err := validation.New()
	if err != nil {
		return nil, err
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		field := newRequestField(cfg, r)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := field.Render(w); err != nil {
			logger.Error("render field", slog.Any("error", err))
		}
	})

	mux.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		field := newRequestField(cfg, r)
		result := field.Validate(true)
		resp := submitResponse{
			Result:  result,
			Display: field.DisplayValue(),
			Country: field.Country().Abbreviation,
		}
		if result.IsValid && field.DisplayValue() != "" {
			// Re-check the emitted E.164 value with the tag rules.
			value := field.Value()
			result = checker.VarResult(value, validation.TagPhone)
			resp.Result = result
			if result.IsValid {
				resp.Value = value
			}
		}
		logger.Debug("submit",
			slog.String("country", resp.Country),
			slog.Bool("valid", result.IsValid),
		)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if !result.IsValid {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	return mux, nil
}

// newRequestField replays the request through a fresh field: mount from the
// config, select the posted country, then type the posted number.
func newRequestField(cfg phoneinput.Config, r *http.Request) *phoneinput.Field {
	field := phoneinput.New(cfg.Options()...)
	field.Mount()

	if country := r.FormValue(cfg.Name + "_country"); country != "" {
		_ = field.SelectCountryCode(country)
	}
	if raw := r.FormValue(cfg.Name); raw != "" {
		field.Change(raw)
		field.Blur(phoneinput.Event{})
	}
	return field
}
