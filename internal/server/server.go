// Package server exposes the explorer over HTTP: a JSON API consumed by
// the embedded web UI. Every selection is computed from scratch per
// request; a failed selection only fails that request.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/income-explorer/internal/catalog"
	"github.com/iwvelando/income-explorer/internal/dataset"
	"github.com/iwvelando/income-explorer/internal/explore"
	"github.com/iwvelando/income-explorer/internal/rates"
	"github.com/iwvelando/income-explorer/internal/summary"
	"github.com/iwvelando/income-explorer/pkg/constants"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger   *zap.Logger
	store    *dataset.Store
	explorer *explore.Explorer
	version  string
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// explorer API.
func NewHandler(logger *zap.Logger, store *dataset.Store, explorer *explore.Explorer, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, store: store, explorer: explorer, version: trimmedVersion}

	router := httprouter.New()
	router.Handler(http.MethodGet, "/api/countries", http.HandlerFunc(h.handleCountries))
	router.Handler(http.MethodGet, "/api/countries/:code", http.HandlerFunc(h.handleCountry))
	router.Handler(http.MethodGet, "/api/explore", http.HandlerFunc(h.handleExplore))
	router.Handler(http.MethodGet, "/api/version", http.HandlerFunc(h.handleVersion))

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	router.NotFound = http.FileServer(http.FS(sub))

	return router
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

type countriesResponse struct {
	Countries []dataset.Country `json:"countries"`
}

func (h *handler) handleCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.store.Countries()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to load country index: %v", err), "server.handleCountries")
		return
	}
	h.writeJSON(w, http.StatusOK, countriesResponse{Countries: countries})
}

type variableOption struct {
	dataset.VariableMeta
	Label string `json:"label"`
}

type countryResponse struct {
	Country         dataset.Country  `json:"country"`
	Variables       []variableOption `json:"variables"`
	DefaultVariable string           `json:"defaultVariable"`
	Years           []int            `json:"years"`
	Groups          []string         `json:"groups"`
	DefaultGroup    string           `json:"defaultGroup"`
}

func (h *handler) handleCountry(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	code := params.ByName("code")

	meta, err := h.store.Metadata(code)
	if err != nil {
		h.respondError(w, http.StatusNotFound,
			fmt.Sprintf("no metadata for country %s", code), "server.handleCountry")
		return
	}
	observations, err := h.store.Observations(code)
	if err != nil {
		h.respondError(w, http.StatusNotFound,
			fmt.Sprintf("no data for country %s", code), "server.handleCountry")
		return
	}

	country := dataset.Country{Alpha2: code, TitleName: code}
	if countries, err := h.store.Countries(); err == nil {
		for _, c := range countries {
			if c.Alpha2 == code {
				country = c
				break
			}
		}
	}

	variables := make([]variableOption, 0, len(meta))
	for _, m := range meta {
		variables = append(variables, variableOption{VariableMeta: m, Label: m.DisplayLabel()})
	}
	defaultVariable, _ := explore.DefaultVariable(meta)

	seen := make(map[int]struct{})
	var years []int
	for _, obs := range observations {
		if _, ok := seen[obs.Year]; ok {
			continue
		}
		seen[obs.Year] = struct{}{}
		years = append(years, obs.Year)
	}
	years = sortYearsDesc(years)

	h.writeJSON(w, http.StatusOK, countryResponse{
		Country:         country,
		Variables:       variables,
		DefaultVariable: defaultVariable,
		Years:           years,
		Groups:          catalog.Names(),
		DefaultGroup:    constants.DefaultGroup,
	})
}

func (h *handler) handleExplore(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := r.URL.Query()

	sel := explore.Selection{
		Country:  query.Get("country"),
		Variable: query.Get("variable"),
		Group:    query.Get("group"),
		YAxis:    query.Get("yaxis"),
		End:      constants.PercentileMax,
	}

	var err error
	if raw := query.Get("year"); raw != "" {
		sel.Year, err = strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid year %q", raw), "server.handleExplore")
			return
		}
	}
	if raw := query.Get("start"); raw != "" {
		sel.Start, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid start %q", raw), "server.handleExplore")
			return
		}
	}
	if raw := query.Get("end"); raw != "" {
		sel.End, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid end %q", raw), "server.handleExplore")
			return
		}
	}

	if sel.Variable == "" {
		country := sel.Country
		if country == "" {
			country = constants.DefaultCountry
		}
		if meta, metaErr := h.store.Metadata(country); metaErr == nil {
			sel.Variable, _ = explore.DefaultVariable(meta)
		}
	}

	view, err := h.explorer.Explore(r.Context(), sel)
	if err != nil {
		h.respondExploreError(w, err)
		return
	}

	h.logger.Info("explore request served",
		zap.String("op", "server.handleExplore"),
		zap.String("country", view.Country.Alpha2),
		zap.String("variable", view.Variable.Variable),
		zap.Int("year", view.Year),
		zap.Duration("duration", time.Since(start)),
	)
	h.writeJSON(w, http.StatusOK, view)
}

// respondExploreError translates pipeline errors into user-visible
// messages with appropriate statuses; nothing is swallowed.
func (h *handler) respondExploreError(w http.ResponseWriter, err error) {
	var noData *dataset.NoDataError
	var missingCutoff *summary.MissingCutoffError
	var providerErr *rates.ProviderError

	switch {
	case errors.As(err, &noData):
		h.respondError(w, http.StatusNotFound, "No data available", "server.handleExplore")
	case errors.As(err, &missingCutoff):
		h.respondError(w, http.StatusNotFound,
			fmt.Sprintf("No data available at cutoff %s", missingCutoff.Label), "server.handleExplore")
	case errors.As(err, &providerErr):
		h.respondError(w, http.StatusBadGateway, err.Error(), "server.handleExplore")
	default:
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleExplore")
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func sortYearsDesc(years []int) []int {
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
