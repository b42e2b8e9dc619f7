package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/supervision-roi/internal/config"
	"github.com/iwvelando/supervision-roi/internal/roi"
	"github.com/iwvelando/supervision-roi/pkg/output"
	"github.com/iwvelando/supervision-roi/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	contactURL  string
	pricing     *Pricing
	version     string
}

// NewHandler constructs the HTTP handler that serves the ROI API.
func NewHandler(logger *zap.Logger, cfg *Config, pricing *Pricing, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if pricing == nil {
		pricing = NewPricing(nil)
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: cfg.BodySizeBytes(),
		contactURL:  cfg.ContactURL,
		pricing:     pricing,
		version:     trimmedVersion,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		// ROI estimate for one set of inputs
		r.Post("/roi", h.handleROI)

		// Scenario YAML for the command line tool
		r.Post("/roi/export", h.handleExport)

		r.Get("/pricing", h.handlePricing)
		r.Get("/version", h.handleVersion)
	})

	return r
}

type roiResponse struct {
	output.Report
	Disclaimer string `json:"disclaimer"`
	ContactURL string `json:"contactUrl,omitempty"`
	Duration   string `json:"duration"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

const (
	defaultHourlyRate   = 200.0
	defaultAnnualSalary = 400000.0
)

// defaultScenario mirrors the calculator form defaults so omitted fields
// behave as if left untouched.
func defaultScenario() config.Scenario {
	return config.Scenario{
		Active:        true,
		MonthlyVolume: 250,
		Compensation:  config.CompensationConfig{Kind: string(roi.KindHourly)},
		PerDiemRate:   1800,
		WeekdayStart:  "8:00 AM",
		WeekdayEnd:    "5:00 PM",
		NumCenters:    1,
		CoveragePlan:  string(roi.PlanHourly),
	}
}

func (h *handler) handleROI(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleROI"
	start := time.Now()

	scenario, ok := h.decodeScenario(w, r, op)
	if !ok {
		return
	}

	in, err := scenario.ToInput(h.pricing.Get())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), nil, op)
		return
	}

	if err := validation.ValidateInput(in); err != nil {
		h.respondError(w, http.StatusBadRequest, "input out of range", validation.Errors(err), op)
		return
	}

	result, err := roi.Compute(h.logger, in)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, roi.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		h.respondError(w, status, err.Error(), nil, op)
		return
	}

	elapsed := time.Since(start)
	response := roiResponse{
		Report:     output.NewReport(scenario.Name, in.Plan, result),
		Disclaimer: output.Disclaimer,
		ContactURL: h.contactURL,
		Duration:   elapsed.String(),
	}

	h.logger.Info("roi computed",
		zap.String("op", op),
		zap.String("plan", string(in.Plan)),
		zap.Float64("roiPct", result.ROIPct),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"

	scenario, ok := h.decodeScenario(w, r, op)
	if !ok {
		return
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = "exported"
	}

	pricing := make(map[string]float64)
	for plan, price := range h.pricing.Get() {
		pricing[string(plan)] = price
	}

	conf := config.Configuration{
		Pricing:   pricing,
		Scenarios: []config.Scenario{scenario},
	}

	yamlBytes, err := yaml.Marshal(conf)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err), nil, op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func (h *handler) handlePricing(w http.ResponseWriter, r *http.Request) {
	table := h.pricing.Get()

	type planPrice struct {
		Plan      string  `json:"plan"`
		Label     string  `json:"label"`
		UnitPrice float64 `json:"unitPrice"`
	}
	plans := make([]planPrice, 0, len(roi.Plans))
	for _, plan := range roi.Plans {
		plans = append(plans, planPrice{Plan: string(plan), Label: plan.Label(), UnitPrice: table[plan]})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"plans": plans,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *handler) decodeScenario(w http.ResponseWriter, r *http.Request, op string) (config.Scenario, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	scenario := defaultScenario()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&scenario); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), nil, op)
			return config.Scenario{}, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode inputs: %v", err), nil, op)
		return config.Scenario{}, false
	}
	fillCompensationDefault(&scenario.Compensation)
	return scenario, true
}

// fillCompensationDefault supplies the form default for the figure the
// selected kind uses when the request omits it.
func fillCompensationDefault(comp *config.CompensationConfig) {
	kind, err := roi.ParseCompensationKind(comp.Kind)
	if err != nil {
		return
	}
	switch kind {
	case roi.KindHourly:
		if comp.HourlyRate == nil {
			rate := defaultHourlyRate
			comp.HourlyRate = &rate
		}
	case roi.KindAnnual:
		if comp.AnnualSalary == nil {
			salary := defaultAnnualSalary
			comp.AnnualSalary = &salary
		}
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, details []string, op string) {
	h.logger.Error("roi request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
		zap.Strings("details", details),
	)

	h.writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.Debug("request served",
			zap.String("op", "server.logRequests"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("requestID", middleware.GetReqID(r.Context())),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
