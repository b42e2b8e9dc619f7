package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iwvelando/supervision-roi/internal/config"
	"github.com/iwvelando/supervision-roi/internal/roi"
	"github.com/iwvelando/supervision-roi/pkg/mathutil"
	"github.com/iwvelando/supervision-roi/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func newTestHandler(t *testing.T) (http.Handler, *Pricing) {
	t.Helper()
	pricing := NewPricing(nil)
	return NewHandler(zap.NewNop(), DefaultConfig(), pricing, "test"), pricing
}

func TestHandleROIDefaults(t *testing.T) {
	handler, _ := newTestHandler(t)

	rr := performJSON(t, handler, map[string]interface{}{}, "/api/roi")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp roiResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// 45 weekly hours at $200 against the $140 hourly plan.
	if !mathutil.WithinTolerance(resp.Figures.CostSavings, 140400, 0.01) {
		t.Errorf("expected cost savings 140400, got %f", resp.Figures.CostSavings)
	}
	if !mathutil.WithinTolerance(resp.Figures.PlanCost, 327600, 0.01) {
		t.Errorf("expected plan cost 327600, got %f", resp.Figures.PlanCost)
	}
	if resp.Summary.CostSavings != "$140,400" {
		t.Errorf("expected formatted savings $140,400, got %q", resp.Summary.CostSavings)
	}
	if resp.Plan != string(roi.PlanHourly) {
		t.Errorf("expected plan Hourly, got %q", resp.Plan)
	}
	if resp.Disclaimer != output.Disclaimer {
		t.Errorf("expected disclaimer in response, got %q", resp.Disclaimer)
	}
	if resp.ContactURL == "" {
		t.Error("expected contact URL in response")
	}
	if resp.Duration == "" {
		t.Error("expected duration in response")
	}
}

func TestHandleROIAnnualSalary(t *testing.T) {
	handler, _ := newTestHandler(t)

	payload := map[string]interface{}{
		"compensation": map[string]interface{}{
			"kind":         "annual",
			"annualSalary": 500000,
		},
		"coveragePlan": "Annual",
	}
	rr := performJSON(t, handler, payload, "/api/roi")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp roiResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !mathutil.WithinTolerance(resp.Figures.CostSavings, 300000, 0.01) {
		t.Errorf("expected cost savings 300000, got %f", resp.Figures.CostSavings)
	}
	if !mathutil.WithinTolerance(resp.Figures.ROIPct, 150, 0.01) {
		t.Errorf("expected ROI 150%%, got %f", resp.Figures.ROIPct)
	}
}

func TestHandleROIUsesCurrentPricing(t *testing.T) {
	handler, pricing := newTestHandler(t)
	pricing.Set(roi.PriceTable{roi.PlanHourly: 100})

	rr := performJSON(t, handler, map[string]interface{}{}, "/api/roi")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp roiResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// 100 * 45 * 52
	if !mathutil.WithinTolerance(resp.Figures.PlanCost, 234000, 0.01) {
		t.Errorf("expected plan cost 234000, got %f", resp.Figures.PlanCost)
	}
}

func TestHandleROIIgnoresUnselectedPlanPrices(t *testing.T) {
	handler, pricing := newTestHandler(t)
	pricing.Set(roi.PriceTable{roi.PlanDaily: -1})

	rr := performJSON(t, handler, map[string]interface{}{"coveragePlan": "Hourly"}, "/api/roi")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = performJSON(t, handler, map[string]interface{}{"coveragePlan": "Daily"}, "/api/roi")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for the negatively priced plan, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandleROIValidationErrors(t *testing.T) {
	handler, _ := newTestHandler(t)

	payload := map[string]interface{}{
		"monthlyVolume": 5000,
		"numCenters":    500,
		"coveragePlan":  "Weekly",
	}
	rr := performJSON(t, handler, payload, "/api/roi")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if len(resp.Details) < 3 {
		t.Fatalf("expected every violation to be reported, got %v", resp.Details)
	}
}

func TestHandleROIBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "malformed JSON",
			body: "{",
			want: "failed to decode inputs",
		},
		{
			name: "unknown field",
			body: `{"scansPerWeek": 10}`,
			want: "failed to decode inputs",
		},
		{
			name: "unknown compensation kind",
			body: `{"compensation": {"kind": "stipend"}}`,
			want: "invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/roi", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", rr.Code, rr.Body.String())
			}

			var resp errorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if !strings.Contains(resp.Error, tt.want) {
				t.Fatalf("expected error containing %q, got %q", tt.want, resp.Error)
			}
		})
	}
}

func TestHandleROIBodyTooLarge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetBodySizeBytes(64)
	handler := NewHandler(zap.NewNop(), cfg, nil, "")

	body := `{"name": "` + strings.Repeat("a", 128) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/roi", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", rr.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if !strings.Contains(resp.Error, "request exceeds limit") {
		t.Fatalf("expected request limit error message, got %q", resp.Error)
	}
}

func TestHandleROIMethodNotAllowed(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/roi", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}

func TestHandleExport(t *testing.T) {
	handler, _ := newTestHandler(t)

	payload := map[string]interface{}{
		"name":            "north campus",
		"weekendCoverage": true,
		"weekendStart":    "8:00 AM",
		"weekendEnd":      "12:00 PM",
		"coveragePlan":    "Daily",
	}
	rr := performJSON(t, handler, payload, "/api/roi/export")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	yamlStr := resp["configYaml"]
	if yamlStr == "" {
		t.Fatal("expected configYaml in response")
	}

	// The exported document must load back through the scenario loader.
	conf, err := config.LoadConfigurationFromReader(strings.NewReader(yamlStr))
	if err != nil {
		t.Fatalf("exported YAML does not load: %v", err)
	}
	if len(conf.Scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(conf.Scenarios))
	}
	scenario := conf.Scenarios[0]
	if scenario.Name != "north campus" {
		t.Errorf("expected scenario name to round trip, got %q", scenario.Name)
	}
	if scenario.CoveragePlan != "Daily" {
		t.Errorf("expected coverage plan Daily, got %q", scenario.CoveragePlan)
	}
	if scenario.Compensation.HourlyRate == nil || *scenario.Compensation.HourlyRate != 200 {
		t.Errorf("expected default hourly rate 200, got %v", scenario.Compensation.HourlyRate)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(yamlStr), &raw); err != nil {
		t.Fatalf("failed to parse exported YAML: %v", err)
	}
	if _, ok := raw["pricing"]; !ok {
		t.Error("expected pricing section in exported YAML")
	}
}

func TestHandlePricing(t *testing.T) {
	handler, pricing := newTestHandler(t)
	pricing.Set(roi.PriceTable{roi.PlanMonthly: 15000})

	req := httptest.NewRequest(http.MethodGet, "/api/pricing", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Plans []struct {
			Plan      string  `json:"plan"`
			Label     string  `json:"label"`
			UnitPrice float64 `json:"unitPrice"`
		} `json:"plans"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := map[string]float64{
		"Hourly":  140,
		"Daily":   950,
		"Monthly": 15000,
		"Annual":  200000,
	}
	if len(resp.Plans) != len(want) {
		t.Fatalf("expected %d plans, got %d", len(want), len(resp.Plans))
	}
	for _, p := range resp.Plans {
		if want[p.Plan] != p.UnitPrice {
			t.Errorf("plan %s: expected price %f, got %f", p.Plan, want[p.Plan], p.UnitPrice)
		}
		if p.Label == "" {
			t.Errorf("plan %s: expected a label", p.Plan)
		}
	}
}

func TestHandleVersionAndHealth(t *testing.T) {
	tests := []struct {
		name    string
		version string
		path    string
		key     string
		want    string
	}{
		{name: "version", version: "1.2.3", path: "/api/version", key: "version", want: "1.2.3"},
		{name: "blank version", version: "  ", path: "/api/version", key: "version", want: "dev"},
		{name: "health", version: "1.2.3", path: "/healthz", key: "status", want: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(nil, nil, nil, tt.version)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON content type, got %q", ct)
			}

			var resp map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp[tt.key] != tt.want {
				t.Fatalf("expected %s %q, got %q", tt.key, tt.want, resp[tt.key])
			}
		})
	}
}

func TestPricingGetReturnsCopy(t *testing.T) {
	pricing := NewPricing(roi.PriceTable{roi.PlanDaily: 1000})

	table := pricing.Get()
	table[roi.PlanDaily] = 1

	if got := pricing.Get()[roi.PlanDaily]; got != 1000 {
		t.Fatalf("expected stored price to be unaffected, got %f", got)
	}
	if got := pricing.Get()[roi.PlanHourly]; got != 140 {
		t.Fatalf("expected default hourly price, got %f", got)
	}
}

func performJSON(t *testing.T, handler http.Handler, payload map[string]interface{}, path string) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
