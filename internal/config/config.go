// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/supervision-roi/internal/roi"
	"github.com/iwvelando/supervision-roi/pkg/constants"
	"github.com/iwvelando/supervision-roi/pkg/datetime"
	"github.com/iwvelando/supervision-roi/pkg/mathutil"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for supervision-roi.
type Configuration struct {
	Pricing   map[string]float64 `yaml:"pricing,omitempty"`
	Scenarios []Scenario         `yaml:"scenarios"`
	Logging   LoggingConfig      `yaml:"logging,omitempty"`
	Output    OutputConfig       `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format     string `yaml:"format,omitempty"`     // pretty, csv, json
	ContactURL string `yaml:"contactURL,omitempty"` // call to action link
}

// Scenario holds the operational and financial inputs of one estimate.
type Scenario struct {
	Name             string             `json:"name" yaml:"name"`
	Active           bool               `json:"active" yaml:"active"`
	MonthlyVolume    int                `json:"monthlyVolume" yaml:"monthlyVolume"`
	AvgPerDay        int                `json:"avgPerDay,omitempty" yaml:"avgPerDay,omitempty"`
	Compensation     CompensationConfig `json:"compensation" yaml:"compensation"`
	PerDiemRate      float64            `json:"perDiemRate" yaml:"perDiemRate"`
	WeekdayStart     string             `json:"weekdayStart" yaml:"weekdayStart"`
	WeekdayEnd       string             `json:"weekdayEnd" yaml:"weekdayEnd"`
	WeekendCoverage  bool               `json:"weekendCoverage" yaml:"weekendCoverage"`
	WeekendStart     string             `json:"weekendStart,omitempty" yaml:"weekendStart,omitempty"`
	WeekendEnd       string             `json:"weekendEnd,omitempty" yaml:"weekendEnd,omitempty"`
	AfterHours       bool               `json:"afterHours" yaml:"afterHours"`
	AvgReimbursement float64            `json:"avgReimbursement,omitempty" yaml:"avgReimbursement,omitempty"`
	DowntimePct      float64            `json:"downtimePct,omitempty" yaml:"downtimePct,omitempty"`
	NumCenters       int                `json:"numCenters" yaml:"numCenters"`
	CoveragePlan     string             `json:"coveragePlan" yaml:"coveragePlan"`
}

// CompensationConfig describes how in-house physicians are paid. Only the
// figure matching Kind is used.
type CompensationConfig struct {
	Kind         string   `json:"kind" yaml:"kind"` // hourly, annual
	HourlyRate   *float64 `json:"hourlyRate,omitempty" yaml:"hourlyRate,omitempty"`
	AnnualSalary *float64 `json:"annualSalary,omitempty" yaml:"annualSalary,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings never stop an estimate; range violations are
// reported separately when scenarios are converted and validated.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	for key, price := range c.Pricing {
		plan := roi.ParsePlan(key)
		if !plan.Known() {
			warnings = append(warnings, fmt.Sprintf("Pricing entry '%s' is not a known coverage plan and is ignored", key))
			continue
		}
		if price < 0 {
			warnings = append(warnings, fmt.Sprintf("Pricing entry '%s' is negative (%v)", key, price))
		}
	}

	if len(c.Scenarios) == 0 {
		return append(warnings, "No scenarios are configured")
	}

	active := 0
	seen := make(map[string]bool)
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active++
		}

		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			warnings = append(warnings, "Scenario without a name")
		} else if seen[name] {
			warnings = append(warnings, fmt.Sprintf("Scenario name '%s' is used more than once", name))
		}
		seen[name] = true

		warnings = append(warnings, scenario.warnings()...)
	}

	if active == 0 {
		warnings = append(warnings, "No scenarios are active")
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}

func (s Scenario) warnings() []string {
	var warnings []string
	prefix := fmt.Sprintf("Scenario '%s'", s.Name)

	for _, field := range []struct {
		name  string
		value string
	}{
		{"weekdayStart", s.WeekdayStart},
		{"weekdayEnd", s.WeekdayEnd},
		{"weekendStart", s.WeekendStart},
		{"weekendEnd", s.WeekendEnd},
	} {
		if field.value != "" && !datetime.IsTimeOfDay(field.value) {
			warnings = append(warnings, fmt.Sprintf("%s %s '%s' is not a 12-hour clock time and counts as midnight", prefix, field.name, field.value))
		}
	}

	if s.WeekendCoverage && (s.WeekendStart == "" || s.WeekendEnd == "") {
		warnings = append(warnings, fmt.Sprintf("%s has weekend coverage without both weekend bounds; weekend hours are not counted", prefix))
	}
	if !s.WeekendCoverage && (s.WeekendStart != "" || s.WeekendEnd != "") {
		warnings = append(warnings, fmt.Sprintf("%s sets weekend bounds without weekend coverage; they are ignored", prefix))
	}

	// Both figures are harmless when they describe the same full-time cost.
	if comp := s.Compensation; comp.HourlyRate != nil && comp.AnnualSalary != nil &&
		!mathutil.WithinTolerance(*comp.HourlyRate*constants.FTEHoursPerYear, *comp.AnnualSalary, constants.CurrencyTolerance) {
		warnings = append(warnings, fmt.Sprintf("%s sets both hourlyRate and annualSalary and they disagree; only the one matching kind '%s' is used", prefix, comp.Kind))
	}

	if s.AvgPerDay > 0 && s.MonthlyVolume > 0 {
		warnings = append(warnings, fmt.Sprintf("%s sets avgPerDay, which overrides monthlyVolume", prefix))
	}

	return warnings
}
