// Package estimate defines the data structures related to a given estimate
// and includes functions for computing the estimates of every scenario.
package estimate

import (
	"fmt"

	"github.com/iwvelando/supervision-roi/internal/config"
	"github.com/iwvelando/supervision-roi/internal/roi"
	"github.com/iwvelando/supervision-roi/pkg/validation"
	"go.uber.org/zap"
)

// Estimate holds the inputs and outcome of one scenario.
type Estimate struct {
	Name   string
	Input  roi.Input
	Result roi.Result
}

// GetEstimates processes the Estimates for all active Scenarios. Inputs are
// range checked before they reach the engine.
func GetEstimates(logger *zap.Logger, conf config.Configuration) ([]Estimate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	prices := conf.PriceTable()

	var results []Estimate
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "estimate.GetEstimates"),
			)
			continue
		}

		in, err := scenario.ToInput(prices)
		if err != nil {
			return results, err
		}

		if err := validation.ValidateInput(in); err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		result, err := roi.Compute(logger, in)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		results = append(results, Estimate{
			Name:   scenario.Name,
			Input:  in,
			Result: result,
		})
	}

	return results, nil
}
