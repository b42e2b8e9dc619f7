package roi

import (
	"fmt"
	"strings"
)

// CompensationKind identifies how in-house supervising physicians are paid.
type CompensationKind string

// Compensation kinds.
const (
	KindHourly CompensationKind = "hourly"
	KindAnnual CompensationKind = "annual"
)

// Compensation is the pay model of the current in-house staffing. It is
// either an HourlyRate or an AnnualSalary; no other implementations exist.
type Compensation interface {
	Kind() CompensationKind
	isCompensation()
}

// HourlyRate pays supervising physicians per covered hour.
type HourlyRate struct {
	Rate float64
}

// Kind implements Compensation.
func (HourlyRate) Kind() CompensationKind { return KindHourly }

func (HourlyRate) isCompensation() {}

// AnnualSalary pays one salaried physician per center.
type AnnualSalary struct {
	Salary float64
}

// Kind implements Compensation.
func (AnnualSalary) Kind() CompensationKind { return KindAnnual }

func (AnnualSalary) isCompensation() {}

// ParseCompensationKind accepts "hourly", "annual" and the long form labels
// "Hourly Rate" and "Annual Salary", case-insensitively.
func ParseCompensationKind(value string) (CompensationKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "hourly", "hourly rate":
		return KindHourly, nil
	case "annual", "annual salary", "salary":
		return KindAnnual, nil
	}
	return "", fmt.Errorf("%w: unknown compensation kind %q", ErrInvalidInput, value)
}

// NewCompensation builds the Compensation variant selected by kind from the
// matching figure. The figure that does not match kind is ignored even when
// set; a missing matching figure is an ErrInvalidInput.
func NewCompensation(kind string, hourlyRate, annualSalary *float64) (Compensation, error) {
	parsed, err := ParseCompensationKind(kind)
	if err != nil {
		return nil, err
	}

	switch parsed {
	case KindHourly:
		if hourlyRate == nil {
			return nil, fmt.Errorf("%w: hourly compensation requires an hourly rate", ErrInvalidInput)
		}
		return HourlyRate{Rate: *hourlyRate}, nil
	default:
		if annualSalary == nil {
			return nil, fmt.Errorf("%w: annual compensation requires an annual salary", ErrInvalidInput)
		}
		return AnnualSalary{Salary: *annualSalary}, nil
	}
}
