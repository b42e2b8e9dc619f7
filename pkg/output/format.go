// Package output provides utilities for formatting and displaying estimate results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/supervision-roi/internal/estimate"
	"github.com/iwvelando/supervision-roi/pkg/format"
	"github.com/iwvelando/supervision-roi/pkg/mathutil"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []estimate.Estimate, contactURL string) {
	for i, report := range Reports(results) {
		figures := report.Figures
		fmt.Fprintf(w, "--- Results for scenario %s ---\n", report.Name)
		fmt.Fprintf(w, "Coverage plan                 | %s\n", report.Summary.PlanLabel)
		fmt.Fprintf(w, "Weekly supervised hours       | %s\n", format.Number(figures.WeeklyHours, 2))
		fmt.Fprintf(w, "Annual contrast scans         | %s\n", format.Number(float64(figures.AnnualScans), 0))
		fmt.Fprintf(w, "Annual plan cost              | %s\n", format.Currency(figures.PlanCost))
		fmt.Fprintf(w, "Estimated annual cost savings | %s\n", report.Summary.CostSavings)
		fmt.Fprintf(w, "Potential added revenue       | %s\n", report.Summary.AddedRevenue)
		fmt.Fprintf(w, "Reduction in required MD FTEs | %s\n", report.Summary.FTESaved)
		fmt.Fprintf(w, "Total margin improvement      | %s\n", report.Summary.TotalMargin)
		fmt.Fprintf(w, "ROI %%                         | %s\n", report.Summary.ROIPct)
		fmt.Fprintf(w, "%s\n", report.Summary.Statement)
		if i < len(results)-1 {
			fmt.Fprintf(w, "\n")
		}
	}

	fmt.Fprintf(w, "\n%s\n", Disclaimer)
	if contactURL != "" {
		fmt.Fprintf(w, "Want a custom ROI breakdown for your center? Book your ROI call: %s\n", contactURL)
	}
}

var csvHeader = []string{
	"scenario", "plan", "weekly hours", "annual scans", "md annual cost", "locum annual cost",
	"plan cost", "cost savings", "added revenue", "total margin", "fte saved", "roi pct",
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, results []estimate.Estimate) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, report := range Reports(results) {
		f := report.Figures
		record := []string{
			report.Name,
			report.Plan,
			formatFloat(f.WeeklyHours),
			strconv.Itoa(f.AnnualScans),
			formatFloat(f.MDAnnualCost),
			formatFloat(f.LocumAnnualCost),
			formatFloat(f.PlanCost),
			formatFloat(f.CostSavings),
			formatFloat(f.AddedRevenue),
			formatFloat(f.TotalMargin),
			formatFloat(f.FTESaved),
			formatFloat(f.ROIPct),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// JSONFormat outputs the reports as an indented JSON array.
func JSONFormat(w io.Writer, results []estimate.Estimate) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Reports(results))
}

// formatFloat rounds half away from zero before printing cents.
func formatFloat(value float64) string {
	return strconv.FormatFloat(mathutil.Round(value), 'f', 2, 64)
}
