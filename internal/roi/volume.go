package roi

import "github.com/iwvelando/supervision-roi/pkg/constants"

// Volumes holds the resolved contrast scan counts across all centers.
type Volumes struct {
	ScansPerMonth int
	AnnualScans   int
}

// ResolveVolumes computes scan counts from the per-day override when it is
// positive, otherwise from the monthly volume.
func ResolveVolumes(monthlyVolume, avgPerDay, numCenters int) Volumes {
	centers := normalizeCenters(numCenters)

	var scansPerMonth int
	if avgPerDay > 0 {
		scansPerMonth = avgPerDay * constants.WorkingDaysPerMonth * centers
	} else {
		scansPerMonth = monthlyVolume * centers
	}

	return Volumes{
		ScansPerMonth: scansPerMonth,
		AnnualScans:   scansPerMonth * constants.MonthsPerYear,
	}
}

// normalizeCenters treats a missing or zero center count as one center.
func normalizeCenters(numCenters int) int {
	if numCenters < 1 {
		return 1
	}
	return numCenters
}
