package roi

import "testing"

func TestResolveVolumes(t *testing.T) {
	tests := []struct {
		name          string
		monthlyVolume int
		avgPerDay     int
		numCenters    int
		expected      Volumes
	}{
		{
			name:          "Monthly volume for one center",
			monthlyVolume: 250,
			numCenters:    1,
			expected:      Volumes{ScansPerMonth: 250, AnnualScans: 3000},
		},
		{
			name:          "Monthly volume scales with centers",
			monthlyVolume: 250,
			numCenters:    3,
			expected:      Volumes{ScansPerMonth: 750, AnnualScans: 9000},
		},
		{
			name:          "Per day override supersedes monthly volume",
			monthlyVolume: 250,
			avgPerDay:     10,
			numCenters:    2,
			expected:      Volumes{ScansPerMonth: 440, AnnualScans: 5280},
		},
		{
			name:          "Zero centers treated as one",
			monthlyVolume: 100,
			numCenters:    0,
			expected:      Volumes{ScansPerMonth: 100, AnnualScans: 1200},
		},
		{
			name:          "Negative centers treated as one",
			avgPerDay:     5,
			numCenters:    -4,
			expected:      Volumes{ScansPerMonth: 110, AnnualScans: 1320},
		},
		{
			name:       "No volume",
			numCenters: 1,
			expected:   Volumes{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveVolumes(tt.monthlyVolume, tt.avgPerDay, tt.numCenters)
			if result != tt.expected {
				t.Errorf("ResolveVolumes() = %+v, expected %+v", result, tt.expected)
			}
		})
	}
}
