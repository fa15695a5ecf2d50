package query

import (
	"reflect"
	"testing"
)

func TestExtractSettings(t *testing.T) {
	locations := []string{"forest", "city", "portal"}
	atmosphere := []string{"mysterious", "golden"}

	tests := []struct {
		name           string
		text           string
		wantLocations  []string
		wantAtmosphere []string
	}{
		{
			name:           "first-seen order preserved",
			text:           "The city glowed. A mysterious forest waited beyond the portal.",
			wantLocations:  []string{"city", "forest", "portal"},
			wantAtmosphere: []string{"mysterious"},
		},
		{
			name:           "case variants recorded separately",
			text:           "Forest paths. The forest again.",
			wantLocations:  []string{"Forest", "forest"},
			wantAtmosphere: nil,
		},
		{
			name:           "repeats recorded once",
			text:           "golden light, golden fields, golden hours",
			wantLocations:  nil,
			wantAtmosphere: []string{"golden"},
		},
		{
			name:           "no matches",
			text:           "Nothing relevant here.",
			wantLocations:  nil,
			wantAtmosphere: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSettings(tt.text, locations, atmosphere)
			if !reflect.DeepEqual(got.Locations, tt.wantLocations) {
				t.Errorf("locations: got %v, want %v", got.Locations, tt.wantLocations)
			}
			if !reflect.DeepEqual(got.Atmosphere, tt.wantAtmosphere) {
				t.Errorf("atmosphere: got %v, want %v", got.Atmosphere, tt.wantAtmosphere)
			}
		})
	}
}
