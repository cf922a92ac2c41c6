package rewards

import "testing"

func TestCalculateReportPoints(t *testing.T) {
	cases := []struct {
		name      string
		weightKg  float64
		wasteType string
		want      int
	}{
		{"e-waste mid weight", 5, "e-waste", 250},
		{"organic clamped to max", 1000, "organic", 500},
		{"tiny weight clamped to min", 0.1, "paper", 5},
		{"plastic", 10, "plastic", 150},
		{"metal", 3, "metal", 60},
		{"glass floors fraction", 1.25, "glass", 15},
		{"unknown type uses default multiplier", 4, "styrofoam", 40},
		{"zero weight clamps to min", 0, "metal", 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateReportPoints(tc.weightKg, tc.wasteType)
			if got != tc.want {
				t.Errorf("CalculateReportPoints(%v, %q) = %d, want %d", tc.weightKg, tc.wasteType, got, tc.want)
			}
		})
	}
}

func TestCalculateReportPointsBounds(t *testing.T) {
	types := []string{"e-waste", "metal", "plastic", "glass", "cardboard", "paper", "organic"}
	for _, wasteType := range types {
		prev := 0
		for weight := 0.1; weight <= 10000; weight *= 2 {
			got := CalculateReportPoints(weight, wasteType)
			if got < MinReportPoints || got > MaxReportPoints {
				t.Fatalf("CalculateReportPoints(%v, %q) = %d, outside [%d, %d]",
					weight, wasteType, got, MinReportPoints, MaxReportPoints)
			}
			if got < prev {
				t.Fatalf("CalculateReportPoints(%v, %q) = %d decreased from %d for heavier load",
					weight, wasteType, got, prev)
			}
			prev = got
		}
	}
}

func TestCalculateJobPoints(t *testing.T) {
	cases := []struct {
		category string
		urgency  string
		want     int
	}{
		{"industry", "high", 45},
		{"industry", "medium", 40},
		{"home", "high", 40},
		{"home", "low", 30},
		{"other", "low", 25},
		{"other", "high", 35},
		{"", "", 25},
		{"garden", "whenever", 25},
	}

	for _, tc := range cases {
		got := CalculateJobPoints(tc.category, tc.urgency)
		if got != tc.want {
			t.Errorf("CalculateJobPoints(%q, %q) = %d, want %d", tc.category, tc.urgency, got, tc.want)
		}
	}
}
