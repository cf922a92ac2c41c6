// Package rewards holds the pure point arithmetic for the platform: report
// and job point calculators and the display-tier resolver. Nothing in here
// touches the database.
package rewards

import "math"

// Fixed award amounts for activities that do not scale with an input.
const (
	MarketplaceApprovalPoints = 15
	EventParticipationPoints  = 10
	TaskCompletionPoints      = 25
)

// Bounds applied to calculated report awards.
const (
	MinReportPoints = 5
	MaxReportPoints = 500
)

// wasteTypeMultipliers weights the per-kg award by how valuable or hazardous
// the material is to recover. Unknown types fall back to 1.0.
var wasteTypeMultipliers = map[string]float64{
	"e-waste":   5.0,
	"metal":     2.0,
	"plastic":   1.5,
	"glass":     1.2,
	"cardboard": 1.0,
	"paper":     1.0,
	"organic":   0.8,
}

const defaultMultiplier = 1.0

// Job award components.
const jobBasePoints = 25

var jobCategoryBonus = map[string]int{
	"industry": 10,
	"home":     5,
}

var jobUrgencyBonus = map[string]int{
	"high":   10,
	"medium": 5,
}

// CalculateReportPoints converts an estimated weight and waste type into an
// award: floor(weightKg * 10 * multiplier), clamped to
// [MinReportPoints, MaxReportPoints].
func CalculateReportPoints(weightKg float64, wasteType string) int {
	multiplier, ok := wasteTypeMultipliers[wasteType]
	if !ok {
		multiplier = defaultMultiplier
	}

	points := int(math.Floor(weightKg * 10 * multiplier))
	if points < MinReportPoints {
		return MinReportPoints
	}
	if points > MaxReportPoints {
		return MaxReportPoints
	}
	return points
}

// CalculateJobPoints sums the job base with category and urgency bonuses.
// Unknown values contribute nothing rather than failing.
func CalculateJobPoints(category, urgency string) int {
	return jobBasePoints + jobCategoryBonus[category] + jobUrgencyBonus[urgency]
}
