package rewards

// Tier is a display band derived from a user's cumulative points.
type Tier struct {
	Name     string `json:"name"`
	Badge    string `json:"badge"`
	Color    string `json:"color"`
	MinScore int    `json:"min_score"`
}

// tiers is ordered highest threshold first; resolution walks down until a
// threshold matches.
var tiers = []Tier{
	{Name: "Diamond", Badge: "💎", Color: "#b9f2ff", MinScore: 10000},
	{Name: "Platinum", Badge: "🏆", Color: "#e5e4e2", MinScore: 5000},
	{Name: "Gold", Badge: "🥇", Color: "#ffd700", MinScore: 2500},
	{Name: "Silver", Badge: "🥈", Color: "#c0c0c0", MinScore: 1000},
	{Name: "Bronze", Badge: "🥉", Color: "#cd7f32", MinScore: 500},
}

var beginnerTier = Tier{Name: "Beginner", Badge: "🌱", Color: "#90ee90", MinScore: 0}

// GetRewardTier resolves a point total to its tier. Total over all integers;
// anything below the Bronze threshold, including negatives, is Beginner.
func GetRewardTier(totalPoints int) Tier {
	for _, t := range tiers {
		if totalPoints >= t.MinScore {
			return t
		}
	}
	return beginnerTier
}
