package estimate

// Tier is the qualitative band of a complexity level.
type Tier string

const (
	TierNormal Tier = "normal"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// MaxLevel is the number of bars on the complexity meter.
const MaxLevel = 5

// levelThresholds are exclusive lower bounds in hours for levels 2 through 5.
var levelThresholds = [MaxLevel - 1]int{20, 40, 60, 80}

// Complexity is the complexity-meter reading for a project.
type Complexity struct {
	Level int  `json:"level"`
	Tier  Tier `json:"tier"`
}

// Classify maps total project hours to a level from 1 to 5. The level is the
// highest threshold strictly exceeded.
func Classify(totalHours int) Complexity {
	level := 1
	for _, threshold := range levelThresholds {
		if totalHours > threshold {
			level++
		}
	}
	return Complexity{Level: level, Tier: TierFor(level)}
}

// TierFor derives the tier from a level alone.
func TierFor(level int) Tier {
	switch {
	case level >= 4:
		return TierHigh
	case level >= 3:
		return TierMedium
	default:
		return TierNormal
	}
}

// Active reports whether meter bar i (0-based) is lit.
func (c Complexity) Active(i int) bool {
	return i >= 0 && i < c.Level
}
