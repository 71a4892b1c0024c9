package selector

// Status classifies the sign of the counter value.
type Status string

const (
	StatusPositive Status = "positive"
	StatusNegative Status = "negative"
	StatusZero     Status = "zero"
)

// Trend describes the direction of the last two value changes.
type Trend string

const (
	TrendInsufficient Trend = "insufficient-data"
	TrendIncreasing   Trend = "increasing"
	TrendDecreasing   Trend = "decreasing"
	TrendStable       Trend = "stable"
)

// Category buckets the value into coarse skill-style tiers.
type Category string

const (
	CategoryNeutral          Category = "neutral"
	CategoryBeginner         Category = "beginner"
	CategoryIntermediate     Category = "intermediate"
	CategoryExpert           Category = "expert"
	CategoryNegativeBeginner Category = "negative-beginner"
	CategoryNegativeExpert   Category = "negative-expert"
	CategoryUnknown          Category = "unknown"
)

// band pairs the narrative message with its emoji for one value range.
type band struct {
	message string
	emoji   string
}

// bandOf maps the value into one of the fixed narrative bands. Bands are
// checked in order and upper bounds are inclusive; the final band is a
// fallback that integer inputs never reach.
func bandOf(v int) band {
	switch {
	case v == 0:
		return band{"Right at zero. A fresh start!", "😴"}
	case v > 0 && v <= 5:
		return band{"Warming up.", "🙂"}
	case v > 5 && v <= 10:
		return band{"Making good progress!", "😊"}
	case v > 10 && v <= 20:
		return band{"On a roll now!", "😄"}
	case v > 20:
		return band{"Sky high. Unstoppable!", "🚀"}
	case v < 0 && v >= -5:
		return band{"Dipping below zero.", "😕"}
	case v < -5 && v >= -10:
		return band{"Sinking fast.", "😟"}
	case v < -10:
		return band{"Deep in the red!", "😱"}
	default:
		return band{"Counting along.", "🤔"}
	}
}

func statusOf(v int) Status {
	switch {
	case v > 0:
		return StatusPositive
	case v < 0:
		return StatusNegative
	default:
		return StatusZero
	}
}

func categoryOf(v int) Category {
	switch {
	case v == 0:
		return CategoryNeutral
	case v > 0 && v <= 10:
		return CategoryBeginner
	case v > 10 && v <= 50:
		return CategoryIntermediate
	case v > 50:
		return CategoryExpert
	case v < 0 && v >= -10:
		return CategoryNegativeBeginner
	case v < -10:
		return CategoryNegativeExpert
	default:
		return CategoryUnknown
	}
}

func trendOf(h []int) Trend {
	if len(h) < 3 {
		return TrendInsufficient
	}
	last := h[len(h)-3:]
	d1 := last[1] - last[0]
	d2 := last[2] - last[1]
	switch {
	case d1 > 0 && d2 > 0:
		return TrendIncreasing
	case d1 < 0 && d2 < 0:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
