package outlier

// Direction labels which side of the detector's center a flagged value
// lies on.
type Direction string

// Flag directions.
const (
	DirectionHigh Direction = "high"
	DirectionLow  Direction = "low"
)

// Result is a single flagged point: its 0-based position in the input, the
// value, and the side of the center it fell on.
type Result struct {
	Index     int
	Value     float64
	Direction Direction
}

// Ensemble is a Result enriched with the agreement of the detector panel:
// Confidence is the fraction of panel methods that flagged the index, and
// Methods lists their names sorted ascending.
type Ensemble struct {
	Result
	Confidence float64
	Methods    []string
}

// Summary aggregates an ensemble scan of a sequence.
type Summary struct {
	TotalPoints  int
	OutlierCount int
	OutlierRate  float64
}

// direction returns the side of center a value lies on.
func direction(value, center float64) Direction {
	if value > center {
		return DirectionHigh
	}
	return DirectionLow
}
