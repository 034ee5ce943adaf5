package geo

// IncomeLevels are the household-income brackets in rank order.
var IncomeLevels = []string{
	"0 to 30,000",
	"30,001 to 48,000",
	"48,001 to 75,000",
	"75,001 to 110,000",
	"Over 110,000",
}

const malformedIncomeLevel = "48_001 to 75,000"

// FixIncomeLevel repairs the one malformed bracket label found in the source data.
func FixIncomeLevel(level string) string {
	if level == malformedIncomeLevel {
		return IncomeLevels[2]
	}
	return level
}

// IncomeRank returns the 0-based rank of a bracket, or -1 when unknown.
func IncomeRank(level string) int {
	level = FixIncomeLevel(level)
	for i, l := range IncomeLevels {
		if l == level {
			return i
		}
	}
	return -1
}
