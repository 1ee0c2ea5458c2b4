package strategy

const (
	HealthPotionCost = 50
	LivesUpperLimit  = 3

	ExpensiveUpgradeCost = 300
	CheapUpgradeCost     = 100
)

var (
	EasyLabels      = []string{"Piece of cake", "Walk in the park", "Sure thing"}
	DifficultLabels = []string{"Quite likely", "Hmmm....", "Gamble"}

	ForbiddenKeywords = []string{"steal", "Steal"}
)

// Policy carries the fixed thresholds the purchasing and quest selection
// rules read. It is passed explicitly; nothing reads the package vars directly.
type Policy struct {
	HealthPotionCost     int
	LivesUpperLimit      int
	ExpensiveUpgradeCost int
	CheapUpgradeCost     int
	EasyLabels           []string
	DifficultLabels      []string
	ForbiddenKeywords    []string
}

func DefaultPolicy() Policy {
	return Policy{
		HealthPotionCost:     HealthPotionCost,
		LivesUpperLimit:      LivesUpperLimit,
		ExpensiveUpgradeCost: ExpensiveUpgradeCost,
		CheapUpgradeCost:     CheapUpgradeCost,
		EasyLabels:           append([]string(nil), EasyLabels...),
		DifficultLabels:      append([]string(nil), DifficultLabels...),
		ForbiddenKeywords:    append([]string(nil), ForbiddenKeywords...),
	}
}
