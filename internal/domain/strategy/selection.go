package strategy

import "mugloarbot/internal/domain/quest"

type SelectionTier string

const (
	SelectedEasy      SelectionTier = "easy"
	SelectedDifficult SelectionTier = "difficult"
	SelectedFallback  SelectionTier = "fallback"
)

type Selection struct {
	Quest quest.Quest
	Tier  SelectionTier
}

// SelectQuest prefers safe quests without forbidden keywords, then risky ones,
// and only then anything visible. Within a tier the highest reward wins.
func (p Policy) SelectQuest(c quest.Catalog) (Selection, error) {
	easy := c.ExcludingKeywords(p.ForbiddenKeywords, c.ByProbability(p.EasyLabels))
	if len(easy) > 0 {
		q, err := quest.HighestReward(easy)
		return Selection{Quest: q, Tier: SelectedEasy}, err
	}

	difficult := c.ExcludingKeywords(p.ForbiddenKeywords, c.ByProbability(p.DifficultLabels))
	if len(difficult) > 0 {
		q, err := quest.HighestReward(difficult)
		return Selection{Quest: q, Tier: SelectedDifficult}, err
	}

	q, err := c.HighestReward(nil)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Quest: q, Tier: SelectedFallback}, nil
}
