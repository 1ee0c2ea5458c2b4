package quest

import (
	"errors"
	"strings"
)

var ErrNoQuestAvailable = errors.New("no quest available")

type Quest struct {
	ID          string
	Description string
	Reward      int
	ExpiresIn   int
	Probability string
	Encrypted   bool
}

// Catalog keeps quests in the order the API listed them. Encrypted quests are
// stored but never returned from any query.
type Catalog struct {
	quests []Quest
}

func NewCatalog(quests []Quest) Catalog {
	c := Catalog{}
	c.Replace(quests)
	return c
}

func (c *Catalog) Replace(quests []Quest) {
	c.quests = append([]Quest(nil), quests...)
}

func (c Catalog) All() []Quest {
	out := make([]Quest, 0, len(c.quests))
	for _, q := range c.quests {
		if q.Encrypted {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ByProbability returns the visible quests whose label is one of labels, or
// all visible quests when labels is empty.
func (c Catalog) ByProbability(labels []string) []Quest {
	all := c.All()
	if len(labels) == 0 {
		return all
	}
	out := make([]Quest, 0, len(all))
	for _, q := range all {
		if containsLabel(labels, q.Probability) {
			out = append(out, q)
		}
	}
	return out
}

// ExcludingKeywords drops quests whose description contains any keyword. An
// empty keyword is contained in every description and so drops everything. A
// nil subset means all visible quests.
func (c Catalog) ExcludingKeywords(keywords []string, subset []Quest) []Quest {
	if subset == nil {
		subset = c.All()
	}
	return ExcludingKeywords(keywords, subset)
}

// HighestReward with a nil subset searches all visible quests.
func (c Catalog) HighestReward(subset []Quest) (Quest, error) {
	if subset == nil {
		subset = c.All()
	}
	return HighestReward(subset)
}

func ExcludingKeywords(keywords []string, quests []Quest) []Quest {
	out := make([]Quest, 0, len(quests))
	for _, q := range quests {
		if q.Encrypted || mentionsAny(q.Description, keywords) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// HighestReward returns the quest with the largest reward. On a tie the
// earliest quest in the slice wins.
func HighestReward(quests []Quest) (Quest, error) {
	best := -1
	for i, q := range quests {
		if q.Encrypted {
			continue
		}
		if best < 0 || q.Reward > quests[best].Reward {
			best = i
		}
	}
	if best < 0 {
		return Quest{}, ErrNoQuestAvailable
	}
	return quests[best], nil
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func mentionsAny(description string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(description, kw) {
			return true
		}
	}
	return false
}
