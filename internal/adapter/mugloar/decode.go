package mugloar

import (
	"mugloarbot/internal/domain/quest"
	"mugloarbot/internal/domain/session"
	"mugloarbot/internal/domain/shop"

	"github.com/tidwall/gjson"
)

func decodeStart(res gjson.Result) session.Start {
	return session.Start{
		GameID: res.Get("gameId").String(),
		Lives:  int(res.Get("lives").Int()),
		Gold:   int(res.Get("gold").Int()),
		Level:  int(res.Get("level").Int()),
		Score:  int(res.Get("score").Int()),
		Turn:   int(res.Get("turn").Int()),
	}
}

// decodeQuests keeps API order. The encrypted flag is absent on plain
// messages and may be a bool or a number on encoded ones.
func decodeQuests(res gjson.Result) []quest.Quest {
	arr := res.Array()
	out := make([]quest.Quest, 0, len(arr))
	for _, m := range arr {
		out = append(out, quest.Quest{
			ID:          m.Get("adId").String(),
			Description: m.Get("message").String(),
			Reward:      int(m.Get("reward").Int()),
			ExpiresIn:   int(m.Get("expiresIn").Int()),
			Probability: m.Get("probability").String(),
			Encrypted:   m.Get("encrypted").Bool(),
		})
	}
	return out
}

func decodeItems(res gjson.Result) []shop.Item {
	arr := res.Array()
	out := make([]shop.Item, 0, len(arr))
	for _, it := range arr {
		out = append(out, shop.Item{
			ID:   it.Get("id").String(),
			Name: it.Get("name").String(),
			Cost: int(it.Get("cost").Int()),
		})
	}
	return out
}

func decodeQuestOutcome(res gjson.Result) session.QuestOutcome {
	return session.QuestOutcome{
		Success: res.Get("success").Bool(),
		Message: res.Get("message").String(),
		Lives:   int(res.Get("lives").Int()),
		Gold:    int(res.Get("gold").Int()),
		Turn:    int(res.Get("turn").Int()),
		Score:   int(res.Get("score").Int()),
	}
}

// shoppingSuccess is optional; its absence means the API accepted the buy.
func decodePurchaseOutcome(res gjson.Result) session.PurchaseOutcome {
	success := true
	if v := res.Get("shoppingSuccess"); v.Exists() {
		success = v.Bool()
	}
	return session.PurchaseOutcome{
		Success: success,
		Gold:    int(res.Get("gold").Int()),
		Lives:   int(res.Get("lives").Int()),
		Level:   int(res.Get("level").Int()),
		Turn:    int(res.Get("turn").Int()),
	}
}
