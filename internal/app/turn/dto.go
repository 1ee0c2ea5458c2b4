package turn

import (
	"mugloarbot/internal/app/purchase"
	"mugloarbot/internal/domain/quest"
	"mugloarbot/internal/domain/session"
	"mugloarbot/internal/domain/shop"
	"mugloarbot/internal/domain/strategy"
)

type Request struct {
	State session.State
	Shop  shop.Catalog
}

type Response struct {
	State     session.State
	Purchases purchase.Response
	Quests    quest.Catalog
	Selection strategy.Selection
	Outcome   session.QuestOutcome
}
