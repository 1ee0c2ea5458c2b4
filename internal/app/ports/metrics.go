package ports

type BotMetrics interface {
	RecordPurchase(itemID string)
	RecordQuest(label string, success bool)
}
