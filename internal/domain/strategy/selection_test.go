package strategy

import (
	"errors"
	"testing"

	"mugloarbot/internal/domain/quest"
)

func TestSelectQuest_PrefersEasyTier(t *testing.T) {
	c := quest.NewCatalog([]quest.Quest{
		{ID: "d", Description: "Escort a merchant", Reward: 200, Probability: "Gamble"},
		{ID: "e1", Description: "Help a farmer", Reward: 15, Probability: "Piece of cake"},
		{ID: "e2", Description: "Deliver a letter", Reward: 30, Probability: "Sure thing"},
	})
	sel, err := DefaultPolicy().SelectQuest(c)
	if err != nil {
		t.Fatalf("SelectQuest error: %v", err)
	}
	if sel.Quest.ID != "e2" || sel.Tier != SelectedEasy {
		t.Fatalf("expected e2 from easy tier, got %s from %s", sel.Quest.ID, sel.Tier)
	}
}

func TestSelectQuest_FallsToDifficultWhenEasyIsForbidden(t *testing.T) {
	c := quest.NewCatalog([]quest.Quest{
		{ID: "e", Description: "Steal a cow from the baron", Reward: 60, Probability: "Piece of cake"},
		{ID: "d", Description: "Escort Evan to the sea", Reward: 80, Probability: "Gamble"},
	})
	sel, err := DefaultPolicy().SelectQuest(c)
	if err != nil {
		t.Fatalf("SelectQuest error: %v", err)
	}
	if sel.Quest.ID != "d" || sel.Tier != SelectedDifficult {
		t.Fatalf("expected d from difficult tier, got %s from %s", sel.Quest.ID, sel.Tier)
	}
}

func TestSelectQuest_FallbackMayPickForbidden(t *testing.T) {
	c := quest.NewCatalog([]quest.Quest{
		{ID: "s", Description: "steal the crown jewels", Reward: 70, Probability: "Sure thing"},
		{ID: "x", Description: "Fight a wyvern", Reward: 40, Probability: "Impossible"},
		{ID: "enc", Description: "zzz", Reward: 900, Probability: "Sure thing", Encrypted: true},
	})
	sel, err := DefaultPolicy().SelectQuest(c)
	if err != nil {
		t.Fatalf("SelectQuest error: %v", err)
	}
	if sel.Quest.ID != "s" || sel.Tier != SelectedFallback {
		t.Fatalf("expected s from fallback, got %s from %s", sel.Quest.ID, sel.Tier)
	}
}

func TestSelectQuest_TieKeepsCatalogOrder(t *testing.T) {
	c := quest.NewCatalog([]quest.Quest{
		{ID: "second-id", Description: "a", Reward: 50, Probability: "Walk in the park"},
		{ID: "first-id", Description: "b", Reward: 50, Probability: "Walk in the park"},
	})
	for i := 0; i < 5; i++ {
		sel, err := DefaultPolicy().SelectQuest(c)
		if err != nil {
			t.Fatalf("SelectQuest error: %v", err)
		}
		if sel.Quest.ID != "second-id" {
			t.Fatalf("expected first listed quest, got %s", sel.Quest.ID)
		}
	}
}

func TestSelectQuest_EmptyCatalog(t *testing.T) {
	if _, err := DefaultPolicy().SelectQuest(quest.NewCatalog(nil)); !errors.Is(err, quest.ErrNoQuestAvailable) {
		t.Fatalf("expected ErrNoQuestAvailable, got %v", err)
	}
}
