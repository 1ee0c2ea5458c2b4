package inmemory

import (
	"sort"
	"sync"
)

type QuestStats struct {
	Succeeded uint64
	Failed    uint64
}

type Snapshot struct {
	PurchaseTotal  uint64
	PurchaseByItem map[string]uint64
	QuestTotal     uint64
	QuestSucceeded uint64
	QuestFailed    uint64
	QuestByLabel   map[string]QuestStats
}

// SuccessRate is the share of solved quests, 0 when none were attempted.
func (s Snapshot) SuccessRate() float64 {
	if s.QuestTotal == 0 {
		return 0
	}
	return float64(s.QuestSucceeded) / float64(s.QuestTotal)
}

func (s Snapshot) Labels() []string {
	out := make([]string, 0, len(s.QuestByLabel))
	for k := range s.QuestByLabel {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type Recorder struct {
	mu        sync.Mutex
	purchases map[string]uint64
	byLabel   map[string]QuestStats
}

func NewRecorder() *Recorder {
	return &Recorder{
		purchases: map[string]uint64{},
		byLabel:   map[string]QuestStats{},
	}
}

func (r *Recorder) RecordPurchase(itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases[itemID]++
}

func (r *Recorder) RecordQuest(label string, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.byLabel[label]
	if success {
		st.Succeeded++
	} else {
		st.Failed++
	}
	r.byLabel[label] = st
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		PurchaseByItem: make(map[string]uint64, len(r.purchases)),
		QuestByLabel:   make(map[string]QuestStats, len(r.byLabel)),
	}
	for k, v := range r.purchases {
		out.PurchaseByItem[k] = v
		out.PurchaseTotal += v
	}
	for k, v := range r.byLabel {
		out.QuestByLabel[k] = v
		out.QuestSucceeded += v.Succeeded
		out.QuestFailed += v.Failed
	}
	out.QuestTotal = out.QuestSucceeded + out.QuestFailed
	return out
}
