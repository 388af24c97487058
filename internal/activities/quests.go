package activities

import (
	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
)

// QuestState - ежедневный квест с прогрессом игрока.
type QuestState struct {
	catalog.Quest
	Claimed bool `json:"claimed"`
}

// Quests - набор ежедневных квестов.
type Quests struct {
	quests []QuestState
}

// NewQuests создает квесты из каталога со стартовым прогрессом.
func NewQuests(defs []catalog.Quest) *Quests {
	quests := make([]QuestState, len(defs))
	for i, q := range defs {
		quests[i] = QuestState{Quest: q}
	}
	return &Quests{quests: quests}
}

// All возвращает все квесты.
func (q *Quests) All() []QuestState {
	return append([]QuestState(nil), q.quests...)
}

func (q *Quests) find(id string) *QuestState {
	for i := range q.quests {
		if q.quests[i].ID == id {
			return &q.quests[i]
		}
	}
	return nil
}

// SetProgress задает прогресс квеста.
func (q *Quests) SetProgress(id string, progress int) bool {
	quest := q.find(id)
	if quest == nil {
		return false
	}
	quest.Progress = progress
	return true
}

// AddProgress увеличивает прогресс квеста на единицу.
func (q *Quests) AddProgress(id string) {
	if quest := q.find(id); quest != nil {
		quest.Progress++
	}
}

// Claim выдает награду выполненного квеста. Требует достигнутой цели
// и еще не полученной награды.
func (q *Quests) Claim(id string, wallet Wallet) bool {
	quest := q.find(id)
	if quest == nil || quest.Claimed || quest.Progress < quest.Goal {
		return false
	}

	wallet.Add(domain.CurrencyGold, quest.Rewards.Gold)
	wallet.Add(domain.CurrencyLamps, quest.Rewards.Lamps)
	wallet.Add(domain.CurrencyDiamonds, quest.Rewards.Diamonds)
	quest.Claimed = true
	return true
}

// ClaimAll выдает награды всех выполненных квестов.
// Возвращает число полученных наград.
func (q *Quests) ClaimAll(wallet Wallet) int {
	claimed := 0
	for i := range q.quests {
		if q.Claim(q.quests[i].ID, wallet) {
			claimed++
		}
	}
	return claimed
}

// --- СОХРАНЕНИЕ ---

// QuestProgress - сохраняемая часть квеста.
type QuestProgress struct {
	Progress int  `json:"progress"`
	Claimed  bool `json:"claimed"`
}

// QuestSnapshot - сериализуемое состояние квестов.
type QuestSnapshot struct {
	Quests map[string]QuestProgress `json:"quests"`
}

// Snapshot снимает состояние для сохранения.
func (q *Quests) Snapshot() QuestSnapshot {
	out := make(map[string]QuestProgress, len(q.quests))
	for _, quest := range q.quests {
		out[quest.ID] = QuestProgress{Progress: quest.Progress, Claimed: quest.Claimed}
	}
	return QuestSnapshot{Quests: out}
}

// Restore накладывает сохраненный прогресс на каталожные квесты.
func (q *Quests) Restore(s QuestSnapshot) {
	for i := range q.quests {
		if saved, ok := s.Quests[q.quests[i].ID]; ok {
			q.quests[i].Progress = saved.Progress
			q.quests[i].Claimed = saved.Claimed
		}
	}
}
