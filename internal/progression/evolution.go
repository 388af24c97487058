package progression

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

// Evolution - позиция героя в цепочке эволюций.
type Evolution struct {
	stages []catalog.EvolutionStage

	index   int
	history []string
}

// NewEvolution создает состояние на первой (стартовой) ступени.
func NewEvolution(stages []catalog.EvolutionStage) *Evolution {
	e := &Evolution{stages: stages}
	if len(stages) > 0 {
		e.history = []string{stages[0].ID}
	}
	return e
}

// Current возвращает текущую ступень.
func (e *Evolution) Current() catalog.EvolutionStage {
	return e.stages[e.index]
}

// Next возвращает следующую ступень (nil на максимуме).
func (e *Evolution) Next() *catalog.EvolutionStage {
	if e.index+1 >= len(e.stages) {
		return nil
	}
	return &e.stages[e.index+1]
}

// IsMax сообщает, достигнута ли последняя ступень.
func (e *Evolution) IsMax() bool {
	return e.index+1 >= len(e.stages)
}

// History возвращает пройденные ступени по порядку.
func (e *Evolution) History() []string {
	return append([]string(nil), e.history...)
}

// CanEvolve проверяет требования следующей ступени: уровень героя,
// стадию боя и оба баланса разом. Частичной оплаты не бывает.
func (e *Evolution) CanEvolve(playerLevel, combatStage int, wallet Wallet) bool {
	next := e.Next()
	if next == nil {
		return false
	}
	if playerLevel < next.ReqLevel || combatStage < next.ReqStage {
		return false
	}
	if !wallet.CanAfford(domain.CurrencyGold, next.CostGold) {
		return false
	}
	if !wallet.CanAfford(domain.CurrencyDiamonds, next.CostDiamonds) {
		return false
	}
	return true
}

// Evolve переводит героя на следующую ступень, списывая обе валюты.
// Проверка балансов повторяется перед списанием: либо оплачено все,
// либо ничего.
func (e *Evolution) Evolve(playerLevel, combatStage int, wallet Wallet) ([]domain.Event, bool) {
	if !e.CanEvolve(playerLevel, combatStage, wallet) {
		return nil, false
	}
	next := e.Next()

	if !wallet.Spend(domain.CurrencyGold, next.CostGold) {
		return nil, false
	}
	if !wallet.Spend(domain.CurrencyDiamonds, next.CostDiamonds) {
		// Недостижимо после CanEvolve, но оставляем защиту от
		// рассинхронизации кошелька.
		return nil, false
	}

	e.index++
	e.history = append(e.history, next.ID)

	logger.Log.WithFields(logrus.Fields{
		"component": "progression",
		"evolution": next.ID,
	}).Info("Hero evolved.")

	return []domain.Event{{
		Kind:    domain.EventEvolved,
		Title:   "Evolution!",
		Message: fmt.Sprintf("You evolved into %s!", next.Name),
	}}, true
}

// Bonuses возвращает множители текущей ступени.
func (e *Evolution) Bonuses() map[string]float64 {
	return e.Current().Bonuses
}

// LampsMultiplier возвращает множитель наград лампами
// (1, если ступень его не задает).
func (e *Evolution) LampsMultiplier() float64 {
	if m, ok := e.Current().Bonuses["lamps"]; ok && m > 0 {
		return m
	}
	return 1
}

// --- СОХРАНЕНИЕ ---

// EvolutionSnapshot - сериализуемое состояние эволюции.
type EvolutionSnapshot struct {
	StageID string   `json:"stageId"`
	History []string `json:"history,omitempty"`
}

// Snapshot снимает состояние для сохранения.
func (e *Evolution) Snapshot() EvolutionSnapshot {
	return EvolutionSnapshot{
		StageID: e.Current().ID,
		History: e.History(),
	}
}

// Restore восстанавливает ступень по id. Неизвестный id
// откатывает на стартовую ступень.
func (e *Evolution) Restore(s EvolutionSnapshot) {
	e.index = 0
	for i := range e.stages {
		if e.stages[i].ID == s.StageID {
			e.index = i
			break
		}
	}

	e.history = append([]string(nil), s.History...)
	if len(e.history) == 0 && len(e.stages) > 0 {
		e.history = []string{e.stages[0].ID}
	}
}
