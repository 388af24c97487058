package activities

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
	"github.com/valentintorulya-hash/LoM/pkg/utils"
)

// Opponent - противник арены. Живет до следующего обновления списка.
type Opponent struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Power    int            `json:"power"`
	Rank     int            `json:"rank"`
	Gold     domain.Decimal `json:"gold"`
	Diamonds domain.Decimal `json:"diamonds"`
}

// Arena - ранг, очки и список противников.
type Arena struct {
	rng   *rand.Rand
	rules catalog.ArenaRules

	rank         int
	points       int
	dailyClaimed bool
	opponents    []Opponent
}

// NewArena создает арену на стартовом ранге со свежим списком
// противников.
func NewArena(rng *rand.Rand, rules catalog.ArenaRules) *Arena {
	a := &Arena{
		rng:   rng,
		rules: rules,
		rank:  rules.StartRank,
	}
	a.Refresh()
	return a
}

// Rank возвращает текущий ранг (меньше - лучше).
func (a *Arena) Rank() int { return a.rank }

// Points возвращает накопленные очки арены.
func (a *Arena) Points() int { return a.points }

// DailyClaimed сообщает, получена ли дневная награда.
func (a *Arena) DailyClaimed() bool { return a.dailyClaimed }

// Opponents возвращает текущий список противников.
func (a *Arena) Opponents() []Opponent {
	return append([]Opponent(nil), a.opponents...)
}

// Refresh генерирует новый список противников для текущего ранга.
// Ранг i-го противника чуть лучше текущего, награды растут с индексом,
// алмазы дает только первый.
func (a *Arena) Refresh() {
	opponents := make([]Opponent, 0, a.rules.OpponentCount)
	for i := 0; i < a.rules.OpponentCount; i++ {
		rank := a.rank - (i*7 + 3)
		if rank < 1 {
			rank = 1
		}

		diamonds := domain.DecimalZero
		if i == 0 {
			diamonds = domain.NewDecimal(1)
		}

		opponents = append(opponents, Opponent{
			ID:       utils.GenerateDeterministicID(a.rng, "arena-"),
			Name:     a.rules.Names[(a.rank+i)%len(a.rules.Names)],
			Power:    350 + i*120 + a.rng.Intn(140),
			Rank:     rank,
			Gold:     domain.NewDecimal(float64(200 + i*120)),
			Diamonds: diamonds,
		})
	}
	a.opponents = opponents
}

// Fight проводит бой с противником по id. Герой всегда побеждает:
// награды зачисляются, +10 очков, ранг улучшается на 2 (не выше 1),
// список противников обновляется.
func (a *Arena) Fight(id string, wallet Wallet) bool {
	var opponent *Opponent
	for i := range a.opponents {
		if a.opponents[i].ID == id {
			opponent = &a.opponents[i]
			break
		}
	}
	if opponent == nil {
		return false
	}

	wallet.Add(domain.CurrencyGold, opponent.Gold)
	wallet.Add(domain.CurrencyDiamonds, opponent.Diamonds)

	a.points += 10
	a.rank -= 2
	if a.rank < 1 {
		a.rank = 1
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "activities",
		"opponent":  opponent.Name,
		"rank":      a.rank,
		"points":    a.points,
	}).Info("Arena fight won.")

	a.Refresh()
	return true
}

// ClaimDaily выдает дневную награду арены. Повторное получение - отказ.
func (a *Arena) ClaimDaily(wallet Wallet) bool {
	if a.dailyClaimed {
		return false
	}
	wallet.Add(domain.CurrencyGold, domain.NewDecimal(a.rules.DailyGold))
	wallet.Add(domain.CurrencyDiamonds, domain.NewDecimal(a.rules.DailyDiamonds))
	a.dailyClaimed = true
	return true
}

// --- СОХРАНЕНИЕ ---

// ArenaSnapshot - сериализуемое состояние арены.
// Противники не сохраняются: после загрузки список генерируется заново.
type ArenaSnapshot struct {
	Rank         int  `json:"rank"`
	Points       int  `json:"points"`
	DailyClaimed bool `json:"dailyClaimed"`
}

// Snapshot снимает состояние для сохранения.
func (a *Arena) Snapshot() ArenaSnapshot {
	return ArenaSnapshot{
		Rank:         a.rank,
		Points:       a.points,
		DailyClaimed: a.dailyClaimed,
	}
}

// Restore восстанавливает арену и обновляет противников.
func (a *Arena) Restore(s ArenaSnapshot) {
	a.rank = s.Rank
	if a.rank < 1 {
		a.rank = 1
	}
	a.points = s.Points
	if a.points < 0 {
		a.points = 0
	}
	a.dailyClaimed = s.DailyClaimed
	a.Refresh()
}
