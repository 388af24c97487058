package activities

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

// AFK - учет офлайн-времени и офлайн-наград.
type AFK struct {
	rules catalog.AFKRules

	lastOnlineAt      time.Time
	maxOfflineMinutes int
}

// NewAFK создает состояние офлайн-наград с текущим моментом как
// последним визитом.
func NewAFK(rules catalog.AFKRules, now time.Time) *AFK {
	return &AFK{
		rules:             rules,
		lastOnlineAt:      now,
		maxOfflineMinutes: rules.MaxOfflineMinutes,
	}
}

// LastOnlineAt возвращает момент последней активности.
func (a *AFK) LastOnlineAt() time.Time { return a.lastOnlineAt }

// MaxOfflineMinutes возвращает потолок учитываемого офлайна.
func (a *AFK) MaxOfflineMinutes() int { return a.maxOfflineMinutes }

// Touch обновляет момент последней активности. Вызывается
// периодическим тиком и при остановке.
func (a *AFK) Touch(now time.Time) {
	a.lastOnlineAt = now
}

// Rewards - рассчитанные офлайн-награды.
type Rewards struct {
	Gold    domain.Decimal
	Lamps   domain.Decimal
	Minutes int
}

// Calculate считает награды за офлайн: золото по базовой ставке с
// бонусом питомцев, лампы по текущей скорости с бонусом эволюции.
// Офлайн сверх потолка не учитывается.
func (a *AFK) Calculate(now time.Time, lampsPerMinute, goldBonus, lampBonus float64) Rewards {
	minutes := int(now.Sub(a.lastOnlineAt).Minutes())
	if minutes > a.maxOfflineMinutes {
		minutes = a.maxOfflineMinutes
	}
	if minutes <= 0 {
		return Rewards{}
	}
	if lampBonus <= 0 {
		lampBonus = 1
	}

	gold := domain.NewDecimal(a.rules.GoldPerMinute).
		MulFloat(float64(minutes)).
		MulFloat(1 + goldBonus)

	lamps := domain.NewDecimal(lampsPerMinute).
		DivFloat(60).
		MulFloat(float64(minutes)).
		MulFloat(lampBonus)

	return Rewards{Gold: gold, Lamps: lamps, Minutes: minutes}
}

// Claim зачисляет офлайн-награды и сбрасывает отсчет.
// Отказ, если офлайн короче порога из правил.
func (a *AFK) Claim(now time.Time, lampsPerMinute, goldBonus, lampBonus float64, wallet Wallet) ([]domain.Event, bool) {
	rewards := a.Calculate(now, lampsPerMinute, goldBonus, lampBonus)
	threshold := a.rules.ThresholdMinutes
	if threshold < 1 {
		threshold = 1
	}
	if rewards.Minutes < threshold {
		return nil, false
	}

	wallet.Add(domain.CurrencyGold, rewards.Gold)
	wallet.Add(domain.CurrencyLamps, rewards.Lamps)
	a.lastOnlineAt = now

	logger.Log.WithFields(logrus.Fields{
		"component": "activities",
		"minutes":   rewards.Minutes,
		"gold":      rewards.Gold.String(),
		"lamps":     rewards.Lamps.String(),
	}).Info("AFK rewards claimed.")

	return []domain.Event{{
		Kind:    domain.EventAFK,
		Title:   "Welcome Back!",
		Message: fmt.Sprintf("While away for %s: +%s gold, +%s lamps.", formatMinutes(rewards.Minutes), rewards.Gold.Abbrev(), rewards.Lamps.Abbrev()),
	}}, true
}

func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// ExtendMax продлевает потолок офлайна за алмазы.
func (a *AFK) ExtendMax(minutes int, diamondCost domain.Decimal, wallet Wallet) bool {
	if minutes <= 0 {
		return false
	}
	if !wallet.Spend(domain.CurrencyDiamonds, diamondCost) {
		return false
	}
	a.maxOfflineMinutes += minutes
	return true
}

// --- СОХРАНЕНИЕ ---

// AFKSnapshot - сериализуемое состояние офлайн-учета.
type AFKSnapshot struct {
	LastOnlineAt      time.Time `json:"lastOnlineAt"`
	MaxOfflineMinutes int       `json:"maxOfflineMinutes"`
}

// Snapshot снимает состояние для сохранения.
func (a *AFK) Snapshot() AFKSnapshot {
	return AFKSnapshot{
		LastOnlineAt:      a.lastOnlineAt,
		MaxOfflineMinutes: a.maxOfflineMinutes,
	}
}

// Restore восстанавливает состояние. Потолок не может опуститься
// ниже каталожного.
func (a *AFK) Restore(s AFKSnapshot) {
	if !s.LastOnlineAt.IsZero() {
		a.lastOnlineAt = s.LastOnlineAt
	}
	a.maxOfflineMinutes = s.MaxOfflineMinutes
	if a.maxOfflineMinutes < a.rules.MaxOfflineMinutes {
		a.maxOfflineMinutes = a.rules.MaxOfflineMinutes
	}
}
