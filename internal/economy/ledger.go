// Package economy ведет учет валют, прогресса лампы и опыта героя.
// Все суммы неотрицательны; списание - операция "все или ничего".
package economy

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

// Ledger - единственный владелец балансов.
// Подсистемы никогда не трогают валюты напрямую, только через него.
type Ledger struct {
	lamps    domain.Decimal
	gold     domain.Decimal
	diamonds domain.Decimal

	lampLevel    int
	lampProgress domain.Decimal

	playerLevel int
	playerExp   domain.Decimal

	lampsPerMinute float64

	lampAutoMode  bool
	lampAutoBatch int // 1 или 10
}

// NewLedger создает леджер новой партии.
func NewLedger(lampsPerMinute float64) *Ledger {
	return &Ledger{
		lampLevel:      1,
		playerLevel:    1,
		lampsPerMinute: lampsPerMinute,
		lampAutoBatch:  1,
	}
}

// --- ВАЛЮТЫ ---

// Balance возвращает текущий баланс валюты.
func (l *Ledger) Balance(c domain.Currency) domain.Decimal {
	switch c {
	case domain.CurrencyLamps:
		return l.lamps
	case domain.CurrencyGold:
		return l.gold
	case domain.CurrencyDiamonds:
		return l.diamonds
	}
	return domain.DecimalZero
}

// Add зачисляет сумму. Отрицательные и нулевые суммы игнорируются.
func (l *Ledger) Add(c domain.Currency, amount domain.Decimal) {
	if amount.Sign() <= 0 {
		return
	}

	switch c {
	case domain.CurrencyLamps:
		l.lamps = l.lamps.Add(amount)
	case domain.CurrencyGold:
		l.gold = l.gold.Add(amount)
	case domain.CurrencyDiamonds:
		l.diamonds = l.diamonds.Add(amount)
	}
}

// CanAfford проверяет, хватает ли баланса на сумму.
func (l *Ledger) CanAfford(c domain.Currency, amount domain.Decimal) bool {
	return l.Balance(c).Gte(amount)
}

// Spend списывает сумму целиком либо не списывает ничего.
// Возвращает false при нехватке средств.
func (l *Ledger) Spend(c domain.Currency, amount domain.Decimal) bool {
	if amount.Sign() < 0 {
		return false
	}
	if !l.CanAfford(c, amount) {
		logger.Log.WithFields(logrus.Fields{
			"component": "economy",
			"currency":  c,
			"amount":    amount.String(),
			"balance":   l.Balance(c).String(),
		}).Debug("Spend rejected: insufficient funds.")
		return false
	}

	switch c {
	case domain.CurrencyLamps:
		l.lamps = l.lamps.Sub(amount)
	case domain.CurrencyGold:
		l.gold = l.gold.Sub(amount)
	case domain.CurrencyDiamonds:
		l.diamonds = l.diamonds.Sub(amount)
	}
	return true
}

// --- ЛАМПА ---

// LampLevel возвращает уровень лампы.
func (l *Ledger) LampLevel() int { return l.lampLevel }

// LampProgress возвращает накопленный прогресс лампы.
func (l *Ledger) LampProgress() domain.Decimal { return l.lampProgress }

// LampToNext возвращает порог прогресса до следующего уровня лампы.
func (l *Ledger) LampToNext() domain.Decimal {
	return lampToNext(l.lampLevel)
}

func lampToNext(level int) domain.Decimal {
	return domain.NewDecimal(10).Mul(domain.PowFloat(1.2, float64(level-1))).Floor()
}

// AddLampProgress добавляет прогресс лампе. Избыток переносится
// на следующий уровень, уровней за один вызов может быть несколько.
func (l *Ledger) AddLampProgress(amount domain.Decimal) []domain.Event {
	if amount.Sign() <= 0 {
		return nil
	}

	l.lampProgress = l.lampProgress.Add(amount)

	var events []domain.Event
	for l.lampProgress.Gte(l.LampToNext()) {
		l.lampProgress = l.lampProgress.Sub(l.LampToNext())
		l.lampLevel++

		logger.Log.WithFields(logrus.Fields{
			"component":  "economy",
			"lamp_level": l.lampLevel,
		}).Info("Lamp leveled up.")

		events = append(events, domain.Event{
			Kind:    domain.EventLampLevelUp,
			Title:   "Lamp Level Up!",
			Message: fmt.Sprintf("Your lamp reached level %d.", l.lampLevel),
		})
	}
	return events
}

// --- ОПЫТ ГЕРОЯ ---

// PlayerLevel возвращает уровень героя.
func (l *Ledger) PlayerLevel() int { return l.playerLevel }

// PlayerExp возвращает накопленный опыт текущего уровня.
func (l *Ledger) PlayerExp() domain.Decimal { return l.playerExp }

// ExpToNext возвращает порог опыта до следующего уровня героя.
func (l *Ledger) ExpToNext() domain.Decimal {
	return expToNext(l.playerLevel)
}

func expToNext(level int) domain.Decimal {
	return domain.NewDecimal(100).Mul(domain.PowFloat(1.5, float64(level-1))).Floor()
}

// AddExp добавляет опыт героя. Каждый взятый уровень приносит
// level*10 ламп (уже нового уровня).
func (l *Ledger) AddExp(amount domain.Decimal) []domain.Event {
	if amount.Sign() <= 0 {
		return nil
	}

	l.playerExp = l.playerExp.Add(amount)

	var events []domain.Event
	for l.playerExp.Gte(l.ExpToNext()) {
		l.playerExp = l.playerExp.Sub(l.ExpToNext())
		l.playerLevel++

		reward := domain.NewDecimalInt(int64(l.playerLevel * 10))
		l.Add(domain.CurrencyLamps, reward)

		logger.Log.WithFields(logrus.Fields{
			"component":    "economy",
			"player_level": l.playerLevel,
			"lamp_reward":  reward.String(),
		}).Info("Player leveled up.")

		events = append(events, domain.Event{
			Kind:    domain.EventLevelUp,
			Title:   "Level Up!",
			Message: fmt.Sprintf("You reached level %d and received %s lamps.", l.playerLevel, reward.Abbrev()),
		})
	}
	return events
}

// --- ПАССИВНЫЙ ДОХОД ---

// LampsPerMinute возвращает базовую скорость накопления ламп.
func (l *Ledger) LampsPerMinute() float64 { return l.lampsPerMinute }

// GenerateIdleLamps начисляет лампы за прошедший отрезок времени.
// rate - эффективная скорость в лампах/минуту (база + бонусы питомцев).
func (l *Ledger) GenerateIdleLamps(rate, deltaSeconds float64) {
	if rate <= 0 || deltaSeconds <= 0 {
		return
	}
	l.lamps = l.lamps.Add(domain.NewDecimal(rate / 60 * deltaSeconds))
}

// --- АВТОРЕЖИМ ЛАМПЫ ---

// LampAutoMode возвращает состояние авторежима призыва.
func (l *Ledger) LampAutoMode() bool { return l.lampAutoMode }

// SetLampAutoMode включает или выключает авторежим.
func (l *Ledger) SetLampAutoMode(on bool) { l.lampAutoMode = on }

// LampAutoBatch возвращает размер пакета призыва (1 или 10).
func (l *Ledger) LampAutoBatch() int { return l.lampAutoBatch }

// SetLampAutoBatch задает размер пакета. Допустимы только 1 и 10.
func (l *Ledger) SetLampAutoBatch(n int) bool {
	if n != 1 && n != 10 {
		return false
	}
	l.lampAutoBatch = n
	return true
}

// --- СОХРАНЕНИЕ ---

// Snapshot - сериализуемое состояние леджера.
type Snapshot struct {
	Lamps    domain.Decimal `json:"lamps"`
	Gold     domain.Decimal `json:"gold"`
	Diamonds domain.Decimal `json:"diamonds"`

	LampLevel    int            `json:"lampLevel"`
	LampProgress domain.Decimal `json:"lampProgress"`

	PlayerLevel int            `json:"playerLevel"`
	PlayerExp   domain.Decimal `json:"playerExp"`

	LampAutoMode  bool `json:"lampAutoMode"`
	LampAutoBatch int  `json:"lampAutoBatch"`
}

// Snapshot снимает состояние для сохранения.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Lamps:         l.lamps,
		Gold:          l.gold,
		Diamonds:      l.diamonds,
		LampLevel:     l.lampLevel,
		LampProgress:  l.lampProgress,
		PlayerLevel:   l.playerLevel,
		PlayerExp:     l.playerExp,
		LampAutoMode:  l.lampAutoMode,
		LampAutoBatch: l.lampAutoBatch,
	}
}

// Restore восстанавливает состояние из сохранения.
// Уровни ниже 1 и неизвестный размер пакета приводятся к дефолтам.
func (l *Ledger) Restore(s Snapshot) {
	l.lamps = s.Lamps.Max(domain.DecimalZero)
	l.gold = s.Gold.Max(domain.DecimalZero)
	l.diamonds = s.Diamonds.Max(domain.DecimalZero)

	l.lampLevel = s.LampLevel
	if l.lampLevel < 1 {
		l.lampLevel = 1
	}
	l.lampProgress = s.LampProgress.Max(domain.DecimalZero)

	l.playerLevel = s.PlayerLevel
	if l.playerLevel < 1 {
		l.playerLevel = 1
	}
	l.playerExp = s.PlayerExp.Max(domain.DecimalZero)

	l.lampAutoMode = s.LampAutoMode
	l.lampAutoBatch = s.LampAutoBatch
	if l.lampAutoBatch != 10 {
		l.lampAutoBatch = 1
	}
}
