package progression

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

// Минимальный уровень героя для первого выбора класса.
const classUnlockLevel = 5

// Стоимость смены уже выбранного класса.
var classSwitchCost = domain.NewDecimal(100)

// Classes - выбор класса, опыт классов и кулдаун особого навыка.
type Classes struct {
	defs []catalog.Class

	selectedID string
	levels     map[string]int
	exp        map[string]domain.Decimal

	// specialCooldowns: id навыка -> момент готовности.
	specialCooldowns map[string]time.Time
}

// NewClasses создает состояние классов: ничего не выбрано,
// у каждого класса первый уровень.
func NewClasses(defs []catalog.Class) *Classes {
	levels := make(map[string]int, len(defs))
	exp := make(map[string]domain.Decimal, len(defs))
	for _, c := range defs {
		levels[c.ID] = 1
		exp[c.ID] = domain.DecimalZero
	}
	return &Classes{
		defs:             defs,
		levels:           levels,
		exp:              exp,
		specialCooldowns: make(map[string]time.Time),
	}
}

func (c *Classes) find(id string) *catalog.Class {
	for i := range c.defs {
		if c.defs[i].ID == id {
			return &c.defs[i]
		}
	}
	return nil
}

// Selected возвращает выбранный класс (nil, если класс не выбран).
func (c *Classes) Selected() *catalog.Class {
	if c.selectedID == "" {
		return nil
	}
	return c.find(c.selectedID)
}

// Select выбирает класс. Первый выбор требует уровня героя 5+,
// смена класса стоит 100 алмазов. Повторный выбор того же класса -
// бесплатный успех.
func (c *Classes) Select(id string, playerLevel int, wallet Wallet) bool {
	class := c.find(id)
	if class == nil {
		return false
	}

	if c.selectedID == "" && playerLevel < classUnlockLevel {
		return false
	}

	if c.selectedID != "" && c.selectedID != id {
		if !wallet.Spend(domain.CurrencyDiamonds, classSwitchCost) {
			return false
		}
	}

	c.selectedID = id
	logger.Log.WithFields(logrus.Fields{
		"component": "progression",
		"class":     id,
	}).Info("Class selected.")
	return true
}

// Multipliers возвращает множители статов выбранного класса
// (пустая карта, если класс не выбран).
func (c *Classes) Multipliers() map[domain.StatType]float64 {
	class := c.Selected()
	if class == nil {
		return nil
	}
	return class.Stats
}

// Level возвращает уровень выбранного класса (0 без класса).
func (c *Classes) Level() int {
	if c.selectedID == "" {
		return 0
	}
	return c.levels[c.selectedID]
}

// Exp возвращает опыт выбранного класса.
func (c *Classes) Exp() domain.Decimal {
	if c.selectedID == "" {
		return domain.DecimalZero
	}
	return c.exp[c.selectedID]
}

// ExpToNext возвращает порог опыта до следующего уровня класса.
func (c *Classes) ExpToNext() domain.Decimal {
	level := c.Level()
	if level == 0 {
		return domain.DecimalZero
	}
	return classExpToNext(level)
}

func classExpToNext(level int) domain.Decimal {
	return domain.NewDecimal(1000).Mul(domain.PowFloat(1.5, float64(level-1)))
}

// AddExp начисляет опыт выбранному классу. Без класса - no-op.
func (c *Classes) AddExp(amount domain.Decimal) []domain.Event {
	if c.selectedID == "" || amount.Sign() <= 0 {
		return nil
	}

	exp := c.exp[c.selectedID].Add(amount)
	level := c.levels[c.selectedID]

	var events []domain.Event
	for exp.Gte(classExpToNext(level)) {
		exp = exp.Sub(classExpToNext(level))
		level++

		events = append(events, domain.Event{
			Kind:    domain.EventClassLevelUp,
			Title:   "Class Level Up!",
			Message: fmt.Sprintf("%s is now level %d.", c.selectedID, level),
		})
	}

	c.exp[c.selectedID] = exp
	c.levels[c.selectedID] = level
	return events
}

// SpecialReady сообщает, готов ли особый навык класса.
func (c *Classes) SpecialReady(now time.Time) bool {
	class := c.Selected()
	if class == nil {
		return false
	}
	readyAt, ok := c.specialCooldowns[class.Special.ID]
	if !ok {
		return true
	}
	return !now.Before(readyAt)
}

// UseSpecial активирует особый навык класса, ставя его на кулдаун.
// Возвращает определение навыка для расчета урона.
func (c *Classes) UseSpecial(now time.Time) (*catalog.ClassSkill, bool) {
	class := c.Selected()
	if class == nil || !c.SpecialReady(now) {
		return nil, false
	}
	c.specialCooldowns[class.Special.ID] = now.Add(class.Special.Cooldown)
	return &class.Special, true
}

// --- СОХРАНЕНИЕ ---

// ClassSnapshot - сериализуемое состояние классов.
type ClassSnapshot struct {
	SelectedID       string                    `json:"selectedId,omitempty"`
	Levels           map[string]int            `json:"levels"`
	Exp              map[string]domain.Decimal `json:"exp"`
	SpecialCooldowns map[string]time.Time      `json:"specialCooldowns,omitempty"`
}

// Snapshot снимает состояние для сохранения.
func (c *Classes) Snapshot() ClassSnapshot {
	levels := make(map[string]int, len(c.levels))
	for k, v := range c.levels {
		levels[k] = v
	}
	exp := make(map[string]domain.Decimal, len(c.exp))
	for k, v := range c.exp {
		exp[k] = v
	}
	cds := make(map[string]time.Time, len(c.specialCooldowns))
	for k, v := range c.specialCooldowns {
		cds[k] = v
	}
	return ClassSnapshot{
		SelectedID:       c.selectedID,
		Levels:           levels,
		Exp:              exp,
		SpecialCooldowns: cds,
	}
}

// Restore восстанавливает состояние. Неизвестный выбранный класс
// сбрасывается, отсутствующие уровни дополняются единицей.
func (c *Classes) Restore(s ClassSnapshot) {
	c.selectedID = s.SelectedID
	if c.selectedID != "" && c.find(c.selectedID) == nil {
		c.selectedID = ""
	}

	for _, def := range c.defs {
		if lvl, ok := s.Levels[def.ID]; ok && lvl >= 1 {
			c.levels[def.ID] = lvl
		} else {
			c.levels[def.ID] = 1
		}
		if exp, ok := s.Exp[def.ID]; ok {
			c.exp[def.ID] = exp.Max(domain.DecimalZero)
		} else {
			c.exp[def.ID] = domain.DecimalZero
		}
	}

	c.specialCooldowns = make(map[string]time.Time, len(s.SpecialCooldowns))
	for k, v := range s.SpecialCooldowns {
		c.specialCooldowns[k] = v
	}
}
