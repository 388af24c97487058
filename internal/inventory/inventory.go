// Package inventory хранит экипировку героя, производные статы
// и очередь добычи, ожидающую решения игрока.
package inventory

import (
	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

// Multipliers - множители статов от класса и эволюции.
// Нулевое значение трактуется как 1 (множитель не задан).
type Multipliers struct {
	Attack  float64
	HP      float64
	Defense float64
	Speed   float64
}

// Inventory - экипировка и статы героя. Не потокобезопасен:
// им владеет горутина движка.
type Inventory struct {
	baseStats map[domain.StatType]float64

	equipped map[domain.Slot]*domain.Item

	// pending - предмет, ожидающий решения (надеть/продать).
	// lootQueue - FIFO добычи за pending.
	pending   *domain.Item
	lootQueue []domain.Item

	stats     map[domain.StatType]domain.Decimal
	currentHP domain.Decimal
}

// New создает инвентарь с базовыми статами и полным здоровьем.
func New(baseStats map[domain.StatType]float64) *Inventory {
	inv := &Inventory{
		baseStats: baseStats,
		equipped:  make(map[domain.Slot]*domain.Item),
		stats:     make(map[domain.StatType]domain.Decimal),
	}
	inv.Recalculate()
	inv.FullHeal()
	return inv
}

// --- СТАТЫ ---

// Stat возвращает производный стат героя.
func (inv *Inventory) Stat(t domain.StatType) domain.Decimal {
	return inv.stats[t]
}

// CurrentHP возвращает текущее здоровье.
func (inv *Inventory) CurrentHP() domain.Decimal {
	return inv.currentHP
}

// Recalculate пересчитывает статы: база + главные статы экипировки.
// Текущее HP урезается до нового максимума, но не восстанавливается.
func (inv *Inventory) Recalculate() {
	stats := make(map[domain.StatType]domain.Decimal, len(domain.StatTypes))
	for _, t := range domain.StatTypes {
		stats[t] = domain.NewDecimal(inv.baseStats[t])
	}

	for _, item := range inv.equipped {
		t := item.MainStat.Type
		stats[t] = stats[t].Add(item.MainStat.Value)
	}

	inv.stats = stats
	if inv.currentHP.Gt(stats[domain.StatHP]) {
		inv.currentHP = stats[domain.StatHP]
	}
}

// ApplyMultipliers умножает текущие статы. Вызывается движком после
// Recalculate с бонусами класса и эволюции. HP снова урезается.
func (inv *Inventory) ApplyMultipliers(m Multipliers) {
	apply := func(t domain.StatType, mult float64) {
		if mult > 0 {
			inv.stats[t] = inv.stats[t].MulFloat(mult)
		}
	}
	apply(domain.StatAttack, m.Attack)
	apply(domain.StatHP, m.HP)
	apply(domain.StatDefense, m.Defense)
	apply(domain.StatSpeed, m.Speed)

	if inv.currentHP.Gt(inv.stats[domain.StatHP]) {
		inv.currentHP = inv.stats[domain.StatHP]
	}
}

// TakeDamage уменьшает HP героя, не давая уйти ниже нуля.
func (inv *Inventory) TakeDamage(amount domain.Decimal) {
	next := inv.currentHP.Sub(amount)
	if next.Lt(domain.DecimalZero) {
		next = domain.DecimalZero
	}
	inv.currentHP = next
}

// IsDead сообщает, что герой на нуле HP.
func (inv *Inventory) IsDead() bool {
	return inv.currentHP.Lte(domain.DecimalZero)
}

// FullHeal восстанавливает HP до максимума.
func (inv *Inventory) FullHeal() {
	inv.currentHP = inv.stats[domain.StatHP]
}

// --- ЭКИПИРОВКА ---

// Equipped возвращает предмет в слоте (nil, если слот пуст).
func (inv *Inventory) Equipped(slot domain.Slot) *domain.Item {
	return inv.equipped[slot]
}

// EquippedAll возвращает всю экипировку по слотам.
func (inv *Inventory) EquippedAll() map[domain.Slot]*domain.Item {
	out := make(map[domain.Slot]*domain.Item, len(inv.equipped))
	for slot, item := range inv.equipped {
		out[slot] = item
	}
	return out
}

// Equip надевает предмет и возвращает вытесненный (nil, если слот
// был пуст). Статы пересчитываются сразу.
func (inv *Inventory) Equip(item domain.Item) *domain.Item {
	old := inv.equipped[item.Slot]
	inv.equipped[item.Slot] = &item
	inv.Recalculate()

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory",
		"item_id":   item.ID,
		"item_name": item.Name,
		"slot":      item.Slot,
	}).Debug("Item equipped.")

	return old
}

// IsBetter сообщает, сильнее ли предмет надетого в его слоте.
// Пустой слот всегда проигрывает.
func (inv *Inventory) IsBetter(item domain.Item) bool {
	current := inv.equipped[item.Slot]
	if current == nil {
		return true
	}
	return item.MainStat.Value.Gt(current.MainStat.Value)
}

// --- ОЧЕРЕДЬ ДОБЫЧИ ---

// Pending возвращает предмет, ожидающий решения (nil, если нет).
func (inv *Inventory) Pending() *domain.Item {
	return inv.pending
}

// LootQueue возвращает копию очереди добычи.
func (inv *Inventory) LootQueue() []domain.Item {
	return append([]domain.Item(nil), inv.lootQueue...)
}

// SetPending делает предмет ожидающим решения. Очередь сбрасывается.
func (inv *Inventory) SetPending(item domain.Item) {
	inv.pending = &item
	inv.lootQueue = nil
}

// EnqueueLoot добавляет предмет в хвост очереди. Если ожидающего
// предмета нет, добыча сразу становится им.
func (inv *Inventory) EnqueueLoot(item domain.Item) {
	if inv.pending == nil {
		inv.pending = &item
		return
	}
	inv.lootQueue = append(inv.lootQueue, item)
}

// AdvanceLootQueue продвигает голову очереди в ожидающий предмет.
// При пустой очереди ожидающий предмет просто очищается.
func (inv *Inventory) AdvanceLootQueue() {
	if len(inv.lootQueue) == 0 {
		inv.pending = nil
		return
	}
	head := inv.lootQueue[0]
	inv.pending = &head
	inv.lootQueue = inv.lootQueue[1:]
}

// TakePending снимает и возвращает ожидающий предмет, продвигая
// очередь. Возвращает nil, если решать нечего.
func (inv *Inventory) TakePending() *domain.Item {
	item := inv.pending
	if item == nil {
		return nil
	}
	inv.AdvanceLootQueue()
	return item
}

// --- СОХРАНЕНИЕ ---

// Snapshot - сериализуемое состояние инвентаря.
type Snapshot struct {
	Equipped  map[domain.Slot]*domain.Item `json:"equipped"`
	Pending   *domain.Item                 `json:"pending,omitempty"`
	LootQueue []domain.Item                `json:"lootQueue,omitempty"`
	CurrentHP domain.Decimal               `json:"currentHp"`
}

// Snapshot снимает состояние для сохранения.
func (inv *Inventory) Snapshot() Snapshot {
	return Snapshot{
		Equipped:  inv.EquippedAll(),
		Pending:   inv.pending,
		LootQueue: inv.LootQueue(),
		CurrentHP: inv.currentHP,
	}
}

// Restore восстанавливает экипировку и здоровье из сохранения.
func (inv *Inventory) Restore(s Snapshot) {
	inv.equipped = make(map[domain.Slot]*domain.Item, len(s.Equipped))
	for slot, item := range s.Equipped {
		if item != nil {
			inv.equipped[slot] = item
		}
	}
	inv.pending = s.Pending
	inv.lootQueue = append([]domain.Item(nil), s.LootQueue...)

	inv.Recalculate()
	inv.currentHP = s.CurrentHP.Max(domain.DecimalZero)
	if inv.currentHP.Gt(inv.stats[domain.StatHP]) {
		inv.currentHP = inv.stats[domain.StatHP]
	}
}
