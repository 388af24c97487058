package domain

// ItemStat - главная характеристика предмета.
type ItemStat struct {
	Type  StatType `json:"type"`
	Value Decimal  `json:"value"`
}

// Item - неизменяемый предмет экипировки. Создается генератором,
// после создания не мутирует; при продаже/замене просто выбрасывается.
type Item struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
	Slot   Slot   `json:"slot"`
	Level  int    `json:"level"`

	MainStat ItemStat `json:"mainStat"`

	// SubStats пока не генерируются.
	// TODO: добавить генерацию сабстатов
	SubStats []ItemStat `json:"subStats"`

	SellPrice Decimal `json:"sellPrice"`
	ExpValue  Decimal `json:"expValue"`
}

// Enemy - противник текущей стадии. Живет от спавна до смерти,
// на следующей стадии создается заново.
type Enemy struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Level     int     `json:"level"`
	MaxHP     Decimal `json:"maxHp"`
	CurrentHP Decimal `json:"currentHp"`
	Attack    Decimal `json:"attack"`
	Defense   Decimal `json:"defense"`

	Rewards EnemyRewards `json:"rewards"`
}

// EnemyRewards - награда за убийство.
type EnemyRewards struct {
	Gold Decimal `json:"gold"`
}

// IsDead сообщает, что HP противника на нуле.
func (e *Enemy) IsDead() bool {
	return e.CurrentHP.Lte(DecimalZero)
}

// TakeDamage наносит урон противнику. HP не уходит ниже нуля.
// Возвращает true, если противник погиб от этого удара.
func (e *Enemy) TakeDamage(amount Decimal) bool {
	if e.IsDead() {
		return false
	}

	next := e.CurrentHP.Sub(amount)
	if next.Lt(DecimalZero) {
		next = DecimalZero
	}
	e.CurrentHP = next

	return e.IsDead()
}

// HealFull восстанавливает HP противника до максимума.
func (e *Enemy) HealFull() {
	e.CurrentHP = e.MaxHP
}
