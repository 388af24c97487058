package handlers

import (
	"fmt"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/internal/inventory"
)

// Идентификаторы навыков с особой семантикой.
const (
	skillIDRage = "rage"
	skillIDHeal = "heal"
)

// RecalculateStats пересобирает характеристики героя: база + экипировка,
// затем множители класса, эволюции и питомцев. Вызывается после любой
// мутации, влияющей на статы.
func RecalculateStats(ctx Context) {
	ctx.Inventory.Recalculate()

	m := inventory.Multipliers{Attack: 1, HP: 1, Defense: 1, Speed: 1}

	for stat, mult := range ctx.Classes.Multipliers() {
		switch stat {
		case domain.StatAttack:
			m.Attack *= mult
		case domain.StatHP:
			m.HP *= mult
		case domain.StatDefense:
			m.Defense *= mult
		case domain.StatSpeed:
			m.Speed *= mult
		}
	}

	bonuses := ctx.Evolution.Bonuses()
	if v, ok := bonuses["attack"]; ok {
		m.Attack *= v
	}
	if v, ok := bonuses["hp"]; ok {
		m.HP *= v
	}
	if v, ok := bonuses["defense"]; ok {
		m.Defense *= v
	}
	if v, ok := bonuses["speed"]; ok {
		m.Speed *= v
	}

	m.Attack *= 1 + ctx.Pets.Bonus(domain.BonusAttack)
	m.HP *= 1 + ctx.Pets.Bonus(domain.BonusHP)

	ctx.Inventory.ApplyMultipliers(m)
}

// EffectiveAttack возвращает урон героя за удар: max(Attack, 1),
// умноженный на активный бафф ярости.
func EffectiveAttack(ctx Context) domain.Decimal {
	attack := ctx.Inventory.Stat(domain.StatAttack).Max(domain.NewDecimal(1))
	return attack.MulFloat(ctx.Skills.BuffMultiplier(skillIDRage, ctx.Now))
}

// skillDamage считает урон навыка: max(Attack, 1) * множитель.
func skillDamage(ctx Context, multiplier float64) domain.Decimal {
	attack := ctx.Inventory.Stat(domain.StatAttack).Max(domain.NewDecimal(1))
	return attack.MulFloat(multiplier)
}

// IdleLampRate возвращает текущую скорость генерации ламп в минуту:
// база плюс бонус питомцев.
func IdleLampRate(ctx Context) float64 {
	return ctx.Ledger.LampsPerMinute() + ctx.Pets.Bonus(domain.BonusLamps)
}

// SellItem продает предмет: золото по цене продажи, опыт героя и
// класса по ценности предмета.
func SellItem(ctx Context, item domain.Item) []domain.Event {
	ctx.Ledger.Add(domain.CurrencyGold, item.SellPrice)

	events := ctx.Ledger.AddExp(item.ExpValue)
	events = append(events, ctx.Classes.AddExp(item.ExpValue)...)
	return events
}

// UnlockReachedAreas открывает зоны карты, чьи предшественники
// пройдены текущей стадией боя.
func UnlockReachedAreas(ctx Context) []domain.Event {
	var events []domain.Event
	for _, area := range ctx.WorldMap.UnlockByStage(ctx.Combat.Stage()) {
		events = append(events, domain.Event{
			Kind:    domain.EventAreaUnlocked,
			Title:   "New Area!",
			Message: fmt.Sprintf("%s is now open on the map.", area.Name),
		})
	}
	return events
}

// CollectKill зачисляет награды за убитого противника: золото с бонусом
// питомца и шанс 30% на 1-2 лампы. Стадия к этому моменту уже
// продвинута, так что заодно открываются достигнутые зоны карты.
func CollectKill(ctx Context, gold domain.Decimal) []domain.Event {
	var events []domain.Event

	reward := gold.MulFloat(1 + ctx.Pets.Bonus(domain.BonusGold))
	ctx.Ledger.Add(domain.CurrencyGold, reward)

	if ctx.Rng.Float64() < 0.3 {
		lamps := int64(1 + ctx.Rng.Intn(2))
		ctx.Ledger.Add(domain.CurrencyLamps, domain.NewDecimalInt(lamps))
		events = append(events, domain.Event{
			Kind:    domain.EventLoot,
			Title:   "Lamp Drop!",
			Message: fmt.Sprintf("The enemy dropped %d lamp(s).", lamps),
		})
	}

	events = append(events, UnlockReachedAreas(ctx)...)
	return events
}

// DiscardDisplaced продает вытесненный экипировкой предмет.
// В отличие от продажи добычи, опыт за него не начисляется.
func DiscardDisplaced(ctx Context, item domain.Item) {
	ctx.Ledger.Add(domain.CurrencyGold, item.SellPrice)
}

// resolveBatchItem распределяет предмет пакетного призыва.
// manual: лучшее откладывается игроку на решение, худшее продается.
// auto: лучшее надевается сразу (старое продается), худшее продается.
func resolveBatchItem(ctx Context, item domain.Item, mode domain.SummonMode) []domain.Event {
	if !ctx.Inventory.IsBetter(item) {
		return SellItem(ctx, item)
	}

	if mode == domain.SummonAuto {
		if displaced := ctx.Inventory.Equip(item); displaced != nil {
			DiscardDisplaced(ctx, *displaced)
		}
		RecalculateStats(ctx)
		return nil
	}

	ctx.Inventory.EnqueueLoot(item)
	return []domain.Event{{
		Kind:    domain.EventLoot,
		Title:   "New Item!",
		Message: fmt.Sprintf("%s looks better than what you have.", item.Name),
	}}
}
