package handlers

import (
	"github.com/valentintorulya-hash/LoM/internal/domain"
)

// IdleTickStep - секундный тик простоя: пассивная генерация ламп
// по текущей скорости.
func IdleTickStep(ctx Context, deltaSeconds float64) {
	ctx.Ledger.GenerateIdleLamps(IdleLampRate(ctx), deltaSeconds)
}

// AutoLampStep - шаг авто-лампы. Сначала разбирается ожидающий
// предмет (лучшее надевается, худшее продается), затем новый призыв
// размером в настроенный пакет. Нехватка ламп гасит авто-режим.
func AutoLampStep(ctx Context) []domain.Event {
	if !ctx.Ledger.LampAutoMode() {
		return nil
	}

	if ctx.Inventory.Pending() != nil {
		item := ctx.Inventory.TakePending()
		if ctx.Inventory.IsBetter(*item) {
			if displaced := ctx.Inventory.Equip(*item); displaced != nil {
				DiscardDisplaced(ctx, *displaced)
			}
			RecalculateStats(ctx)
			return nil
		}
		return SellItem(ctx, *item)
	}

	count := ctx.Ledger.LampAutoBatch()
	if !ctx.Ledger.CanAfford(domain.CurrencyLamps, domain.NewDecimalInt(int64(count))) {
		ctx.Ledger.SetLampAutoMode(false)
		return nil
	}

	var events []domain.Event
	for i := 0; i < count; i++ {
		if !ctx.Ledger.Spend(domain.CurrencyLamps, domain.NewDecimal(1)) {
			ctx.Ledger.SetLampAutoMode(false)
			break
		}
		item := ctx.Generator.NewItem(ctx.Ledger.LampLevel())
		events = append(events, ctx.Ledger.AddLampProgress(domain.NewDecimal(1))...)
		events = append(events, resolveBatchItem(ctx, item, domain.SummonAuto)...)
	}
	return events
}

// CombatTickStep - секундный боевой тик: удар героя, контратака,
// смерть героя откатывает стадию с полным лечением.
func CombatTickStep(ctx Context) []domain.Event {
	if !ctx.Combat.AutoFight() {
		return nil
	}

	outcome := ctx.Combat.ResolveTick(EffectiveAttack(ctx), ctx.Inventory.Stat(domain.StatDefense))

	var events []domain.Event
	if outcome.EnemyDefeated {
		events = CollectKill(ctx, outcome.GoldReward)
	}

	if outcome.DamageToPlayer.Gt(domain.DecimalZero) {
		ctx.Inventory.TakeDamage(outcome.DamageToPlayer)
		if ctx.Inventory.IsDead() {
			ctx.Combat.Retreat()
			ctx.Inventory.FullHeal()
		}
	}
	return events
}

// AutoSkillStep - частый обход навыков: готовые и открытые стадией
// навыки кастуются сами. Лечение кастуется только по раненому герою.
func AutoSkillStep(ctx Context) []domain.Event {
	if !ctx.Combat.AutoFight() {
		return nil
	}

	var events []domain.Event
	for _, def := range ctx.Skills.Skills() {
		if ctx.Combat.Stage() < def.UnlockStage {
			continue
		}
		if def.ID == skillIDHeal && !ctx.Inventory.CurrentHP().Lt(ctx.Inventory.Stat(domain.StatHP)) {
			continue
		}
		if !ctx.Skills.IsReady(def.ID, ctx.Now) {
			continue
		}

		skill, ok := ctx.Skills.Activate(def.ID, ctx.Now)
		if !ok {
			continue
		}

		switch {
		case skill.Kind == domain.SkillDamage:
			outcome := ctx.Combat.Strike(skillDamage(ctx, skill.Value))
			if outcome.EnemyDefeated {
				events = append(events, CollectKill(ctx, outcome.GoldReward)...)
			}
		case skill.ID == skillIDHeal:
			ctx.Inventory.FullHeal()
		}
	}
	return events
}
