package handlers

import (
	"fmt"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// HandleAttack обрабатывает ATTACK - ручной удар по противнику.
// Контратаки нет: противник отвечает только на боевом тике.
func HandleAttack(ctx Context) (Result, error) {
	if ctx.Combat.Enemy() == nil {
		return Fail("No enemy to attack"), nil
	}

	outcome := ctx.Combat.Strike(EffectiveAttack(ctx))

	var events []domain.Event
	if outcome.EnemyDefeated {
		events = CollectKill(ctx, outcome.GoldReward)
	}
	return OK(events...), nil
}

// HandleCastSkill обрабатывает CAST_SKILL. Навык должен быть открыт
// текущей стадией и не на кулдауне. Уронные навыки бьют через боевой
// движок, heal полностью лечит героя, бафы просто активируются.
func HandleCastSkill(ctx Context, p api.SkillPayload) (Result, error) {
	def := ctx.Catalog.SkillByID(p.SkillID)
	if def == nil {
		return Fail(fmt.Sprintf("Unknown skill %q", p.SkillID)), nil
	}
	if ctx.Combat.Stage() < def.UnlockStage {
		return Fail(fmt.Sprintf("%s unlocks at stage %d", def.Name, def.UnlockStage)), nil
	}

	skill, ok := ctx.Skills.Activate(p.SkillID, ctx.Now)
	if !ok {
		return Fail(fmt.Sprintf("%s is on cooldown", def.Name)), nil
	}

	var events []domain.Event

	switch {
	case skill.Kind == domain.SkillDamage:
		outcome := ctx.Combat.Strike(skillDamage(ctx, skill.Value))
		if outcome.EnemyDefeated {
			events = CollectKill(ctx, outcome.GoldReward)
		}
	case skill.ID == skillIDHeal:
		ctx.Inventory.FullHeal()
	}

	return OK(events...), nil
}

// HandleCastClassSkill обрабатывает CAST_CLASS_SKILL - особый навык
// выбранного класса.
func HandleCastClassSkill(ctx Context) (Result, error) {
	special, ok := ctx.Classes.UseSpecial(ctx.Now)
	if !ok {
		return Fail("Class skill is not ready"), nil
	}

	outcome := ctx.Combat.Strike(skillDamage(ctx, special.DamageMultiplier))

	var events []domain.Event
	if outcome.EnemyDefeated {
		events = CollectKill(ctx, outcome.GoldReward)
	}
	return OK(events...), nil
}

// HandleToggleAutoFight обрабатывает TOGGLE_AUTO_FIGHT.
func HandleToggleAutoFight(ctx Context) (Result, error) {
	ctx.Combat.ToggleAutoFight()
	return OK(), nil
}

// HandleSetStage обрабатывает SET_STAGE - прямой переход на стадию.
func HandleSetStage(ctx Context, p api.StagePayload) (Result, error) {
	ctx.Combat.SetStage(p.Stage)
	return OK(UnlockReachedAreas(ctx)...), nil
}

// HandleSetArea обрабатывает SET_AREA - переход в зону карты.
// Успешный переход ставит бой на стартовую стадию зоны.
func HandleSetArea(ctx Context, p api.AreaPayload) (Result, error) {
	startStage, ok := ctx.WorldMap.SetActive(p.AreaID)
	if !ok {
		return Fail("Area is locked or unknown"), nil
	}

	ctx.Combat.SetStage(startStage)
	return OK(), nil
}
