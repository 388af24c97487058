package handlers

import (
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// HandleSelectClass обрабатывает SELECT_CLASS. Первый выбор требует
// уровня героя, смена класса стоит алмазов.
func HandleSelectClass(ctx Context, p api.ClassPayload) (Result, error) {
	if !ctx.Classes.Select(p.ClassID, ctx.Ledger.PlayerLevel(), ctx.Ledger) {
		return Fail("Cannot select this class"), nil
	}

	RecalculateStats(ctx)
	return OK(), nil
}

// HandleEvolve обрабатывает EVOLVE - переход на следующую стадию
// эволюции. Трата двух валют атомарна.
func HandleEvolve(ctx Context) (Result, error) {
	events, ok := ctx.Evolution.Evolve(ctx.Ledger.PlayerLevel(), ctx.Combat.Stage(), ctx.Ledger)
	if !ok {
		return Fail("Evolution requirements not met"), nil
	}

	RecalculateStats(ctx)
	return OK(events...), nil
}

// HandleUnlockPet обрабатывает UNLOCK_PET.
func HandleUnlockPet(ctx Context, p api.PetPayload) (Result, error) {
	if !ctx.Pets.Unlock(p.PetID, ctx.Ledger) {
		return Fail("Cannot unlock this pet"), nil
	}

	RecalculateStats(ctx)
	return OK(), nil
}

// HandleLevelUpPet обрабатывает LEVEL_UP_PET.
func HandleLevelUpPet(ctx Context, p api.PetPayload) (Result, error) {
	if !ctx.Pets.LevelUp(p.PetID) {
		return Fail("Pet is not unlocked"), nil
	}

	RecalculateStats(ctx)
	return OK(), nil
}
