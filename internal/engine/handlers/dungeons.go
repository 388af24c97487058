package handlers

import (
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// HandleEnterDungeon обрабатывает ENTER_DUNGEON.
func HandleEnterDungeon(ctx Context, p api.DungeonPayload) (Result, error) {
	if !ctx.Dungeons.Enter(p.DungeonID, ctx.Ledger.PlayerLevel(), ctx.Combat.Stage(), ctx.Now) {
		return Fail("Dungeon is unavailable"), nil
	}
	return OK(), nil
}

// HandleCompleteWave обрабатывает COMPLETE_WAVE.
func HandleCompleteWave(ctx Context, p api.WavePayload) (Result, error) {
	if !ctx.Dungeons.CompleteWave(p.DungeonID, p.Wave) {
		return Fail("No active attempt"), nil
	}
	return OK(), nil
}

// HandleFailDungeon обрабатывает FAIL_DUNGEON - поражение в заходе.
// Пройденные волны сохраняются для частичной награды.
func HandleFailDungeon(ctx Context, p api.DungeonPayload) (Result, error) {
	if !ctx.Dungeons.Fail(p.DungeonID) {
		return Fail("No active attempt"), nil
	}
	return OK(), nil
}

// HandleClaimDungeon обрабатывает CLAIM_DUNGEON.
func HandleClaimDungeon(ctx Context, p api.DungeonPayload) (Result, error) {
	events, ok := ctx.Dungeons.Claim(p.DungeonID, ctx.Evolution.LampsMultiplier(), ctx.Ledger, ctx.Now)
	if !ok {
		return Fail("Nothing to claim"), nil
	}
	return OK(events...), nil
}

// HandleSkipCooldown обрабатывает SKIP_COOLDOWN - снятие кулдауна
// подземелья за алмазы.
func HandleSkipCooldown(ctx Context, p api.DungeonPayload) (Result, error) {
	if !ctx.Dungeons.SkipCooldown(p.DungeonID, ctx.Ledger, ctx.Now) {
		return Fail("Cannot skip the cooldown"), nil
	}
	return OK(), nil
}
