package handlers

import (
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// HandleFightArena обрабатывает FIGHT_ARENA - бой с противником
// из текущего списка.
func HandleFightArena(ctx Context, p api.OpponentPayload) (Result, error) {
	if !ctx.Arena.Fight(p.OpponentID, ctx.Ledger) {
		return Fail("Opponent not found"), nil
	}
	return OK(), nil
}

// HandleRefreshArena обрабатывает REFRESH_ARENA - перегенерацию
// списка противников.
func HandleRefreshArena(ctx Context) (Result, error) {
	ctx.Arena.Refresh()
	return OK(), nil
}

// HandleClaimArenaDaily обрабатывает CLAIM_ARENA_DAILY.
func HandleClaimArenaDaily(ctx Context) (Result, error) {
	if !ctx.Arena.ClaimDaily(ctx.Ledger) {
		return Fail("Daily reward already claimed"), nil
	}
	return OK(), nil
}
