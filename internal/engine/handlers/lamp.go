package handlers

import (
	"fmt"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// HandleRubLamp обрабатывает RUB_LAMP - одиночное потирание лампы.
// Предмет всегда откладывается игроку на решение, поэтому новый призыв
// запрещен, пока предыдущий не разобран.
func HandleRubLamp(ctx Context) (Result, error) {
	if ctx.Inventory.Pending() != nil {
		return Fail("Resolve the pending item first"), nil
	}
	if !ctx.Ledger.Spend(domain.CurrencyLamps, domain.NewDecimal(1)) {
		return Fail("Not enough lamps"), nil
	}

	item := ctx.Generator.NewItem(ctx.Ledger.LampLevel())
	events := ctx.Ledger.AddLampProgress(domain.NewDecimal(1))
	ctx.Inventory.EnqueueLoot(item)

	events = append(events, domain.Event{
		Kind:    domain.EventLoot,
		Title:   "Item Summoned!",
		Message: fmt.Sprintf("The lamp produced %s.", item.Name),
	})
	return OK(events...), nil
}

// HandleRubLampBatch обрабатывает RUB_LAMP_BATCH - пакетный призыв.
// Каждая итерация тратит одну лампу; первая неудачная трата обрывает
// пакет. В авто-режиме неудачная трата дополнительно гасит авто-режим.
func HandleRubLampBatch(ctx Context, p api.BatchPayload) (Result, error) {
	mode := domain.SummonManual
	if ctx.Ledger.LampAutoMode() {
		mode = domain.SummonAuto
	}

	// Ручной пакет требует разобранной добычи, иначе очередь
	// разрастается без решения игрока.
	if mode == domain.SummonManual && (ctx.Inventory.Pending() != nil || len(ctx.Inventory.LootQueue()) > 0) {
		return Fail("Resolve the pending loot first"), nil
	}

	var events []domain.Event
	summoned := 0

	for i := 0; i < p.Count; i++ {
		if !ctx.Ledger.Spend(domain.CurrencyLamps, domain.NewDecimal(1)) {
			if mode == domain.SummonAuto {
				ctx.Ledger.SetLampAutoMode(false)
			}
			break
		}

		item := ctx.Generator.NewItem(ctx.Ledger.LampLevel())
		events = append(events, ctx.Ledger.AddLampProgress(domain.NewDecimal(1))...)
		events = append(events, resolveBatchItem(ctx, item, mode)...)
		summoned++
	}

	if summoned == 0 {
		return Fail("Not enough lamps"), nil
	}
	return OK(events...), nil
}

// HandleSetLampAuto обрабатывает SET_LAMP_AUTO - явную настройку
// режима и размера пакета.
func HandleSetLampAuto(ctx Context, p api.LampAutoPayload) (Result, error) {
	ctx.Ledger.SetLampAutoMode(p.Mode == "auto")
	if p.Batch != 0 {
		ctx.Ledger.SetLampAutoBatch(p.Batch)
	}
	return OK(), nil
}

// HandleToggleLampAuto обрабатывает TOGGLE_LAMP_AUTO.
func HandleToggleLampAuto(ctx Context) (Result, error) {
	ctx.Ledger.SetLampAutoMode(!ctx.Ledger.LampAutoMode())
	return OK(), nil
}
