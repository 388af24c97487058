package handlers

import (
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// HandleSellItem обрабатывает SELL_ITEM - продажу предмета, ожидающего
// решения. Очередь добычи продвигается.
func HandleSellItem(ctx Context, p api.ItemPayload) (Result, error) {
	pending := ctx.Inventory.Pending()
	if pending == nil || pending.ID != p.ItemID {
		return Fail("Item is not awaiting a decision"), nil
	}

	item := ctx.Inventory.TakePending()
	events := SellItem(ctx, *item)
	return OK(events...), nil
}

// HandleEquipItem обрабатывает EQUIP_ITEM - экипировку предмета,
// ожидающего решения. Вытесненный предмет продается.
func HandleEquipItem(ctx Context, p api.ItemPayload) (Result, error) {
	pending := ctx.Inventory.Pending()
	if pending == nil || pending.ID != p.ItemID {
		return Fail("Item is not awaiting a decision"), nil
	}

	item := ctx.Inventory.TakePending()
	displaced := ctx.Inventory.Equip(*item)
	RecalculateStats(ctx)

	if displaced != nil {
		DiscardDisplaced(ctx, *displaced)
	}
	return OK(), nil
}
