package handlers

import (
	"math"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// Цена расширения офлайн-потолка: алмазов за каждый начатый час.
const extendAFKCostPerHour = 5

// HandleClaimQuest обрабатывает CLAIM_QUEST.
func HandleClaimQuest(ctx Context, p api.QuestPayload) (Result, error) {
	if !ctx.Quests.Claim(p.QuestID, ctx.Ledger) {
		return Fail("Quest is not complete"), nil
	}
	return OK(), nil
}

// HandleClaimQuestsAll обрабатывает CLAIM_QUESTS_ALL.
func HandleClaimQuestsAll(ctx Context) (Result, error) {
	if ctx.Quests.ClaimAll(ctx.Ledger) == 0 {
		return Fail("No quests to claim"), nil
	}
	return OK(), nil
}

// HandleClaimMail обрабатывает CLAIM_MAIL.
func HandleClaimMail(ctx Context, p api.MailPayload) (Result, error) {
	if !ctx.Mailbox.Claim(p.MailID, ctx.Ledger) {
		return Fail("Mail already claimed"), nil
	}
	return OK(), nil
}

// HandleClaimMailAll обрабатывает CLAIM_MAIL_ALL.
func HandleClaimMailAll(ctx Context) (Result, error) {
	if ctx.Mailbox.ClaimAll(ctx.Ledger) == 0 {
		return Fail("No mail to claim"), nil
	}
	return OK(), nil
}

// HandleClaimAFK обрабатывает CLAIM_AFK - получение офлайн-наград.
func HandleClaimAFK(ctx Context) (Result, error) {
	events, ok := ctx.AFK.Claim(
		ctx.Now,
		IdleLampRate(ctx),
		ctx.Pets.Bonus(domain.BonusGold),
		ctx.Evolution.LampsMultiplier(),
		ctx.Ledger,
	)
	if !ok {
		return Fail("Not away long enough"), nil
	}
	return OK(events...), nil
}

// HandleExtendAFK обрабатывает EXTEND_AFK - платное расширение
// офлайн-потолка.
func HandleExtendAFK(ctx Context, p api.ExtendPayload) (Result, error) {
	hours := int(math.Ceil(float64(p.Minutes) / 60))
	cost := domain.NewDecimalInt(int64(hours * extendAFKCostPerHour))

	if !ctx.AFK.ExtendMax(p.Minutes, cost, ctx.Ledger) {
		return Fail("Not enough diamonds"), nil
	}
	return OK(), nil
}

// HandleInit обрабатывает INIT - первый запрос клиента. Состояние
// партии соберет и отправит движок, самой логике делать нечего.
func HandleInit(ctx Context) (Result, error) {
	return OK(), nil
}
