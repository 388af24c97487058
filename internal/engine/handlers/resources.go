package handlers

import (
	"fmt"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// HandleAddResource обрабатывает ADD_RESOURCE - прямое пополнение
// баланса (отладка, промо-коды).
func HandleAddResource(ctx Context, p api.ResourcePayload) (Result, error) {
	currency, ok := domain.ParseCurrency(p.Currency)
	if !ok {
		return Fail(fmt.Sprintf("Unknown currency %q", p.Currency)), nil
	}
	amount, err := domain.ParseDecimal(p.Amount)
	if err != nil {
		return Result{}, fmt.Errorf("parse amount: %w", err)
	}

	ctx.Ledger.Add(currency, amount)
	return OK(), nil
}

// HandleSpendResource обрабатывает SPEND_RESOURCE - прямое списание.
// Списание атомарно: при нехватке баланс не меняется.
func HandleSpendResource(ctx Context, p api.ResourcePayload) (Result, error) {
	currency, ok := domain.ParseCurrency(p.Currency)
	if !ok {
		return Fail(fmt.Sprintf("Unknown currency %q", p.Currency)), nil
	}
	amount, err := domain.ParseDecimal(p.Amount)
	if err != nil {
		return Result{}, fmt.Errorf("parse amount: %w", err)
	}

	if !ctx.Ledger.Spend(currency, amount) {
		return Fail("Insufficient balance"), nil
	}
	return OK(), nil
}
