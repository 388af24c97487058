// Package activities реализует временные активности: подземелья,
// арену, квесты, почту и офлайн-награды.
package activities

import "github.com/valentintorulya-hash/LoM/internal/domain"

// Wallet - начисление и списание валют для активностей.
// Реализуется экономическим леджером.
type Wallet interface {
	Add(c domain.Currency, amount domain.Decimal)
	CanAfford(c domain.Currency, amount domain.Decimal) bool
	Spend(c domain.Currency, amount domain.Decimal) bool
}
