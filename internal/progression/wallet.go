// Package progression отвечает за долгосрочный рост героя:
// класс, питомцы и цепочка эволюций.
package progression

import "github.com/valentintorulya-hash/LoM/internal/domain"

// Wallet - доступ к балансам для покупок прогрессии.
// Реализуется экономическим леджером; подсистемы не знают о нем напрямую.
type Wallet interface {
	CanAfford(c domain.Currency, amount domain.Decimal) bool
	Spend(c domain.Currency, amount domain.Decimal) bool
}
