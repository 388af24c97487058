package progression

import (
	"os"
	"testing"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/internal/economy"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() failed: %v", err)
	}
	return c
}

// fundedWallet создает леджер с заданными балансами.
func fundedWallet(gold, diamonds float64) *economy.Ledger {
	l := economy.NewLedger(5)
	l.Add(domain.CurrencyGold, domain.NewDecimal(gold))
	l.Add(domain.CurrencyDiamonds, domain.NewDecimal(diamonds))
	return l
}
