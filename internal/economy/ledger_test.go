package economy

import (
	"testing"

	"github.com/valentintorulya-hash/LoM/internal/domain"
)

func setupLedgerTest() *Ledger {
	return NewLedger(5)
}

func TestSpendAllOrNothing(t *testing.T) {
	l := setupLedgerTest()
	l.Add(domain.CurrencyGold, domain.NewDecimal(100))

	if !l.Spend(domain.CurrencyGold, domain.NewDecimal(40)) {
		t.Fatal("spend of 40 from 100 should succeed")
	}
	if got := l.Balance(domain.CurrencyGold).String(); got != "60" {
		t.Errorf("balance after spend: expected 60, got %s", got)
	}

	// Нехватка: баланс не должен измениться
	if l.Spend(domain.CurrencyGold, domain.NewDecimal(100)) {
		t.Error("spend of 100 from 60 should fail")
	}
	if got := l.Balance(domain.CurrencyGold).String(); got != "60" {
		t.Errorf("balance after failed spend: expected 60, got %s", got)
	}
}

func TestSpendExactBalance(t *testing.T) {
	l := setupLedgerTest()
	l.Add(domain.CurrencyDiamonds, domain.NewDecimal(100))

	if !l.Spend(domain.CurrencyDiamonds, domain.NewDecimal(100)) {
		t.Fatal("spend of full balance should succeed")
	}
	if !l.Balance(domain.CurrencyDiamonds).IsZero() {
		t.Errorf("balance should be zero, got %s", l.Balance(domain.CurrencyDiamonds).String())
	}
}

func TestAddIgnoresNonPositive(t *testing.T) {
	l := setupLedgerTest()
	l.Add(domain.CurrencyLamps, domain.NewDecimal(-5))
	l.Add(domain.CurrencyLamps, domain.DecimalZero)

	if !l.Balance(domain.CurrencyLamps).IsZero() {
		t.Errorf("balance should stay zero, got %s", l.Balance(domain.CurrencyLamps).String())
	}
}

func TestLampProgression(t *testing.T) {
	l := setupLedgerTest()

	if got := l.LampToNext().String(); got != "10" {
		t.Errorf("lamp threshold at level 1: expected 10, got %s", got)
	}

	events := l.AddLampProgress(domain.NewDecimal(10))
	if l.LampLevel() != 2 {
		t.Errorf("lamp level: expected 2, got %d", l.LampLevel())
	}
	if !l.LampProgress().IsZero() {
		t.Errorf("lamp progress should be zero, got %s", l.LampProgress().String())
	}
	if got := l.LampToNext().String(); got != "12" {
		t.Errorf("lamp threshold at level 2: expected 12, got %s", got)
	}
	if len(events) != 1 || events[0].Kind != domain.EventLampLevelUp {
		t.Errorf("expected one LAMP_LEVEL_UP event, got %+v", events)
	}
}

func TestLampProgressionOverflow(t *testing.T) {
	l := setupLedgerTest()

	// 10 + 12 + 3 = 25: два уровня и остаток 3
	events := l.AddLampProgress(domain.NewDecimal(25))
	if l.LampLevel() != 3 {
		t.Errorf("lamp level: expected 3, got %d", l.LampLevel())
	}
	if got := l.LampProgress().String(); got != "3" {
		t.Errorf("lamp progress: expected 3, got %s", got)
	}
	if len(events) != 2 {
		t.Errorf("expected two level-up events, got %d", len(events))
	}
}

func TestPlayerExpMultiLevel(t *testing.T) {
	l := setupLedgerTest()

	// 350 опыта с 1 уровня: 100 на второй, 150 на третий, остаток 100.
	// Награда лампами: 20 за второй уровень + 30 за третий.
	events := l.AddExp(domain.NewDecimal(350))

	if l.PlayerLevel() != 3 {
		t.Errorf("player level: expected 3, got %d", l.PlayerLevel())
	}
	if got := l.PlayerExp().String(); got != "100" {
		t.Errorf("player exp: expected 100, got %s", got)
	}
	if got := l.ExpToNext().String(); got != "225" {
		t.Errorf("exp threshold at level 3: expected 225, got %s", got)
	}
	if got := l.Balance(domain.CurrencyLamps).String(); got != "50" {
		t.Errorf("lamp reward: expected 50, got %s", got)
	}
	if len(events) != 2 {
		t.Errorf("expected two LEVEL_UP events, got %d", len(events))
	}
}

func TestGenerateIdleLamps(t *testing.T) {
	l := setupLedgerTest()

	// 6 ламп/мин за 10 секунд = 1 лампа
	l.GenerateIdleLamps(6, 10)
	if got := l.Balance(domain.CurrencyLamps).String(); got != "1" {
		t.Errorf("idle lamps: expected 1, got %s", got)
	}

	// Нулевая скорость - ничего не происходит
	l.GenerateIdleLamps(0, 60)
	if got := l.Balance(domain.CurrencyLamps).String(); got != "1" {
		t.Errorf("idle lamps after zero rate: expected 1, got %s", got)
	}
}

func TestLampAutoBatch(t *testing.T) {
	l := setupLedgerTest()

	if l.LampAutoBatch() != 1 {
		t.Errorf("default batch: expected 1, got %d", l.LampAutoBatch())
	}
	if !l.SetLampAutoBatch(10) {
		t.Error("setting batch to 10 should succeed")
	}
	if l.SetLampAutoBatch(5) {
		t.Error("setting batch to 5 should fail")
	}
	if l.LampAutoBatch() != 10 {
		t.Errorf("batch after rejected set: expected 10, got %d", l.LampAutoBatch())
	}
}

func TestLedgerSnapshotRestore(t *testing.T) {
	l := setupLedgerTest()
	l.Add(domain.CurrencyGold, domain.NewDecimal(1234))
	l.AddExp(domain.NewDecimal(150))
	l.AddLampProgress(domain.NewDecimal(15))
	l.SetLampAutoMode(true)
	l.SetLampAutoBatch(10)

	restored := NewLedger(5)
	restored.Restore(l.Snapshot())

	if restored.PlayerLevel() != l.PlayerLevel() {
		t.Errorf("restored player level mismatch: %d vs %d", restored.PlayerLevel(), l.PlayerLevel())
	}
	if !restored.Balance(domain.CurrencyGold).Eq(l.Balance(domain.CurrencyGold)) {
		t.Error("restored gold mismatch")
	}
	if restored.LampLevel() != l.LampLevel() {
		t.Errorf("restored lamp level mismatch: %d vs %d", restored.LampLevel(), l.LampLevel())
	}
	if !restored.LampAutoMode() || restored.LampAutoBatch() != 10 {
		t.Error("restored auto mode flags mismatch")
	}
}

func TestRestoreSanitizesBadValues(t *testing.T) {
	l := setupLedgerTest()
	l.Restore(Snapshot{
		Lamps:         domain.NewDecimal(-10),
		LampLevel:     0,
		PlayerLevel:   -3,
		LampAutoBatch: 7,
	})

	if !l.Balance(domain.CurrencyLamps).IsZero() {
		t.Error("negative lamp balance should clamp to zero")
	}
	if l.LampLevel() != 1 || l.PlayerLevel() != 1 {
		t.Errorf("levels should clamp to 1, got lamp=%d player=%d", l.LampLevel(), l.PlayerLevel())
	}
	if l.LampAutoBatch() != 1 {
		t.Errorf("invalid batch should reset to 1, got %d", l.LampAutoBatch())
	}
}
