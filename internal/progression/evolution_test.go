package progression

import (
	"testing"

	"github.com/valentintorulya-hash/LoM/internal/domain"
)

func setupEvolutionTest(t *testing.T) *Evolution {
	return NewEvolution(loadCatalog(t).Evolutions)
}

func TestEvolutionStartsAtSpore(t *testing.T) {
	e := setupEvolutionTest(t)

	if e.Current().ID != "spore" {
		t.Errorf("initial stage: expected spore, got %s", e.Current().ID)
	}
	if e.IsMax() {
		t.Error("spore is not the max stage")
	}
	if got := e.LampsMultiplier(); got != 1 {
		t.Errorf("spore lamp multiplier: expected 1, got %v", got)
	}
}

func TestCanEvolveRequirements(t *testing.T) {
	e := setupEvolutionTest(t)
	w := fundedWallet(1000, 0)

	// baby_shroom: уровень 10, стадия 20, 1000 золота
	if e.CanEvolve(9, 20, w) {
		t.Error("evolution below required level should be blocked")
	}
	if e.CanEvolve(10, 19, w) {
		t.Error("evolution below required stage should be blocked")
	}
	if e.CanEvolve(10, 20, fundedWallet(999, 0)) {
		t.Error("evolution without enough gold should be blocked")
	}
	if !e.CanEvolve(10, 20, w) {
		t.Error("evolution with all requirements met should be allowed")
	}
}

func TestEvolveSpendsBothCurrencies(t *testing.T) {
	e := setupEvolutionTest(t)
	w := fundedWallet(10000, 20)
	e.Evolve(10, 20, w) // -> baby_shroom, 1000 золота

	// youth_shroom: 5000 золота + 10 алмазов
	events, ok := e.Evolve(30, 60, w)
	if !ok {
		t.Fatal("evolution to youth_shroom should succeed")
	}
	if e.Current().ID != "youth_shroom" {
		t.Errorf("current stage: expected youth_shroom, got %s", e.Current().ID)
	}
	if got := w.Balance(domain.CurrencyGold).String(); got != "4000" {
		t.Errorf("gold after evolutions: expected 4000, got %s", got)
	}
	if got := w.Balance(domain.CurrencyDiamonds).String(); got != "10" {
		t.Errorf("diamonds after evolutions: expected 10, got %s", got)
	}
	if len(events) != 1 || events[0].Kind != domain.EventEvolved {
		t.Errorf("expected one EVOLVED event, got %+v", events)
	}
}

func TestEvolveAllOrNothing(t *testing.T) {
	e := setupEvolutionTest(t)
	e.Evolve(10, 20, fundedWallet(1000, 0))

	// Золота хватает, алмазов нет: ни одна валюта не должна списаться
	w := fundedWallet(5000, 5)
	if _, ok := e.Evolve(30, 60, w); ok {
		t.Fatal("evolution without enough diamonds should fail")
	}
	if got := w.Balance(domain.CurrencyGold).String(); got != "5000" {
		t.Errorf("failed evolution must not spend gold, got %s", got)
	}
	if got := w.Balance(domain.CurrencyDiamonds).String(); got != "5" {
		t.Errorf("failed evolution must not spend diamonds, got %s", got)
	}
	if e.Current().ID != "baby_shroom" {
		t.Errorf("stage should be unchanged, got %s", e.Current().ID)
	}
}

func TestEvolutionBonuses(t *testing.T) {
	e := setupEvolutionTest(t)
	e.Evolve(10, 20, fundedWallet(1000, 0))

	bonuses := e.Bonuses()
	if bonuses["attack"] != 1.2 || bonuses["hp"] != 1.1 {
		t.Errorf("baby_shroom bonuses mismatch: %+v", bonuses)
	}
}

func TestEvolutionHistory(t *testing.T) {
	e := setupEvolutionTest(t)
	e.Evolve(10, 20, fundedWallet(1000, 0))

	history := e.History()
	if len(history) != 2 || history[0] != "spore" || history[1] != "baby_shroom" {
		t.Errorf("history mismatch: %v", history)
	}
}

func TestEvolutionSnapshotRestore(t *testing.T) {
	e := setupEvolutionTest(t)
	e.Evolve(10, 20, fundedWallet(1000, 0))

	restored := setupEvolutionTest(t)
	restored.Restore(e.Snapshot())

	if restored.Current().ID != "baby_shroom" {
		t.Errorf("restored stage: expected baby_shroom, got %s", restored.Current().ID)
	}
	if len(restored.History()) != 2 {
		t.Errorf("restored history length: expected 2, got %d", len(restored.History()))
	}
}

func TestEvolutionRestoreUnknownStage(t *testing.T) {
	e := setupEvolutionTest(t)
	e.Restore(EvolutionSnapshot{StageID: "slime_form"})

	if e.Current().ID != "spore" {
		t.Errorf("unknown stage should reset to spore, got %s", e.Current().ID)
	}
}
