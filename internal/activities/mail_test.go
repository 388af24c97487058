package activities

import (
	"testing"

	"github.com/valentintorulya-hash/LoM/internal/domain"
)

func setupMailTest(t *testing.T) *Mailbox {
	return NewMailbox(loadCatalog(t).Mail)
}

func TestMailClaim(t *testing.T) {
	m := setupMailTest(t)
	w := fundedWallet(0, 0)

	if !m.Claim("mail-1", w) {
		t.Fatal("claiming unread mail should succeed")
	}
	if got := w.Balance(domain.CurrencyGold).String(); got != "500" {
		t.Errorf("mail gold: expected 500, got %s", got)
	}
	if got := w.Balance(domain.CurrencyDiamonds).String(); got != "2" {
		t.Errorf("mail diamonds: expected 2, got %s", got)
	}

	if m.Claim("mail-1", w) {
		t.Error("repeat claim should fail")
	}
	if m.Claim("mail-404", w) {
		t.Error("claiming unknown mail should fail")
	}
}

func TestMailClaimAll(t *testing.T) {
	m := setupMailTest(t)
	w := fundedWallet(0, 0)

	if got := m.ClaimAll(w); got != 2 {
		t.Errorf("expected 2 mails claimed, got %d", got)
	}
	if got := w.Balance(domain.CurrencyGold).String(); got != "800" {
		t.Errorf("gold after claim all: expected 800, got %s", got)
	}
	if got := w.Balance(domain.CurrencyLamps).String(); got != "3" {
		t.Errorf("lamps after claim all: expected 3, got %s", got)
	}
	if got := m.ClaimAll(w); got != 0 {
		t.Errorf("mailbox should be empty, got %d", got)
	}
}

func TestMailSnapshotRestore(t *testing.T) {
	m := setupMailTest(t)
	m.Claim("mail-2", fundedWallet(0, 0))

	restored := setupMailTest(t)
	restored.Restore(m.Snapshot())

	if restored.Claim("mail-2", fundedWallet(0, 0)) {
		t.Error("restored mail-2 should stay claimed")
	}
	if !restored.Claim("mail-1", fundedWallet(0, 0)) {
		t.Error("restored mail-1 should still be claimable")
	}
}
