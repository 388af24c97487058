package activities

import (
	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
)

// MailState - письмо с отметкой о полученной награде.
type MailState struct {
	catalog.Mail
	Claimed bool `json:"claimed"`
}

// Mailbox - почтовый ящик героя.
type Mailbox struct {
	mails []MailState
}

// NewMailbox создает ящик со стартовой почтой из каталога.
func NewMailbox(defs []catalog.Mail) *Mailbox {
	mails := make([]MailState, len(defs))
	for i, m := range defs {
		mails[i] = MailState{Mail: m}
	}
	return &Mailbox{mails: mails}
}

// All возвращает все письма.
func (m *Mailbox) All() []MailState {
	return append([]MailState(nil), m.mails...)
}

func (m *Mailbox) find(id string) *MailState {
	for i := range m.mails {
		if m.mails[i].ID == id {
			return &m.mails[i]
		}
	}
	return nil
}

// Claim выдает вложение письма. Повторное получение - отказ.
func (m *Mailbox) Claim(id string, wallet Wallet) bool {
	mail := m.find(id)
	if mail == nil || mail.Claimed {
		return false
	}

	wallet.Add(domain.CurrencyGold, mail.Rewards.Gold)
	wallet.Add(domain.CurrencyLamps, mail.Rewards.Lamps)
	wallet.Add(domain.CurrencyDiamonds, mail.Rewards.Diamonds)
	mail.Claimed = true
	return true
}

// ClaimAll выдает вложения всех неполученных писем.
// Возвращает число полученных.
func (m *Mailbox) ClaimAll(wallet Wallet) int {
	claimed := 0
	for i := range m.mails {
		if m.Claim(m.mails[i].ID, wallet) {
			claimed++
		}
	}
	return claimed
}

// --- СОХРАНЕНИЕ ---

// MailSnapshot - сериализуемое состояние почты.
type MailSnapshot struct {
	Claimed map[string]bool `json:"claimed"`
}

// Snapshot снимает состояние для сохранения.
func (m *Mailbox) Snapshot() MailSnapshot {
	claimed := make(map[string]bool, len(m.mails))
	for _, mail := range m.mails {
		claimed[mail.ID] = mail.Claimed
	}
	return MailSnapshot{Claimed: claimed}
}

// Restore накладывает отметки о полученных письмах.
func (m *Mailbox) Restore(s MailSnapshot) {
	for i := range m.mails {
		if claimed, ok := s.Claimed[m.mails[i].ID]; ok {
			m.mails[i].Claimed = claimed
		}
	}
}
