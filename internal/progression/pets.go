package progression

import (
	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

// Pets - открытые питомцы и их уровни.
type Pets struct {
	defs []catalog.Pet

	// levels: id питомца -> уровень. Наличие ключа означает,
	// что питомец открыт.
	levels map[string]int
}

// NewPets создает состояние питомцев без открытых.
func NewPets(defs []catalog.Pet) *Pets {
	return &Pets{
		defs:   defs,
		levels: make(map[string]int),
	}
}

func (p *Pets) find(id string) *catalog.Pet {
	for i := range p.defs {
		if p.defs[i].ID == id {
			return &p.defs[i]
		}
	}
	return nil
}

// Unlocked сообщает, открыт ли питомец.
func (p *Pets) Unlocked(id string) bool {
	_, ok := p.levels[id]
	return ok
}

// Level возвращает уровень питомца (0, если не открыт).
func (p *Pets) Level(id string) int {
	return p.levels[id]
}

// Unlock покупает питомца за золото. Повторная покупка - отказ.
func (p *Pets) Unlock(id string, wallet Wallet) bool {
	pet := p.find(id)
	if pet == nil || p.Unlocked(id) {
		return false
	}
	if !wallet.Spend(domain.CurrencyGold, pet.UnlockCost) {
		return false
	}

	p.levels[id] = 1
	logger.Log.WithFields(logrus.Fields{
		"component": "progression",
		"pet":       id,
	}).Info("Pet unlocked.")
	return true
}

// LevelUp повышает уровень открытого питомца.
func (p *Pets) LevelUp(id string) bool {
	if !p.Unlocked(id) {
		return false
	}
	p.levels[id]++
	return true
}

// Bonus суммирует бонусы открытых питомцев данного типа.
// Бонус питомца растет линейно: база * уровень.
func (p *Pets) Bonus(t domain.BonusType) float64 {
	total := 0.0
	for _, pet := range p.defs {
		level, ok := p.levels[pet.ID]
		if !ok || pet.BonusType != t {
			continue
		}
		total += pet.BonusValue * float64(level)
	}
	return total
}

// --- СОХРАНЕНИЕ ---

// PetSnapshot - сериализуемое состояние питомцев.
type PetSnapshot struct {
	Levels map[string]int `json:"levels"`
}

// Snapshot снимает состояние для сохранения.
func (p *Pets) Snapshot() PetSnapshot {
	levels := make(map[string]int, len(p.levels))
	for k, v := range p.levels {
		levels[k] = v
	}
	return PetSnapshot{Levels: levels}
}

// Restore восстанавливает питомцев. Неизвестные id отбрасываются.
func (p *Pets) Restore(s PetSnapshot) {
	p.levels = make(map[string]int, len(s.Levels))
	for id, level := range s.Levels {
		if p.find(id) == nil || level < 1 {
			continue
		}
		p.levels[id] = level
	}
}
