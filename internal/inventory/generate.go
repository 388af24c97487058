package inventory

import (
	"fmt"
	"math/rand"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/utils"
)

// Generator создает предметы по правилам каталога.
// Собственный rand.Rand делает генерацию воспроизводимой при фиксированном seed.
type Generator struct {
	rng   *rand.Rand
	rules catalog.ItemRules
}

// NewGenerator создает генератор предметов.
func NewGenerator(rng *rand.Rand, rules catalog.ItemRules) *Generator {
	return &Generator{rng: rng, rules: rules}
}

// NewItem генерирует предмет уровня лампы.
// Редкость - взвешенный бросок, слот и имя - равномерные.
func (g *Generator) NewItem(lampLevel int) domain.Item {
	weights := make([]int, len(g.rules.Rarities))
	for i, r := range g.rules.Rarities {
		weights[i] = r.Weight
	}
	rule := g.rules.Rarities[utils.WeightedIndex(g.rng, weights)]

	slot := domain.Slots[g.rng.Intn(len(domain.Slots))]
	base := g.rules.SlotBases[slot]
	noun := utils.Choice(g.rng, g.rules.Nouns[slot])

	// Стат: база слота * множитель редкости * 1.1^(уровень-1)
	growth := domain.PowFloat(1.1, float64(lampLevel-1))
	statValue := domain.NewDecimal(base.Base).
		MulFloat(rule.Multiplier).
		Mul(growth).
		Floor()

	// Цена продажи: 10 * уровень * множитель редкости
	sellPrice := domain.NewDecimal(10).
		MulFloat(float64(lampLevel)).
		MulFloat(rule.Multiplier).
		Floor()

	return domain.Item{
		ID:     utils.GenerateDeterministicID(g.rng, "itm-"),
		Name:   fmt.Sprintf("%s %s", rule.Rarity, noun),
		Rarity: rule.Rarity,
		Slot:   slot,
		Level:  lampLevel,
		MainStat: domain.ItemStat{
			Type:  base.Stat,
			Value: statValue,
		},
		SubStats:  nil,
		SellPrice: sellPrice,
		ExpValue:  domain.NewDecimal(1),
	}
}
