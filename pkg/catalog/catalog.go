// Package catalog хранит статические определения игрового контента:
// навыки, классы, питомцы, эволюции, подземелья, квесты, почта, карта
// и правила генерации предметов и врагов.
//
// Данные лежат в embedded YAML (data/*.yaml) и парсятся один раз при
// старте. Балансные числа - данные, а не код: их правит геймдизайнер,
// не трогая движок.
package catalog

import (
	"embed"
	"time"

	"github.com/valentintorulya-hash/LoM/internal/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

// --- ТИПЫ КАТАЛОГА ---

// Skill - определение боевого навыка.
type Skill struct {
	ID          string
	Name        string
	Kind        domain.SkillKind
	Cooldown    time.Duration
	Duration    time.Duration // Только для бафов
	Value       float64       // Множитель урона/бафа либо доля лечения
	UnlockStage int
}

// ClassSkill - особый навык класса.
type ClassSkill struct {
	ID               string
	Name             string
	Cooldown         time.Duration
	DamageMultiplier float64
}

// Class - игровой класс с базовыми множителями статов.
type Class struct {
	ID          string
	Name        string
	Description string
	Stats       map[domain.StatType]float64
	Special     ClassSkill
}

// Pet - питомец с пассивным бонусом.
type Pet struct {
	ID          string
	Name        string
	Description string
	BonusType   domain.BonusType
	BonusValue  float64
	UnlockCost  domain.Decimal
}

// EvolutionStage - ступень эволюции.
type EvolutionStage struct {
	ID          string
	Name        string
	Description string
	ReqLevel    int
	ReqStage    int
	// Bonuses - множители по ключам attack/hp/defense/speed/lamps.
	// Отсутствующий ключ означает множитель 1.
	Bonuses      map[string]float64
	CostGold     domain.Decimal // Ноль = бесплатно
	CostDiamonds domain.Decimal
}

// Dungeon - определение подземелья.
type Dungeon struct {
	ID          string
	Name        string
	Description string
	Cooldown    time.Duration
	ReqLevel    int
	ReqStage    int
	Waves       int // 0 = бесконечная башня
	Rewards     Rewards
}

// Unbounded сообщает, что у подземелья нет конечного числа волн.
func (d Dungeon) Unbounded() bool {
	return d.Waves <= 0
}

// Rewards - пакет наград (для подземелий, квестов, почты).
type Rewards struct {
	Gold     domain.Decimal
	Diamonds domain.Decimal
	Lamps    domain.Decimal
}

// Quest - ежедневный квест.
type Quest struct {
	ID          string
	Title       string
	Description string
	Progress    int // Стартовый прогресс
	Goal        int
	Rewards     Rewards
}

// Mail - письмо с наградой.
type Mail struct {
	ID      string
	Title   string
	Body    string
	Rewards Rewards
}

// Area - зона карты, задающая диапазон стадий.
type Area struct {
	ID          string
	Name        string
	Description string
	StartStage  int
	EndStage    int
}

// RarityRule - вес и множитель редкости для генератора предметов.
type RarityRule struct {
	Rarity     domain.Rarity
	Weight     int
	Multiplier float64
}

// SlotBase - базовый стат слота экипировки.
type SlotBase struct {
	Stat domain.StatType
	Base float64
}

// ItemRules - правила генерации предметов.
type ItemRules struct {
	Rarities  []RarityRule
	SlotBases map[domain.Slot]SlotBase
	Nouns     map[domain.Slot][]string
}

// EnemyRules - базы и кривые роста врагов.
type EnemyRules struct {
	Names        []string
	BaseHP       float64
	BaseAttack   float64
	BaseDefense  float64
	BaseGold     float64
	HPGrowth     float64
	AttackGrowth float64
	RewardGrowth float64
}

// EconomyRules - стартовые параметры экономики и героя.
type EconomyRules struct {
	LampsPerMinute float64
	BaseStats      map[domain.StatType]float64
}

// AFKRules - параметры офлайн-наград.
type AFKRules struct {
	GoldPerMinute     float64
	MaxOfflineMinutes int
	ThresholdMinutes  int
}

// ArenaRules - параметры арены.
type ArenaRules struct {
	StartRank     int
	OpponentCount int
	Names         []string
	DailyGold     float64
	DailyDiamonds float64
}

// Catalog - весь статический контент игры.
type Catalog struct {
	Skills     []Skill
	Classes    []Class
	Pets       []Pet
	Evolutions []EvolutionStage
	Dungeons   []Dungeon
	Quests     []Quest
	Mail       []Mail
	Areas      []Area

	Items   ItemRules
	Enemies EnemyRules
	Economy EconomyRules
	AFK     AFKRules
	Arena   ArenaRules
}

// --- ПОИСК ---

// SkillByID возвращает навык по ID (nil, если нет).
func (c *Catalog) SkillByID(id string) *Skill {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i]
		}
	}
	return nil
}

// ClassByID возвращает класс по ID (nil, если нет).
func (c *Catalog) ClassByID(id string) *Class {
	for i := range c.Classes {
		if c.Classes[i].ID == id {
			return &c.Classes[i]
		}
	}
	return nil
}

// PetByID возвращает питомца по ID (nil, если нет).
func (c *Catalog) PetByID(id string) *Pet {
	for i := range c.Pets {
		if c.Pets[i].ID == id {
			return &c.Pets[i]
		}
	}
	return nil
}

// DungeonByID возвращает подземелье по ID (nil, если нет).
func (c *Catalog) DungeonByID(id string) *Dungeon {
	for i := range c.Dungeons {
		if c.Dungeons[i].ID == id {
			return &c.Dungeons[i]
		}
	}
	return nil
}

// EvolutionIndex возвращает позицию ступени в цепочке (-1, если нет).
func (c *Catalog) EvolutionIndex(id string) int {
	for i := range c.Evolutions {
		if c.Evolutions[i].ID == id {
			return i
		}
	}
	return -1
}

// AreaByID возвращает зону карты по ID (nil, если нет).
func (c *Catalog) AreaByID(id string) *Area {
	for i := range c.Areas {
		if c.Areas[i].ID == id {
			return &c.Areas[i]
		}
	}
	return nil
}
