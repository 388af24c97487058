package domain

// Rarity - редкость предмета. Порядок важен: от мусора к мифу.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

// Rarities перечисляет редкости в порядке возрастания.
var Rarities = []Rarity{
	RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic,
}

// Slot - слот экипировки. Всего 12, по одному предмету на слот.
type Slot string

const (
	SlotWeapon   Slot = "Weapon"
	SlotHelmet   Slot = "Helmet"
	SlotArmor    Slot = "Armor"
	SlotBoots    Slot = "Boots"
	SlotGloves   Slot = "Gloves"
	SlotPants    Slot = "Pants"
	SlotRing1    Slot = "Ring1"
	SlotRing2    Slot = "Ring2"
	SlotAmulet   Slot = "Amulet"
	SlotBracelet Slot = "Bracelet"
	SlotBelt     Slot = "Belt"
	SlotCape     Slot = "Cape"
)

// Slots перечисляет все слоты экипировки.
var Slots = []Slot{
	SlotWeapon, SlotHelmet, SlotArmor, SlotBoots, SlotGloves, SlotPants,
	SlotRing1, SlotRing2, SlotAmulet, SlotBracelet, SlotBelt, SlotCape,
}

// StatType - тип характеристики.
type StatType string

const (
	StatAttack  StatType = "Attack"
	StatHP      StatType = "HP"
	StatDefense StatType = "Defense"
	StatSpeed   StatType = "Speed"
)

// StatTypes перечисляет все характеристики.
var StatTypes = []StatType{StatAttack, StatHP, StatDefense, StatSpeed}

// Currency - вид валюты.
type Currency string

const (
	CurrencyLamps    Currency = "lamps"
	CurrencyGold     Currency = "gold"
	CurrencyDiamonds Currency = "diamonds"
)

// ParseCurrency конвертирует строку из JSON в Currency.
func ParseCurrency(s string) (Currency, bool) {
	switch Currency(s) {
	case CurrencyLamps, CurrencyGold, CurrencyDiamonds:
		return Currency(s), true
	}
	return "", false
}

// SkillKind - тип навыка: мгновенный урон или баф на время.
type SkillKind string

const (
	SkillDamage SkillKind = "Damage"
	SkillBuff   SkillKind = "Buff"
)

// BonusType - тип бонуса питомца.
type BonusType string

const (
	BonusGold   BonusType = "Gold"
	BonusLamps  BonusType = "Lamps"
	BonusAttack BonusType = "Attack"
	BonusHP     BonusType = "HP"
)

// SummonMode - режим пакетного призыва.
type SummonMode string

const (
	// SummonManual: лучшие предметы откладываются игроку на решение,
	// худшие продаются сразу.
	SummonManual SummonMode = "manual"
	// SummonAuto: лучшие предметы надеваются сами, худшие продаются сразу.
	SummonAuto SummonMode = "auto"
)
