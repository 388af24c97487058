package catalog

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/valentintorulya-hash/LoM/internal/domain"
)

// --- RAW-СТРУКТУРЫ YAML ---
// Сырые числа из файлов конвертируются в доменные типы (Decimal,
// time.Duration) на этапе загрузки, чтобы дальше по коду жили
// только готовые значения.

type rawRewards struct {
	Gold     float64 `yaml:"gold"`
	Diamonds float64 `yaml:"diamonds"`
	Lamps    float64 `yaml:"lamps"`
}

func (r rawRewards) build() Rewards {
	return Rewards{
		Gold:     domain.NewDecimal(r.Gold),
		Diamonds: domain.NewDecimal(r.Diamonds),
		Lamps:    domain.NewDecimal(r.Lamps),
	}
}

type rawSkill struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Kind        string  `yaml:"kind"`
	CooldownMs  int     `yaml:"cooldown_ms"`
	DurationMs  int     `yaml:"duration_ms"`
	Value       float64 `yaml:"value"`
	UnlockStage int     `yaml:"unlock_stage"`
}

type rawClass struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Stats       map[string]float64 `yaml:"stats"`
	Special     struct {
		ID               string  `yaml:"id"`
		Name             string  `yaml:"name"`
		CooldownMs       int     `yaml:"cooldown_ms"`
		DamageMultiplier float64 `yaml:"damage_multiplier"`
	} `yaml:"special"`
}

type rawPet struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	BonusType   string  `yaml:"bonus_type"`
	BonusValue  float64 `yaml:"bonus_value"`
	UnlockCost  float64 `yaml:"unlock_cost"`
}

type rawEvolution struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	ReqLevel    int                `yaml:"req_level"`
	ReqStage    int                `yaml:"req_stage"`
	Bonuses     map[string]float64 `yaml:"bonuses"`
	Cost        struct {
		Gold     float64 `yaml:"gold"`
		Diamonds float64 `yaml:"diamonds"`
	} `yaml:"cost"`
}

type rawDungeon struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	CooldownMs  int64      `yaml:"cooldown_ms"`
	ReqLevel    int        `yaml:"req_level"`
	ReqStage    int        `yaml:"req_stage"`
	Waves       int        `yaml:"waves"`
	Rewards     rawRewards `yaml:"rewards"`
}

type rawQuest struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Progress    int        `yaml:"progress"`
	Goal        int        `yaml:"goal"`
	Rewards     rawRewards `yaml:"rewards"`
}

type rawMail struct {
	ID      string     `yaml:"id"`
	Title   string     `yaml:"title"`
	Body    string     `yaml:"body"`
	Rewards rawRewards `yaml:"rewards"`
}

type rawArea struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	StartStage  int    `yaml:"start_stage"`
	EndStage    int    `yaml:"end_stage"`
}

type rawRules struct {
	Items struct {
		Rarities []struct {
			Rarity     string  `yaml:"rarity"`
			Weight     int     `yaml:"weight"`
			Multiplier float64 `yaml:"multiplier"`
		} `yaml:"rarities"`
		Slots map[string]struct {
			Stat  string   `yaml:"stat"`
			Base  float64  `yaml:"base"`
			Nouns []string `yaml:"nouns"`
		} `yaml:"slots"`
	} `yaml:"items"`

	Enemies struct {
		Names        []string `yaml:"names"`
		BaseHP       float64  `yaml:"base_hp"`
		BaseAttack   float64  `yaml:"base_attack"`
		BaseDefense  float64  `yaml:"base_defense"`
		BaseGold     float64  `yaml:"base_gold"`
		HPGrowth     float64  `yaml:"hp_growth"`
		AttackGrowth float64  `yaml:"attack_growth"`
		RewardGrowth float64  `yaml:"reward_growth"`
	} `yaml:"enemies"`

	Economy struct {
		LampsPerMinute float64            `yaml:"lamps_per_minute"`
		BaseStats      map[string]float64 `yaml:"base_stats"`
	} `yaml:"economy"`

	AFK struct {
		GoldPerMinute     float64 `yaml:"gold_per_minute"`
		MaxOfflineMinutes int     `yaml:"max_offline_minutes"`
		ThresholdMinutes  int     `yaml:"threshold_minutes"`
	} `yaml:"afk"`

	Arena struct {
		StartRank     int      `yaml:"start_rank"`
		OpponentCount int      `yaml:"opponent_count"`
		Names         []string `yaml:"names"`
		DailyGold     float64  `yaml:"daily_gold"`
		DailyDiamonds float64  `yaml:"daily_diamonds"`
	} `yaml:"arena"`
}

// Load парсит embedded YAML и собирает каталог.
// Ошибка здесь - дефект сборки, не рантайма: файлы зашиты в бинарник.
func Load() (*Catalog, error) {
	c := &Catalog{}

	var skills []rawSkill
	if err := unmarshalFile("data/skills.yaml", &skills); err != nil {
		return nil, err
	}
	for _, s := range skills {
		c.Skills = append(c.Skills, Skill{
			ID:          s.ID,
			Name:        s.Name,
			Kind:        domain.SkillKind(s.Kind),
			Cooldown:    time.Duration(s.CooldownMs) * time.Millisecond,
			Duration:    time.Duration(s.DurationMs) * time.Millisecond,
			Value:       s.Value,
			UnlockStage: s.UnlockStage,
		})
	}

	var classes []rawClass
	if err := unmarshalFile("data/classes.yaml", &classes); err != nil {
		return nil, err
	}
	for _, cl := range classes {
		stats := make(map[domain.StatType]float64, len(cl.Stats))
		for k, v := range cl.Stats {
			stats[domain.StatType(k)] = v
		}
		c.Classes = append(c.Classes, Class{
			ID:          cl.ID,
			Name:        cl.Name,
			Description: cl.Description,
			Stats:       stats,
			Special: ClassSkill{
				ID:               cl.Special.ID,
				Name:             cl.Special.Name,
				Cooldown:         time.Duration(cl.Special.CooldownMs) * time.Millisecond,
				DamageMultiplier: cl.Special.DamageMultiplier,
			},
		})
	}

	var pets []rawPet
	if err := unmarshalFile("data/pets.yaml", &pets); err != nil {
		return nil, err
	}
	for _, p := range pets {
		c.Pets = append(c.Pets, Pet{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			BonusType:   domain.BonusType(p.BonusType),
			BonusValue:  p.BonusValue,
			UnlockCost:  domain.NewDecimal(p.UnlockCost),
		})
	}

	var evolutions []rawEvolution
	if err := unmarshalFile("data/evolutions.yaml", &evolutions); err != nil {
		return nil, err
	}
	for _, e := range evolutions {
		c.Evolutions = append(c.Evolutions, EvolutionStage{
			ID:           e.ID,
			Name:         e.Name,
			Description:  e.Description,
			ReqLevel:     e.ReqLevel,
			ReqStage:     e.ReqStage,
			Bonuses:      e.Bonuses,
			CostGold:     domain.NewDecimal(e.Cost.Gold),
			CostDiamonds: domain.NewDecimal(e.Cost.Diamonds),
		})
	}

	var dungeons []rawDungeon
	if err := unmarshalFile("data/dungeons.yaml", &dungeons); err != nil {
		return nil, err
	}
	for _, d := range dungeons {
		c.Dungeons = append(c.Dungeons, Dungeon{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Cooldown:    time.Duration(d.CooldownMs) * time.Millisecond,
			ReqLevel:    d.ReqLevel,
			ReqStage:    d.ReqStage,
			Waves:       d.Waves,
			Rewards:     d.Rewards.build(),
		})
	}

	var quests []rawQuest
	if err := unmarshalFile("data/quests.yaml", &quests); err != nil {
		return nil, err
	}
	for _, q := range quests {
		c.Quests = append(c.Quests, Quest{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Progress:    q.Progress,
			Goal:        q.Goal,
			Rewards:     q.Rewards.build(),
		})
	}

	var mail []rawMail
	if err := unmarshalFile("data/mail.yaml", &mail); err != nil {
		return nil, err
	}
	for _, m := range mail {
		c.Mail = append(c.Mail, Mail{
			ID:      m.ID,
			Title:   m.Title,
			Body:    m.Body,
			Rewards: m.Rewards.build(),
		})
	}

	var areas []rawArea
	if err := unmarshalFile("data/areas.yaml", &areas); err != nil {
		return nil, err
	}
	for _, a := range areas {
		c.Areas = append(c.Areas, Area{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			StartStage:  a.StartStage,
			EndStage:    a.EndStage,
		})
	}

	var rules rawRules
	if err := unmarshalFile("data/rules.yaml", &rules); err != nil {
		return nil, err
	}

	c.Items = ItemRules{
		SlotBases: make(map[domain.Slot]SlotBase),
		Nouns:     make(map[domain.Slot][]string),
	}
	for _, r := range rules.Items.Rarities {
		c.Items.Rarities = append(c.Items.Rarities, RarityRule{
			Rarity:     domain.Rarity(r.Rarity),
			Weight:     r.Weight,
			Multiplier: r.Multiplier,
		})
	}
	for slot, s := range rules.Items.Slots {
		c.Items.SlotBases[domain.Slot(slot)] = SlotBase{
			Stat: domain.StatType(s.Stat),
			Base: s.Base,
		}
		c.Items.Nouns[domain.Slot(slot)] = s.Nouns
	}

	c.Enemies = EnemyRules{
		Names:        rules.Enemies.Names,
		BaseHP:       rules.Enemies.BaseHP,
		BaseAttack:   rules.Enemies.BaseAttack,
		BaseDefense:  rules.Enemies.BaseDefense,
		BaseGold:     rules.Enemies.BaseGold,
		HPGrowth:     rules.Enemies.HPGrowth,
		AttackGrowth: rules.Enemies.AttackGrowth,
		RewardGrowth: rules.Enemies.RewardGrowth,
	}

	c.Economy = EconomyRules{
		LampsPerMinute: rules.Economy.LampsPerMinute,
		BaseStats:      make(map[domain.StatType]float64),
	}
	for k, v := range rules.Economy.BaseStats {
		c.Economy.BaseStats[domain.StatType(k)] = v
	}

	c.AFK = AFKRules{
		GoldPerMinute:     rules.AFK.GoldPerMinute,
		MaxOfflineMinutes: rules.AFK.MaxOfflineMinutes,
		ThresholdMinutes:  rules.AFK.ThresholdMinutes,
	}

	c.Arena = ArenaRules{
		StartRank:     rules.Arena.StartRank,
		OpponentCount: rules.Arena.OpponentCount,
		Names:         rules.Arena.Names,
		DailyGold:     rules.Arena.DailyGold,
		DailyDiamonds: rules.Arena.DailyDiamonds,
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func unmarshalFile(path string, out any) error {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return nil
}

// validate проверяет минимальную целостность каталога.
func (c *Catalog) validate() error {
	if len(c.Items.Rarities) != len(domain.Rarities) {
		return fmt.Errorf("catalog: expected %d rarity rules, got %d", len(domain.Rarities), len(c.Items.Rarities))
	}
	for _, slot := range domain.Slots {
		if _, ok := c.Items.SlotBases[slot]; !ok {
			return fmt.Errorf("catalog: missing base stat for slot %s", slot)
		}
	}
	if len(c.Enemies.Names) == 0 {
		return fmt.Errorf("catalog: enemy name list is empty")
	}
	if len(c.Evolutions) == 0 {
		return fmt.Errorf("catalog: evolution chain is empty")
	}
	return nil
}
