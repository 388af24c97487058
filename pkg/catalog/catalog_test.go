package catalog

import (
	"testing"
	"time"

	"github.com/valentintorulya-hash/LoM/internal/domain"
)

func setupCatalogTest(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return c
}

func TestLoadCatalog(t *testing.T) {
	c := setupCatalogTest(t)

	if len(c.Skills) != 3 {
		t.Errorf("expected 3 skills, got %d", len(c.Skills))
	}
	if len(c.Classes) != 3 {
		t.Errorf("expected 3 classes, got %d", len(c.Classes))
	}
	if len(c.Pets) != 3 {
		t.Errorf("expected 3 pets, got %d", len(c.Pets))
	}
	if len(c.Evolutions) != 6 {
		t.Errorf("expected 6 evolution stages, got %d", len(c.Evolutions))
	}
	if len(c.Dungeons) != 4 {
		t.Errorf("expected 4 dungeons, got %d", len(c.Dungeons))
	}
	if len(c.Quests) != 3 {
		t.Errorf("expected 3 quests, got %d", len(c.Quests))
	}
	if len(c.Mail) != 2 {
		t.Errorf("expected 2 mails, got %d", len(c.Mail))
	}
	if len(c.Areas) != 3 {
		t.Errorf("expected 3 areas, got %d", len(c.Areas))
	}
}

func TestRarityRules(t *testing.T) {
	c := setupCatalogTest(t)

	totalWeight := 0
	for _, r := range c.Items.Rarities {
		totalWeight += r.Weight
	}
	if totalWeight != 1880 {
		t.Errorf("rarity weight sum: expected 1880, got %d", totalWeight)
	}

	first := c.Items.Rarities[0]
	if first.Rarity != domain.RarityCommon || first.Multiplier != 1.0 {
		t.Errorf("first rarity rule mismatch: %+v", first)
	}
	last := c.Items.Rarities[len(c.Items.Rarities)-1]
	if last.Rarity != domain.RarityMythic || last.Weight != 5 || last.Multiplier != 15.0 {
		t.Errorf("last rarity rule mismatch: %+v", last)
	}
}

func TestSlotBases(t *testing.T) {
	c := setupCatalogTest(t)

	weapon, ok := c.Items.SlotBases[domain.SlotWeapon]
	if !ok {
		t.Fatal("weapon slot base missing")
	}
	if weapon.Stat != domain.StatAttack || weapon.Base != 15 {
		t.Errorf("weapon base mismatch: %+v", weapon)
	}

	for _, slot := range domain.Slots {
		if len(c.Items.Nouns[slot]) != 5 {
			t.Errorf("slot %s: expected 5 nouns, got %d", slot, len(c.Items.Nouns[slot]))
		}
	}
}

func TestDungeonDefinitions(t *testing.T) {
	c := setupCatalogTest(t)

	boss := c.DungeonByID("boss_rush")
	if boss == nil {
		t.Fatal("boss_rush not found")
	}
	if boss.Cooldown != 24*time.Hour {
		t.Errorf("boss_rush cooldown: expected 24h, got %v", boss.Cooldown)
	}
	if boss.Waves != 5 || boss.Unbounded() {
		t.Errorf("boss_rush waves mismatch: waves=%d", boss.Waves)
	}
	if got := boss.Rewards.Gold.String(); got != "5000" {
		t.Errorf("boss_rush gold reward: expected 5000, got %s", got)
	}

	tower := c.DungeonByID("endless_tower")
	if tower == nil {
		t.Fatal("endless_tower not found")
	}
	if !tower.Unbounded() {
		t.Error("endless_tower should be unbounded")
	}
	if tower.Cooldown != 0 {
		t.Errorf("endless_tower cooldown: expected 0, got %v", tower.Cooldown)
	}
}

func TestSkillDefinitions(t *testing.T) {
	c := setupCatalogTest(t)

	rage := c.SkillByID("rage")
	if rage == nil {
		t.Fatal("rage not found")
	}
	if rage.Kind != domain.SkillBuff {
		t.Errorf("rage kind: expected Buff, got %s", rage.Kind)
	}
	if rage.Cooldown != 15*time.Second || rage.Duration != 5*time.Second {
		t.Errorf("rage timing mismatch: cd=%v dur=%v", rage.Cooldown, rage.Duration)
	}
	if rage.UnlockStage != 5 {
		t.Errorf("rage unlock stage: expected 5, got %d", rage.UnlockStage)
	}

	if c.SkillByID("unknown") != nil {
		t.Error("lookup of unknown skill should return nil")
	}
}

func TestClassDefinitions(t *testing.T) {
	c := setupCatalogTest(t)

	mage := c.ClassByID("mage")
	if mage == nil {
		t.Fatal("mage not found")
	}
	if mage.Stats[domain.StatAttack] != 1.5 {
		t.Errorf("mage attack multiplier: expected 1.5, got %v", mage.Stats[domain.StatAttack])
	}
	if mage.Special.ID != "meteor" || mage.Special.DamageMultiplier != 3.0 {
		t.Errorf("mage special mismatch: %+v", mage.Special)
	}
}

func TestEvolutionChain(t *testing.T) {
	c := setupCatalogTest(t)

	if idx := c.EvolutionIndex("spore"); idx != 0 {
		t.Errorf("spore index: expected 0, got %d", idx)
	}
	if idx := c.EvolutionIndex("mushroom_god"); idx != 5 {
		t.Errorf("mushroom_god index: expected 5, got %d", idx)
	}
	if idx := c.EvolutionIndex("slime_lord"); idx != -1 {
		t.Errorf("unknown evolution index: expected -1, got %d", idx)
	}

	king := c.Evolutions[4]
	if king.Bonuses["lamps"] != 2.0 {
		t.Errorf("mushroom_king lamp bonus: expected 2.0, got %v", king.Bonuses["lamps"])
	}
	if got := king.CostDiamonds.String(); got != "200" {
		t.Errorf("mushroom_king diamond cost: expected 200, got %s", got)
	}
}

func TestEconomyRules(t *testing.T) {
	c := setupCatalogTest(t)

	if c.Economy.LampsPerMinute != 5 {
		t.Errorf("lamps per minute: expected 5, got %v", c.Economy.LampsPerMinute)
	}
	if c.Economy.BaseStats[domain.StatHP] != 100 {
		t.Errorf("base HP: expected 100, got %v", c.Economy.BaseStats[domain.StatHP])
	}
	if c.AFK.GoldPerMinute != 50 || c.AFK.MaxOfflineMinutes != 720 {
		t.Errorf("afk rules mismatch: %+v", c.AFK)
	}
	if c.Arena.StartRank != 5200 || len(c.Arena.Names) != 6 {
		t.Errorf("arena rules mismatch: %+v", c.Arena)
	}
}

func TestAreaLookup(t *testing.T) {
	c := setupCatalogTest(t)

	glen := c.AreaByID("mushroom-glen")
	if glen == nil {
		t.Fatal("mushroom-glen not found")
	}
	if glen.StartStage != 26 || glen.EndStage != 60 {
		t.Errorf("mushroom-glen stage range mismatch: %+v", glen)
	}
}
