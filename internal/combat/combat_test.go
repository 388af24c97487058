package combat

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
)

func setupCombatTest(t *testing.T) *Engine {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() failed: %v", err)
	}
	return NewEngine(rand.New(rand.NewSource(1)), c.Enemies)
}

func TestInitialState(t *testing.T) {
	e := setupCombatTest(t)

	if e.Stage() != 1 {
		t.Errorf("initial stage: expected 1, got %d", e.Stage())
	}
	if !e.AutoFight() {
		t.Error("auto fight should start enabled")
	}
	if e.Enemy() == nil {
		t.Fatal("enemy should spawn on construction")
	}
}

func TestEnemyScaling(t *testing.T) {
	e := setupCombatTest(t)

	first := e.Enemy()
	if got := first.MaxHP.String(); got != "30" {
		t.Errorf("stage 1 HP: expected 30, got %s", got)
	}
	if got := first.Attack.String(); got != "2" {
		t.Errorf("stage 1 attack: expected 2, got %s", got)
	}
	if got := first.Rewards.Gold.String(); got != "10" {
		t.Errorf("stage 1 gold: expected 10, got %s", got)
	}
	if !strings.HasPrefix(first.Name, "Slime") {
		t.Errorf("stage 1 enemy should be a Slime, got %q", first.Name)
	}

	e.SetStage(2)
	second := e.Enemy()
	// 30*1.2=36, 2*1.15=2.3 -> 2, 10*1.1=11
	if got := second.MaxHP.String(); got != "36" {
		t.Errorf("stage 2 HP: expected 36, got %s", got)
	}
	if got := second.Attack.String(); got != "2" {
		t.Errorf("stage 2 attack: expected 2, got %s", got)
	}
	if got := second.Rewards.Gold.String(); got != "11" {
		t.Errorf("stage 2 gold: expected 11, got %s", got)
	}
	if !strings.HasPrefix(second.Name, "Goblin") {
		t.Errorf("stage 2 enemy should be a Goblin, got %q", second.Name)
	}
}

func TestEnemyNameCycle(t *testing.T) {
	e := setupCombatTest(t)

	// 8 имен: стадия 9 снова Slime
	e.SetStage(9)
	if !strings.HasPrefix(e.Enemy().Name, "Slime") {
		t.Errorf("stage 9 enemy should cycle back to Slime, got %q", e.Enemy().Name)
	}
	if e.Enemy().Level != 9 {
		t.Errorf("enemy level should equal stage, got %d", e.Enemy().Level)
	}
}

func TestSetStageClamps(t *testing.T) {
	e := setupCombatTest(t)

	e.SetStage(-5)
	if e.Stage() != 1 {
		t.Errorf("stage should clamp to 1, got %d", e.Stage())
	}
}

func TestRetreatFloorsAtStageOne(t *testing.T) {
	e := setupCombatTest(t)

	e.Retreat()
	if e.Stage() != 1 {
		t.Errorf("retreat from stage 1 should stay at 1, got %d", e.Stage())
	}

	e.SetStage(5)
	e.Retreat()
	if e.Stage() != 4 {
		t.Errorf("retreat from stage 5: expected 4, got %d", e.Stage())
	}
}

func TestStrikeKillAdvancesStage(t *testing.T) {
	e := setupCombatTest(t)

	out := e.Strike(domain.NewDecimal(1000))
	if !out.EnemyDefeated {
		t.Fatal("overkill strike should defeat the enemy")
	}
	if got := out.GoldReward.String(); got != "10" {
		t.Errorf("gold reward: expected 10, got %s", got)
	}
	if e.Stage() != 2 {
		t.Errorf("stage after kill: expected 2, got %d", e.Stage())
	}
	if e.Enemy() == nil || e.Enemy().IsDead() {
		t.Error("fresh enemy should spawn after kill")
	}
}

func TestStrikePartialDamage(t *testing.T) {
	e := setupCombatTest(t)

	out := e.Strike(domain.NewDecimal(10))
	if out.EnemyDefeated {
		t.Fatal("10 damage should not kill a 30 HP enemy")
	}
	if got := e.Enemy().CurrentHP.String(); got != "20" {
		t.Errorf("enemy HP after strike: expected 20, got %s", got)
	}
}

func TestResolveTickCounterattack(t *testing.T) {
	e := setupCombatTest(t)

	out := e.ResolveTick(domain.NewDecimal(10), domain.DecimalZero)
	if out.EnemyDefeated {
		t.Fatal("enemy should survive the tick")
	}
	if got := out.DamageToPlayer.String(); got != "2" {
		t.Errorf("counterattack: expected 2, got %s", got)
	}
}

func TestResolveTickDamageFloor(t *testing.T) {
	e := setupCombatTest(t)

	// Защита выше атаки противника: урон не меньше 1
	out := e.ResolveTick(domain.NewDecimal(10), domain.NewDecimal(50))
	if got := out.DamageToPlayer.String(); got != "1" {
		t.Errorf("counterattack with high defense: expected 1, got %s", got)
	}
}

func TestResolveTickNoCounterAfterKill(t *testing.T) {
	e := setupCombatTest(t)

	out := e.ResolveTick(domain.NewDecimal(1000), domain.DecimalZero)
	if !out.EnemyDefeated {
		t.Fatal("overkill tick should defeat the enemy")
	}
	if !out.DamageToPlayer.IsZero() {
		t.Errorf("dead enemy should not counterattack, got %s", out.DamageToPlayer.String())
	}
}

func TestHealEnemy(t *testing.T) {
	e := setupCombatTest(t)

	e.Strike(domain.NewDecimal(10))
	e.HealEnemy()
	if !e.Enemy().CurrentHP.Eq(e.Enemy().MaxHP) {
		t.Error("healed enemy should be at full HP")
	}
}

func TestCombatSnapshotRestore(t *testing.T) {
	e := setupCombatTest(t)
	e.SetStage(7)
	e.ToggleAutoFight()

	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() failed: %v", err)
	}
	restored := NewEngine(rand.New(rand.NewSource(2)), c.Enemies)
	restored.Restore(e.Snapshot())

	if restored.Stage() != 7 {
		t.Errorf("restored stage: expected 7, got %d", restored.Stage())
	}
	if restored.AutoFight() {
		t.Error("restored auto fight flag mismatch")
	}
	if restored.Enemy() == nil || restored.Enemy().Level != 7 {
		t.Error("enemy should respawn for the restored stage")
	}
}
