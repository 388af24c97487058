package activities

import (
	"testing"
	"time"

	"github.com/valentintorulya-hash/LoM/internal/domain"
)

func setupDungeonsTest(t *testing.T) *Dungeons {
	return NewDungeons(loadCatalog(t).Dungeons)
}

func TestCanEnterRequirements(t *testing.T) {
	d := setupDungeonsTest(t)

	// boss_rush: уровень 10, стадия 20
	if d.CanEnter("boss_rush", 9, 20, testNow) {
		t.Error("entry below required level should be blocked")
	}
	if d.CanEnter("boss_rush", 10, 19, testNow) {
		t.Error("entry below required stage should be blocked")
	}
	if !d.CanEnter("boss_rush", 10, 20, testNow) {
		t.Error("entry with requirements met should be allowed")
	}
	if d.CanEnter("void_keep", 99, 999, testNow) {
		t.Error("unknown dungeon should be rejected")
	}
}

func TestEnterBlocksSecondAttempt(t *testing.T) {
	d := setupDungeonsTest(t)

	if !d.Enter("boss_rush", 10, 20, testNow) {
		t.Fatal("first entry should succeed")
	}
	if d.Enter("boss_rush", 10, 20, testNow) {
		t.Error("entry while an attempt is active should fail")
	}

	attempt := d.Attempt("boss_rush")
	if attempt == nil || attempt.CurrentWave != 1 || attempt.MaxWaveReached != 0 || !attempt.Active {
		t.Errorf("fresh attempt shape mismatch: %+v", attempt)
	}
}

func TestTowerReentry(t *testing.T) {
	d := setupDungeonsTest(t)

	if !d.Enter("endless_tower", 20, 40, testNow) {
		t.Fatal("tower entry should succeed")
	}
	// Башню можно перезайти даже при активном заходе
	if !d.Enter("endless_tower", 20, 40, testNow) {
		t.Error("tower re-entry should be allowed")
	}
}

func TestCompleteWaveFinishesDungeon(t *testing.T) {
	d := setupDungeonsTest(t)
	d.Enter("gold_mine", 5, 10, testNow)

	d.CompleteWave("gold_mine", 1)
	d.CompleteWave("gold_mine", 2)
	if !d.IsActive("gold_mine") {
		t.Fatal("dungeon should still be active before the last wave")
	}

	d.CompleteWave("gold_mine", 3)
	if d.IsActive("gold_mine") {
		t.Error("clearing the last wave should finish the attempt")
	}
	if got := d.Attempt("gold_mine").MaxWaveReached; got != 3 {
		t.Errorf("max wave reached: expected 3, got %d", got)
	}
}

func TestTowerHighestFloor(t *testing.T) {
	d := setupDungeonsTest(t)
	d.Enter("endless_tower", 20, 40, testNow)

	d.CompleteWave("endless_tower", 1)
	d.CompleteWave("endless_tower", 2)
	d.CompleteWave("endless_tower", 3)
	if got := d.TowerHighestFloor(); got != 3 {
		t.Errorf("tower highest floor: expected 3, got %d", got)
	}

	// Новый заход хуже рекорда не снижает его
	d.Enter("endless_tower", 20, 40, testNow)
	d.CompleteWave("endless_tower", 1)
	if got := d.TowerHighestFloor(); got != 3 {
		t.Errorf("tower record should persist, got %d", got)
	}
}

func TestClaimPartialReward(t *testing.T) {
	d := setupDungeonsTest(t)
	w := fundedWallet(0, 0)

	d.Enter("boss_rush", 10, 20, testNow)
	d.CompleteWave("boss_rush", 1)
	d.CompleteWave("boss_rush", 2)
	d.CompleteWave("boss_rush", 3)
	d.Fail("boss_rush")

	// 3 из 5 волн: золото 5000*0.6=3000, алмазы 10*0.6=6, лампы 20*0.6=12
	events, ok := d.Claim("boss_rush", 1, w, testNow)
	if !ok {
		t.Fatal("claim after failed attempt should still pay out partial rewards")
	}
	if got := w.Balance(domain.CurrencyGold).String(); got != "3000" {
		t.Errorf("partial gold: expected 3000, got %s", got)
	}
	if got := w.Balance(domain.CurrencyDiamonds).String(); got != "6" {
		t.Errorf("partial diamonds: expected 6, got %s", got)
	}
	if got := w.Balance(domain.CurrencyLamps).String(); got != "12" {
		t.Errorf("partial lamps: expected 12, got %s", got)
	}
	if len(events) != 1 || events[0].Kind != domain.EventDungeon {
		t.Errorf("expected one DUNGEON event, got %+v", events)
	}
	if d.Attempt("boss_rush") != nil {
		t.Error("claim should clear the attempt")
	}
}

func TestClaimFullRewardWithLampBonus(t *testing.T) {
	d := setupDungeonsTest(t)
	w := fundedWallet(0, 0)

	d.Enter("lamp_sanctuary", 15, 30, testNow)
	for wave := 1; wave <= 4; wave++ {
		d.CompleteWave("lamp_sanctuary", wave)
	}

	// Полное прохождение с бонусом эволюции x2: лампы 50*1*2=100
	if _, ok := d.Claim("lamp_sanctuary", 2, w, testNow); !ok {
		t.Fatal("claim of a cleared dungeon should succeed")
	}
	if got := w.Balance(domain.CurrencyLamps).String(); got != "100" {
		t.Errorf("lamps with evolution bonus: expected 100, got %s", got)
	}
	if got := w.Balance(domain.CurrencyGold).String(); got != "1000" {
		t.Errorf("gold: expected 1000, got %s", got)
	}
}

func TestClaimRequiresFinishedAttempt(t *testing.T) {
	d := setupDungeonsTest(t)
	w := fundedWallet(0, 0)

	if _, ok := d.Claim("boss_rush", 1, w, testNow); ok {
		t.Error("claim without an attempt should fail")
	}

	d.Enter("boss_rush", 10, 20, testNow)
	if _, ok := d.Claim("boss_rush", 1, w, testNow); ok {
		t.Error("claim of an active attempt should fail")
	}
}

func TestClaimSetsCooldown(t *testing.T) {
	d := setupDungeonsTest(t)
	w := fundedWallet(0, 0)

	d.Enter("boss_rush", 10, 20, testNow)
	for wave := 1; wave <= 5; wave++ {
		d.CompleteWave("boss_rush", wave)
	}
	d.Claim("boss_rush", 1, w, testNow)

	if d.CanEnter("boss_rush", 10, 20, testNow) {
		t.Error("dungeon should be on cooldown right after claim")
	}
	if got := d.CooldownRemaining("boss_rush", testNow); got != 24*time.Hour {
		t.Errorf("cooldown remaining: expected 24h, got %v", got)
	}
	if !d.CanEnter("boss_rush", 10, 20, testNow.Add(24*time.Hour)) {
		t.Error("dungeon should reopen after the cooldown")
	}
}

func TestTowerClaimCapsMultiplier(t *testing.T) {
	d := setupDungeonsTest(t)
	w := fundedWallet(0, 0)

	d.Enter("endless_tower", 20, 40, testNow)
	for wave := 1; wave <= 15; wave++ {
		d.CompleteWave("endless_tower", wave)
	}
	d.Fail("endless_tower")

	// Множитель башни ограничен 10: золото 2000*10=20000
	d.Claim("endless_tower", 1, w, testNow)
	if got := w.Balance(domain.CurrencyGold).String(); got != "20000" {
		t.Errorf("tower gold with capped multiplier: expected 20000, got %s", got)
	}
	// Башня без кулдауна: вход сразу доступен
	if !d.CanEnter("endless_tower", 20, 40, testNow) {
		t.Error("tower has no cooldown after claim")
	}
}

func TestSkipCooldown(t *testing.T) {
	d := setupDungeonsTest(t)
	w := fundedWallet(0, 100)

	d.Enter("boss_rush", 10, 20, testNow)
	for wave := 1; wave <= 5; wave++ {
		d.CompleteWave("boss_rush", wave)
	}
	d.Claim("boss_rush", 1, fundedWallet(0, 0), testNow)

	// Остаток 24ч: цена 24 алмаза
	if !d.SkipCooldown("boss_rush", w, testNow) {
		t.Fatal("skip with enough diamonds should succeed")
	}
	if got := w.Balance(domain.CurrencyDiamonds).String(); got != "76" {
		t.Errorf("diamonds after skip: expected 76, got %s", got)
	}
	if !d.CanEnter("boss_rush", 10, 20, testNow) {
		t.Error("dungeon should be enterable after skip")
	}

	// Без кулдауна пропускать нечего
	if d.SkipCooldown("boss_rush", w, testNow) {
		t.Error("skip without an active cooldown should fail")
	}
}

func TestSkipCooldownMinimumCost(t *testing.T) {
	d := setupDungeonsTest(t)
	w := fundedWallet(0, 100)

	d.Enter("gold_mine", 5, 10, testNow)
	for wave := 1; wave <= 3; wave++ {
		d.CompleteWave("gold_mine", wave)
	}
	d.Claim("gold_mine", 1, fundedWallet(0, 0), testNow)

	// Остаток 4ч, но минимум 5 алмазов
	if !d.SkipCooldown("gold_mine", w, testNow) {
		t.Fatal("skip should succeed")
	}
	if got := w.Balance(domain.CurrencyDiamonds).String(); got != "95" {
		t.Errorf("diamonds after minimum-cost skip: expected 95, got %s", got)
	}
}

func TestDungeonSnapshotRestore(t *testing.T) {
	d := setupDungeonsTest(t)
	d.Enter("endless_tower", 20, 40, testNow)
	d.CompleteWave("endless_tower", 5)

	restored := setupDungeonsTest(t)
	restored.Restore(d.Snapshot())

	if restored.TowerHighestFloor() != 5 {
		t.Errorf("restored tower floor: expected 5, got %d", restored.TowerHighestFloor())
	}
	if !restored.IsActive("endless_tower") {
		t.Error("restored attempt should stay active")
	}
}
