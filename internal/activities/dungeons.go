package activities

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

// Минимальная цена пропуска кулдауна в алмазах.
const skipCooldownMinCost = 5

// Attempt - текущий заход в подземелье.
type Attempt struct {
	DungeonID      string    `json:"dungeonId"`
	CurrentWave    int       `json:"currentWave"`
	MaxWaveReached int       `json:"maxWaveReached"`
	Active         bool      `json:"active"`
	StartedAt      time.Time `json:"startedAt"`
}

// Dungeons - кулдауны и заходы по подземельям.
type Dungeons struct {
	defs []catalog.Dungeon

	// cooldowns: id -> момент готовности.
	cooldowns map[string]time.Time
	attempts  map[string]*Attempt

	towerHighestFloor int
}

// NewDungeons создает состояние подземелий.
func NewDungeons(defs []catalog.Dungeon) *Dungeons {
	return &Dungeons{
		defs:      defs,
		cooldowns: make(map[string]time.Time),
		attempts:  make(map[string]*Attempt),
	}
}

func (d *Dungeons) find(id string) *catalog.Dungeon {
	for i := range d.defs {
		if d.defs[i].ID == id {
			return &d.defs[i]
		}
	}
	return nil
}

// Attempt возвращает текущий заход (nil, если захода нет).
func (d *Dungeons) Attempt(id string) *Attempt {
	return d.attempts[id]
}

// IsActive сообщает, идет ли заход в подземелье.
func (d *Dungeons) IsActive(id string) bool {
	a := d.attempts[id]
	return a != nil && a.Active
}

// TowerHighestFloor возвращает рекорд этажей бесконечной башни.
func (d *Dungeons) TowerHighestFloor() int {
	return d.towerHighestFloor
}

// CooldownRemaining возвращает остаток кулдауна (0, если готово).
func (d *Dungeons) CooldownRemaining(id string, now time.Time) time.Duration {
	readyAt, ok := d.cooldowns[id]
	if !ok || !now.Before(readyAt) {
		return 0
	}
	return readyAt.Sub(now)
}

// CanEnter проверяет требования входа: уровень героя, стадию боя,
// кулдаун и отсутствие активного захода (башня - исключение,
// ее можно перезаходить).
func (d *Dungeons) CanEnter(id string, playerLevel, combatStage int, now time.Time) bool {
	dungeon := d.find(id)
	if dungeon == nil {
		return false
	}
	if playerLevel < dungeon.ReqLevel || combatStage < dungeon.ReqStage {
		return false
	}
	if d.CooldownRemaining(id, now) > 0 {
		return false
	}
	if !dungeon.Unbounded() && d.IsActive(id) {
		return false
	}
	return true
}

// Enter начинает заход: первая волна, рекорд волн обнулен.
func (d *Dungeons) Enter(id string, playerLevel, combatStage int, now time.Time) bool {
	if !d.CanEnter(id, playerLevel, combatStage, now) {
		return false
	}

	d.attempts[id] = &Attempt{
		DungeonID:      id,
		CurrentWave:    1,
		MaxWaveReached: 0,
		Active:         true,
		StartedAt:      now,
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "activities",
		"dungeon":   id,
	}).Info("Dungeon entered.")
	return true
}

// CompleteWave отмечает волну пройденной. Последняя волна конечного
// подземелья завершает заход; в башне растет рекорд этажей.
func (d *Dungeons) CompleteWave(id string, wave int) bool {
	attempt := d.attempts[id]
	dungeon := d.find(id)
	if attempt == nil || dungeon == nil {
		return false
	}

	attempt.CurrentWave = wave + 1
	if wave > attempt.MaxWaveReached {
		attempt.MaxWaveReached = wave
	}
	if !dungeon.Unbounded() && wave >= dungeon.Waves {
		attempt.Active = false
	}

	if dungeon.Unbounded() && wave > d.towerHighestFloor {
		d.towerHighestFloor = wave
	}
	return true
}

// Fail завершает заход поражением. Пройденные волны сохраняются
// для расчета частичной награды.
func (d *Dungeons) Fail(id string) bool {
	attempt := d.attempts[id]
	if attempt == nil {
		return false
	}
	attempt.Active = false
	return true
}

// Claim выдает награду за завершенный заход и ставит кулдаун.
// Награда масштабируется долей пройденных волн; в башне множитель
// равен числу этажей с потолком 10. Награда лампами дополнительно
// умножается на бонус эволюции.
func (d *Dungeons) Claim(id string, lampBonus float64, wallet Wallet, now time.Time) ([]domain.Event, bool) {
	dungeon := d.find(id)
	attempt := d.attempts[id]
	if dungeon == nil || attempt == nil || attempt.Active {
		return nil, false
	}

	var waveMult float64
	if dungeon.Unbounded() {
		waveMult = math.Min(float64(attempt.MaxWaveReached), 10)
	} else {
		waveMult = float64(attempt.MaxWaveReached) / float64(dungeon.Waves)
	}
	if lampBonus <= 0 {
		lampBonus = 1
	}

	gold := dungeon.Rewards.Gold.MulFloat(waveMult)
	diamonds := dungeon.Rewards.Diamonds.MulFloat(waveMult)
	lamps := dungeon.Rewards.Lamps.MulFloat(waveMult).MulFloat(lampBonus)

	wallet.Add(domain.CurrencyGold, gold)
	wallet.Add(domain.CurrencyDiamonds, diamonds)
	wallet.Add(domain.CurrencyLamps, lamps)

	if dungeon.Cooldown > 0 {
		d.cooldowns[id] = now.Add(dungeon.Cooldown)
	}
	delete(d.attempts, id)

	logger.Log.WithFields(logrus.Fields{
		"component": "activities",
		"dungeon":   id,
		"gold":      gold.String(),
		"diamonds":  diamonds.String(),
		"lamps":     lamps.String(),
	}).Info("Dungeon rewards claimed.")

	return []domain.Event{{
		Kind:    domain.EventDungeon,
		Title:   "Dungeon Complete!",
		Message: fmt.Sprintf("%s cleared: +%s gold, +%s diamonds, +%s lamps.", dungeon.Name, gold.Abbrev(), diamonds.Abbrev(), lamps.Abbrev()),
	}}, true
}

// SkipCooldown снимает кулдаун за алмазы: 1 алмаз за час остатка,
// минимум 5. Без кулдауна пропускать нечего.
func (d *Dungeons) SkipCooldown(id string, wallet Wallet, now time.Time) bool {
	dungeon := d.find(id)
	if dungeon == nil || dungeon.Cooldown == 0 {
		return false
	}

	remaining := d.CooldownRemaining(id, now)
	if remaining <= 0 {
		return false
	}

	hours := int(math.Ceil(remaining.Hours()))
	cost := hours
	if cost < skipCooldownMinCost {
		cost = skipCooldownMinCost
	}

	if !wallet.Spend(domain.CurrencyDiamonds, domain.NewDecimalInt(int64(cost))) {
		return false
	}

	delete(d.cooldowns, id)
	return true
}

// --- СОХРАНЕНИЕ ---

// DungeonSnapshot - сериализуемое состояние подземелий.
type DungeonSnapshot struct {
	Cooldowns         map[string]time.Time `json:"cooldowns,omitempty"`
	Attempts          map[string]*Attempt  `json:"attempts,omitempty"`
	TowerHighestFloor int                  `json:"towerHighestFloor"`
}

// Snapshot снимает состояние для сохранения.
func (d *Dungeons) Snapshot() DungeonSnapshot {
	cds := make(map[string]time.Time, len(d.cooldowns))
	for k, v := range d.cooldowns {
		cds[k] = v
	}
	attempts := make(map[string]*Attempt, len(d.attempts))
	for k, v := range d.attempts {
		copied := *v
		attempts[k] = &copied
	}
	return DungeonSnapshot{
		Cooldowns:         cds,
		Attempts:          attempts,
		TowerHighestFloor: d.towerHighestFloor,
	}
}

// Restore восстанавливает состояние. Заходы в неизвестные
// подземелья отбрасываются.
func (d *Dungeons) Restore(s DungeonSnapshot) {
	d.cooldowns = make(map[string]time.Time, len(s.Cooldowns))
	for k, v := range s.Cooldowns {
		if d.find(k) != nil {
			d.cooldowns[k] = v
		}
	}
	d.attempts = make(map[string]*Attempt, len(s.Attempts))
	for k, v := range s.Attempts {
		if v == nil || d.find(k) == nil {
			continue
		}
		copied := *v
		d.attempts[k] = &copied
	}
	d.towerHighestFloor = s.TowerHighestFloor
	if d.towerHighestFloor < 0 {
		d.towerHighestFloor = 0
	}
}
