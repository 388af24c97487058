// Package combat ведет бой на стадиях: спавн противника, обмен
// ударами по тику, переходы между стадиями.
package combat

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
	"github.com/valentintorulya-hash/LoM/pkg/utils"
)

// Engine - состояние боя. Не потокобезопасен: им владеет горутина движка.
type Engine struct {
	rng   *rand.Rand
	rules catalog.EnemyRules

	stage     int
	enemy     *domain.Enemy
	autoFight bool
}

// NewEngine создает боевой движок на первой стадии с включенным
// автобоем и заспавненным противником.
func NewEngine(rng *rand.Rand, rules catalog.EnemyRules) *Engine {
	e := &Engine{
		rng:       rng,
		rules:     rules,
		stage:     1,
		autoFight: true,
	}
	e.SpawnEnemy()
	return e
}

// --- СОСТОЯНИЕ ---

// Stage возвращает номер текущей стадии.
func (e *Engine) Stage() int { return e.stage }

// Enemy возвращает текущего противника (nil не бывает после спавна).
func (e *Engine) Enemy() *domain.Enemy { return e.enemy }

// AutoFight сообщает, включен ли автобой.
func (e *Engine) AutoFight() bool { return e.autoFight }

// ToggleAutoFight переключает автобой и возвращает новое состояние.
func (e *Engine) ToggleAutoFight() bool {
	e.autoFight = !e.autoFight
	return e.autoFight
}

// --- СТАДИИ ---

// SetStage переводит бой на стадию (минимум 1) и спавнит противника.
func (e *Engine) SetStage(stage int) {
	if stage < 1 {
		stage = 1
	}
	e.stage = stage
	e.SpawnEnemy()
}

// NextStage продвигает бой на следующую стадию.
func (e *Engine) NextStage() {
	e.stage++
	e.SpawnEnemy()
}

// Retreat откатывает бой на стадию назад (не ниже первой).
// Вызывается при смерти героя.
func (e *Engine) Retreat() {
	if e.stage > 1 {
		e.stage--
	}
	e.SpawnEnemy()
}

// SpawnEnemy создает противника текущей стадии.
func (e *Engine) SpawnEnemy() {
	enemy := e.generateEnemy(e.stage)
	e.enemy = &enemy
}

// HealEnemy восстанавливает HP противника до максимума.
func (e *Engine) HealEnemy() {
	if e.enemy != nil {
		e.enemy.HealFull()
	}
}

// generateEnemy собирает противника по кривым роста.
// Уровень равен стадии, имена циклом по списку.
func (e *Engine) generateEnemy(stage int) domain.Enemy {
	name := e.rules.Names[(stage-1)%len(e.rules.Names)]

	hpScale := domain.PowFloat(e.rules.HPGrowth, float64(stage-1))
	atkScale := domain.PowFloat(e.rules.AttackGrowth, float64(stage-1))
	rewardScale := domain.PowFloat(e.rules.RewardGrowth, float64(stage-1))

	maxHP := domain.NewDecimal(e.rules.BaseHP).Mul(hpScale).Floor()
	attack := domain.NewDecimal(e.rules.BaseAttack).Mul(atkScale).Floor()
	defense := domain.NewDecimal(e.rules.BaseDefense).Mul(hpScale).Floor()
	gold := domain.NewDecimal(e.rules.BaseGold).Mul(rewardScale).Floor()

	return domain.Enemy{
		ID:        utils.GenerateDeterministicID(e.rng, "mob-"),
		Name:      fmt.Sprintf("%s Lvl.%d", name, stage),
		Level:     stage,
		MaxHP:     maxHP,
		CurrentHP: maxHP,
		Attack:    attack,
		Defense:   defense,
		Rewards:   domain.EnemyRewards{Gold: gold},
	}
}

// --- БОЙ ---

// Outcome - итог удара или тика боя для вызывающего.
type Outcome struct {
	DamageDealt    domain.Decimal
	DamageToPlayer domain.Decimal

	// EnemyDefeated: противник погиб, стадия уже продвинута,
	// новый противник заспавнен. GoldReward - сырая награда без
	// бонусов питомцев.
	EnemyDefeated bool
	GoldReward    domain.Decimal
}

// Strike наносит противнику урон. При смерти противника стадия
// продвигается и спавнится новый. Контратаки нет: это путь ручной
// атаки и навыков.
func (e *Engine) Strike(damage domain.Decimal) Outcome {
	out := Outcome{DamageDealt: damage}

	if e.enemy == nil {
		e.SpawnEnemy()
	}

	if e.enemy.TakeDamage(damage) {
		out.EnemyDefeated = true
		out.GoldReward = e.enemy.Rewards.Gold

		logger.Log.WithFields(logrus.Fields{
			"component": "combat",
			"enemy":     e.enemy.Name,
			"stage":     e.stage,
			"gold":      out.GoldReward.String(),
		}).Debug("Enemy defeated.")

		e.NextStage()
	}
	return out
}

// ResolveTick разыгрывает один тик боя: удар героя, затем контратака
// выжившего противника. Урон контратаки = max(атака - защита, 1).
func (e *Engine) ResolveTick(playerAttack, playerDefense domain.Decimal) Outcome {
	out := e.Strike(playerAttack)
	if out.EnemyDefeated {
		return out
	}

	counter := e.enemy.Attack.Sub(playerDefense)
	if counter.Lt(domain.NewDecimal(1)) {
		counter = domain.NewDecimal(1)
	}
	out.DamageToPlayer = counter
	return out
}

// --- СОХРАНЕНИЕ ---

// Snapshot - сериализуемое состояние боя. Противник не сохраняется:
// при загрузке он спавнится заново для текущей стадии.
type Snapshot struct {
	Stage     int  `json:"stage"`
	AutoFight bool `json:"autoFight"`
}

// Snapshot снимает состояние для сохранения.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{Stage: e.stage, AutoFight: e.autoFight}
}

// Restore восстанавливает стадию и флаг автобоя, спавнит противника.
func (e *Engine) Restore(s Snapshot) {
	e.stage = s.Stage
	if e.stage < 1 {
		e.stage = 1
	}
	e.autoFight = s.AutoFight
	e.SpawnEnemy()
}
