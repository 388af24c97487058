// Package skills отслеживает кулдауны навыков и активные бафы.
// Метки времени сравниваются с часами, переданными снаружи, поэтому
// приостановка симуляции не ломает отсчет.
package skills

import (
	"time"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
)

// Tracker - кулдауны и бафы героя. Не потокобезопасен.
type Tracker struct {
	skills []catalog.Skill

	// cooldowns: id -> момент готовности.
	// activeBuffs: id -> момент окончания действия.
	cooldowns   map[string]time.Time
	activeBuffs map[string]time.Time
}

// NewTracker создает трекер для набора навыков.
func NewTracker(skills []catalog.Skill) *Tracker {
	return &Tracker{
		skills:      skills,
		cooldowns:   make(map[string]time.Time),
		activeBuffs: make(map[string]time.Time),
	}
}

// Skills возвращает определения отслеживаемых навыков.
func (t *Tracker) Skills() []catalog.Skill { return t.skills }

func (t *Tracker) find(id string) *catalog.Skill {
	for i := range t.skills {
		if t.skills[i].ID == id {
			return &t.skills[i]
		}
	}
	return nil
}

// IsReady сообщает, готов ли навык к активации.
func (t *Tracker) IsReady(id string, now time.Time) bool {
	readyAt, ok := t.cooldowns[id]
	if !ok {
		return true
	}
	return !now.Before(readyAt)
}

// ReadyAt возвращает момент готовности навыка (нулевое время, если
// навык еще не использовался).
func (t *Tracker) ReadyAt(id string) time.Time {
	return t.cooldowns[id]
}

// Activate пытается активировать навык: ставит кулдаун и, для бафа с
// длительностью, отметку окончания. Возвращает определение навыка и
// успех. Повторная активация до готовности - отказ без побочных
// эффектов.
func (t *Tracker) Activate(id string, now time.Time) (*catalog.Skill, bool) {
	skill := t.find(id)
	if skill == nil {
		return nil, false
	}
	if !t.IsReady(id, now) {
		return nil, false
	}

	t.cooldowns[id] = now.Add(skill.Cooldown)
	if skill.Kind == domain.SkillBuff && skill.Duration > 0 {
		t.activeBuffs[id] = now.Add(skill.Duration)
	}
	return skill, true
}

// BuffMultiplier возвращает множитель активного бафа,
// либо 1, если баф не действует.
func (t *Tracker) BuffMultiplier(id string, now time.Time) float64 {
	skill := t.find(id)
	if skill == nil || skill.Kind != domain.SkillBuff {
		return 1
	}

	expireAt, ok := t.activeBuffs[id]
	if !ok || !now.Before(expireAt) {
		return 1
	}
	return skill.Value
}

// --- СОХРАНЕНИЕ ---

// Snapshot - сериализуемое состояние трекера.
type Snapshot struct {
	Cooldowns   map[string]time.Time `json:"cooldowns,omitempty"`
	ActiveBuffs map[string]time.Time `json:"activeBuffs,omitempty"`
}

// Snapshot снимает состояние для сохранения.
func (t *Tracker) Snapshot() Snapshot {
	cd := make(map[string]time.Time, len(t.cooldowns))
	for k, v := range t.cooldowns {
		cd[k] = v
	}
	buffs := make(map[string]time.Time, len(t.activeBuffs))
	for k, v := range t.activeBuffs {
		buffs[k] = v
	}
	return Snapshot{Cooldowns: cd, ActiveBuffs: buffs}
}

// Restore восстанавливает метки времени из сохранения.
func (t *Tracker) Restore(s Snapshot) {
	t.cooldowns = make(map[string]time.Time, len(s.Cooldowns))
	for k, v := range s.Cooldowns {
		t.cooldowns[k] = v
	}
	t.activeBuffs = make(map[string]time.Time, len(s.ActiveBuffs))
	for k, v := range s.ActiveBuffs {
		t.activeBuffs[k] = v
	}
}
