package activities

import (
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
)

// WorldMap - зоны карты и доступ героя к ним.
type WorldMap struct {
	areas []catalog.Area

	activeID string
	unlocked map[string]bool
}

// NewWorldMap создает карту с открытой и активной первой зоной.
func NewWorldMap(areas []catalog.Area) *WorldMap {
	m := &WorldMap{
		areas:    areas,
		unlocked: make(map[string]bool),
	}
	if len(areas) > 0 {
		m.activeID = areas[0].ID
		m.unlocked[areas[0].ID] = true
	}
	return m
}

// Areas возвращает все зоны карты.
func (m *WorldMap) Areas() []catalog.Area {
	return append([]catalog.Area(nil), m.areas...)
}

func (m *WorldMap) find(id string) *catalog.Area {
	for i := range m.areas {
		if m.areas[i].ID == id {
			return &m.areas[i]
		}
	}
	return nil
}

// Active возвращает активную зону.
func (m *WorldMap) Active() *catalog.Area {
	return m.find(m.activeID)
}

// Unlocked сообщает, открыта ли зона.
func (m *WorldMap) Unlocked(id string) bool {
	return m.unlocked[id]
}

// Unlock открывает зону. Повторное открытие - no-op.
func (m *WorldMap) Unlock(id string) bool {
	if m.find(id) == nil {
		return false
	}
	m.unlocked[id] = true
	return true
}

// UnlockByStage открывает зоны, чей предшественник пройден стадией:
// зона i открывается, когда stage превышает EndStage зоны i-1.
// Возвращает свежеоткрытые зоны.
func (m *WorldMap) UnlockByStage(stage int) []catalog.Area {
	var opened []catalog.Area
	for i := 1; i < len(m.areas); i++ {
		if stage <= m.areas[i-1].EndStage || m.unlocked[m.areas[i].ID] {
			continue
		}
		m.unlocked[m.areas[i].ID] = true
		opened = append(opened, m.areas[i])
	}
	return opened
}

// SetActive делает открытую зону активной и возвращает ее стартовую
// стадию для перевода боя. Закрытая или неизвестная зона - отказ.
func (m *WorldMap) SetActive(id string) (int, bool) {
	area := m.find(id)
	if area == nil || !m.unlocked[id] {
		return 0, false
	}
	m.activeID = id
	return area.StartStage, true
}

// --- СОХРАНЕНИЕ ---

// MapSnapshot - сериализуемое состояние карты.
type MapSnapshot struct {
	ActiveID string   `json:"activeId"`
	Unlocked []string `json:"unlocked"`
}

// Snapshot снимает состояние для сохранения.
func (m *WorldMap) Snapshot() MapSnapshot {
	unlocked := make([]string, 0, len(m.unlocked))
	for _, area := range m.areas {
		if m.unlocked[area.ID] {
			unlocked = append(unlocked, area.ID)
		}
	}
	return MapSnapshot{ActiveID: m.activeID, Unlocked: unlocked}
}

// Restore восстанавливает карту. Первая зона всегда остается
// открытой, неизвестная активная зона откатывается на первую.
func (m *WorldMap) Restore(s MapSnapshot) {
	m.unlocked = make(map[string]bool, len(s.Unlocked))
	for _, id := range s.Unlocked {
		if m.find(id) != nil {
			m.unlocked[id] = true
		}
	}
	if len(m.areas) > 0 {
		m.unlocked[m.areas[0].ID] = true
	}

	m.activeID = s.ActiveID
	if m.find(m.activeID) == nil || !m.unlocked[m.activeID] {
		if len(m.areas) > 0 {
			m.activeID = m.areas[0].ID
		}
	}
}
