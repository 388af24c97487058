package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/activities"
	"github.com/valentintorulya-hash/LoM/internal/combat"
	"github.com/valentintorulya-hash/LoM/internal/economy"
	"github.com/valentintorulya-hash/LoM/internal/engine/handlers"
	"github.com/valentintorulya-hash/LoM/internal/inventory"
	"github.com/valentintorulya-hash/LoM/internal/progression"
	"github.com/valentintorulya-hash/LoM/internal/skills"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

// GameSnapshot - полное сохраняемое состояние партии.
type GameSnapshot struct {
	Ledger    economy.Snapshot              `json:"ledger"`
	Inventory inventory.Snapshot            `json:"inventory"`
	Combat    combat.Snapshot               `json:"combat"`
	Skills    skills.Snapshot               `json:"skills"`
	Class     progression.ClassSnapshot     `json:"class"`
	Pets      progression.PetSnapshot       `json:"pets"`
	Evolution progression.EvolutionSnapshot `json:"evolution"`
	Dungeons  activities.DungeonSnapshot    `json:"dungeons"`
	Arena     activities.ArenaSnapshot      `json:"arena"`
	Quests    activities.QuestSnapshot      `json:"quests"`
	Mail      activities.MailSnapshot       `json:"mail"`
	AFK       activities.AFKSnapshot        `json:"afk"`
	WorldMap  activities.MapSnapshot        `json:"worldMap"`
}

// Snapshot снимает состояние всех подсистем.
func (s *GameService) Snapshot() GameSnapshot {
	return GameSnapshot{
		Ledger:    s.ledger.Snapshot(),
		Inventory: s.inventory.Snapshot(),
		Combat:    s.combat.Snapshot(),
		Skills:    s.skills.Snapshot(),
		Class:     s.classes.Snapshot(),
		Pets:      s.pets.Snapshot(),
		Evolution: s.evolution.Snapshot(),
		Dungeons:  s.dungeons.Snapshot(),
		Arena:     s.arena.Snapshot(),
		Quests:    s.quests.Snapshot(),
		Mail:      s.mailbox.Snapshot(),
		AFK:       s.afk.Snapshot(),
		WorldMap:  s.worldMap.Snapshot(),
	}
}

// RestoreSnapshot раскладывает сохранение по подсистемам и
// пересчитывает итоговые статы.
func (s *GameService) RestoreSnapshot(snap GameSnapshot) {
	s.ledger.Restore(snap.Ledger)
	s.inventory.Restore(snap.Inventory)
	s.combat.Restore(snap.Combat)
	s.skills.Restore(snap.Skills)
	s.classes.Restore(snap.Class)
	s.pets.Restore(snap.Pets)
	s.evolution.Restore(snap.Evolution)
	s.dungeons.Restore(snap.Dungeons)
	s.arena.Restore(snap.Arena)
	s.quests.Restore(snap.Quests)
	s.mailbox.Restore(snap.Mail)
	s.afk.Restore(snap.AFK)
	s.worldMap.Restore(snap.WorldMap)

	handlers.RecalculateStats(s.context(s.clock.Now()))
}

// LoadSave пытается поднять партию из файла сохранения.
// Порченый или отсутствующий файл означает старт с чистого листа.
func (s *GameService) LoadSave() bool {
	if s.store == nil || !s.store.Exists() {
		return false
	}

	var snap GameSnapshot
	savedAt, err := s.store.Load(&snap)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"path":      s.store.Path,
			"error":     err,
		}).Warn("Save file unreadable, starting fresh.")
		return false
	}

	s.RestoreSnapshot(snap)
	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"savedAt":   savedAt,
	}).Info("Save loaded.")
	return true
}

func (s *GameService) autosave() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.Snapshot(), s.clock.Now().UnixMilli()); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"error":     err,
		}).Error("Autosave failed.")
	}
}

// SaveNow немедленно пишет сохранение (выключение сервера).
func (s *GameService) SaveNow() {
	s.autosave()
}
