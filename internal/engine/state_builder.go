package engine

import (
	"time"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/internal/engine/handlers"
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// BuildState собирает полный снимок партии для клиента на момент now.
func (s *GameService) BuildState(now time.Time) *api.StateView {
	return &api.StateView{
		Resources: s.buildResources(),
		Lamp:      s.buildLamp(),
		Player:    s.buildPlayer(),
		Combat:    s.buildCombat(),
		Loot:      s.buildLoot(),
		Equipment: s.buildEquipment(),
		Skills:    s.buildSkills(now),
		Class:     s.buildClass(now),
		Pets:      s.buildPets(),
		Evolution: s.buildEvolution(),
		Dungeons:  s.buildDungeons(now),
		Arena:     s.buildArena(),
		Quests:    s.buildQuests(),
		Mail:      s.buildMail(),
		AFK:       s.buildAFK(now),
		WorldMap:  s.buildWorldMap(),
	}
}

func (s *GameService) buildResources() api.ResourcesView {
	return api.ResourcesView{
		Lamps:    s.ledger.Balance(domain.CurrencyLamps).String(),
		Gold:     s.ledger.Balance(domain.CurrencyGold).String(),
		Diamonds: s.ledger.Balance(domain.CurrencyDiamonds).String(),
	}
}

func (s *GameService) buildLamp() api.LampView {
	return api.LampView{
		Level:     s.ledger.LampLevel(),
		Progress:  s.ledger.LampProgress().String(),
		ToNext:    s.ledger.LampToNext().String(),
		AutoMode:  s.ledger.LampAutoMode(),
		AutoBatch: s.ledger.LampAutoBatch(),
	}
}

func (s *GameService) buildPlayer() api.PlayerView {
	stats := make(map[string]string, 4)
	for _, t := range []domain.StatType{domain.StatAttack, domain.StatHP, domain.StatDefense, domain.StatSpeed} {
		stats[string(t)] = s.inventory.Stat(t).String()
	}
	return api.PlayerView{
		Level:     s.ledger.PlayerLevel(),
		Exp:       s.ledger.PlayerExp().String(),
		ExpToNext: s.ledger.ExpToNext().String(),
		Stats:     stats,
		CurrentHP: s.inventory.CurrentHP().String(),
	}
}

func (s *GameService) buildCombat() api.CombatView {
	view := api.CombatView{
		Stage:     s.combat.Stage(),
		AutoFight: s.combat.AutoFight(),
	}
	if enemy := s.combat.Enemy(); enemy != nil {
		view.Enemy = &api.EnemyView{
			ID:     enemy.ID,
			Name:   enemy.Name,
			Level:  enemy.Level,
			HP:     enemy.CurrentHP.String(),
			MaxHP:  enemy.MaxHP.String(),
			Attack: enemy.Attack.String(),
			Gold:   enemy.Rewards.Gold.String(),
		}
	}
	return view
}

func toItemView(item domain.Item) api.ItemView {
	return api.ItemView{
		ID:        item.ID,
		Name:      item.Name,
		Slot:      string(item.Slot),
		Rarity:    string(item.Rarity),
		StatType:  string(item.MainStat.Type),
		StatValue: item.MainStat.Value.String(),
		SellPrice: item.SellPrice.String(),
	}
}

func (s *GameService) buildLoot() api.LootView {
	view := api.LootView{}
	if pending := s.inventory.Pending(); pending != nil {
		v := toItemView(*pending)
		view.Pending = &v
	}
	for _, item := range s.inventory.LootQueue() {
		view.Queue = append(view.Queue, toItemView(item))
	}
	return view
}

func (s *GameService) buildEquipment() map[string]api.ItemView {
	equipped := s.inventory.EquippedAll()
	views := make(map[string]api.ItemView, len(equipped))
	for slot, item := range equipped {
		if item == nil {
			continue
		}
		views[string(slot)] = toItemView(*item)
	}
	return views
}

func (s *GameService) buildSkills(now time.Time) []api.SkillView {
	defs := s.skills.Skills()
	views := make([]api.SkillView, 0, len(defs))
	for _, def := range defs {
		var remaining time.Duration
		if readyAt := s.skills.ReadyAt(def.ID); readyAt.After(now) {
			remaining = readyAt.Sub(now)
		}
		views = append(views, api.SkillView{
			ID:          def.ID,
			Name:        def.Name,
			Kind:        string(def.Kind),
			Unlocked:    s.combat.Stage() >= def.UnlockStage,
			Ready:       s.skills.IsReady(def.ID, now),
			CooldownMs:  def.Cooldown.Milliseconds(),
			RemainingMs: remaining.Milliseconds(),
			BuffActive:  def.Kind == domain.SkillBuff && s.skills.BuffMultiplier(def.ID, now) > 1,
		})
	}
	return views
}

func (s *GameService) buildClass(now time.Time) api.ClassView {
	view := api.ClassView{
		Level:     s.classes.Level(),
		Exp:       s.classes.Exp().String(),
		ExpToNext: s.classes.ExpToNext().String(),
	}
	if selected := s.classes.Selected(); selected != nil {
		view.SelectedID = selected.ID
		view.Name = selected.Name
		view.SpecialReady = s.classes.SpecialReady(now)
	}
	return view
}

func (s *GameService) buildPets() []api.PetView {
	defs := s.catalog.Pets
	views := make([]api.PetView, 0, len(defs))
	for _, def := range defs {
		views = append(views, api.PetView{
			ID:         def.ID,
			Name:       def.Name,
			Unlocked:   s.pets.Unlocked(def.ID),
			Level:      s.pets.Level(def.ID),
			BonusType:  string(def.BonusType),
			BonusValue: def.BonusValue,
			UnlockCost: def.UnlockCost.String(),
		})
	}
	return views
}

func (s *GameService) buildEvolution() api.EvolutionView {
	current := s.evolution.Current()
	view := api.EvolutionView{
		StageID:   current.ID,
		StageName: current.Name,
		IsMax:     s.evolution.IsMax(),
		History:   s.evolution.History(),
		CanEvolve: s.evolution.CanEvolve(s.ledger.PlayerLevel(), s.combat.Stage(), s.ledger),
	}
	if next := s.evolution.Next(); next != nil {
		view.NextID = next.ID
	}
	return view
}

func (s *GameService) buildDungeons(now time.Time) []api.DungeonView {
	defs := s.catalog.Dungeons
	views := make([]api.DungeonView, 0, len(defs))
	for _, def := range defs {
		view := api.DungeonView{
			ID:          def.ID,
			Name:        def.Name,
			Waves:       def.Waves,
			CooldownMs:  def.Cooldown.Milliseconds(),
			RemainingMs: s.dungeons.CooldownRemaining(def.ID, now).Milliseconds(),
		}
		if attempt := s.dungeons.Attempt(def.ID); attempt != nil {
			view.Active = attempt.Active
			view.CurrentWave = attempt.CurrentWave
			view.MaxWaveReached = attempt.MaxWaveReached
			view.Claimable = !attempt.Active && attempt.MaxWaveReached > 0
		}
		views = append(views, view)
	}
	return views
}

func (s *GameService) buildArena() api.ArenaView {
	opponents := s.arena.Opponents()
	views := make([]api.ArenaOpponentView, 0, len(opponents))
	for _, op := range opponents {
		views = append(views, api.ArenaOpponentView{
			ID:       op.ID,
			Name:     op.Name,
			Power:    op.Power,
			Rank:     op.Rank,
			Gold:     op.Gold.String(),
			Diamonds: op.Diamonds.String(),
		})
	}
	return api.ArenaView{
		Rank:         s.arena.Rank(),
		Points:       s.arena.Points(),
		DailyClaimed: s.arena.DailyClaimed(),
		Opponents:    views,
	}
}

func (s *GameService) buildQuests() []api.QuestView {
	states := s.quests.All()
	views := make([]api.QuestView, 0, len(states))
	for _, q := range states {
		views = append(views, api.QuestView{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Progress:    q.Progress,
			Goal:        q.Goal,
			Claimed:     q.Claimed,
			Claimable:   !q.Claimed && q.Progress >= q.Goal,
		})
	}
	return views
}

func (s *GameService) buildMail() []api.MailView {
	states := s.mailbox.All()
	views := make([]api.MailView, 0, len(states))
	for _, m := range states {
		views = append(views, api.MailView{
			ID:      m.ID,
			Title:   m.Title,
			Body:    m.Body,
			Claimed: m.Claimed,
		})
	}
	return views
}

func (s *GameService) buildAFK(now time.Time) api.AFKView {
	ctx := s.context(now)
	rewards := s.afk.Calculate(now,
		handlers.IdleLampRate(ctx),
		s.pets.Bonus(domain.BonusGold),
		s.evolution.LampsMultiplier())
	return api.AFKView{
		PendingMinutes: rewards.Minutes,
		PendingGold:    rewards.Gold.String(),
		PendingLamps:   rewards.Lamps.String(),
		MaxMinutes:     s.afk.MaxOfflineMinutes(),
	}
}

func (s *GameService) buildWorldMap() api.WorldMapView {
	view := api.WorldMapView{}
	if active := s.worldMap.Active(); active != nil {
		view.ActiveID = active.ID
	}
	for _, area := range s.catalog.Areas {
		view.Areas = append(view.Areas, api.AreaView{
			ID:         area.ID,
			Name:       area.Name,
			StartStage: area.StartStage,
			EndStage:   area.EndStage,
			Unlocked:   s.worldMap.Unlocked(area.ID),
		})
	}
	return view
}
