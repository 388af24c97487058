package engine

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/valentintorulya-hash/LoM/internal/activities"
	"github.com/valentintorulya-hash/LoM/internal/combat"
	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/internal/economy"
	"github.com/valentintorulya-hash/LoM/internal/engine/handlers"
	"github.com/valentintorulya-hash/LoM/internal/infrastructure/storage"
	"github.com/valentintorulya-hash/LoM/internal/inventory"
	"github.com/valentintorulya-hash/LoM/internal/network"
	"github.com/valentintorulya-hash/LoM/internal/progression"
	"github.com/valentintorulya-hash/LoM/internal/skills"
	"github.com/valentintorulya-hash/LoM/pkg/api"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

// GameService владеет всем состоянием партии. Все мутации происходят
// на одной горутине игрового цикла: команды извне приходят через
// CommandChan, тики - через внутренние тикеры.
type GameService struct {
	cfg     Config
	clock   Clock
	catalog *catalog.Catalog
	rng     *rand.Rand

	ledger    *economy.Ledger
	inventory *inventory.Inventory
	generator *inventory.Generator
	combat    *combat.Engine
	skills    *skills.Tracker
	classes   *progression.Classes
	pets      *progression.Pets
	evolution *progression.Evolution
	dungeons  *activities.Dungeons
	arena     *activities.Arena
	quests    *activities.Quests
	mailbox   *activities.Mailbox
	afk       *activities.AFK
	worldMap  *activities.WorldMap

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster
	store       *storage.SaveService

	handlers map[domain.ActionType]handlers.HandlerFunc

	// events копятся между рассылками и уходят клиенту одним пакетом.
	events []domain.Event

	stop chan struct{}
	done chan struct{}
}

// NewService создает партию с чистым состоянием.
func NewService(cfg Config, cat *catalog.Catalog, clock Clock) *GameService {
	rng := rand.New(rand.NewSource(cfg.Seed))
	now := clock.Now()

	s := &GameService{
		cfg:     cfg,
		clock:   clock,
		catalog: cat,
		rng:     rng,

		ledger:    economy.NewLedger(cat.Economy.LampsPerMinute),
		inventory: inventory.New(cat.Economy.BaseStats),
		generator: inventory.NewGenerator(rng, cat.Items),
		combat:    combat.NewEngine(rng, cat.Enemies),
		skills:    skills.NewTracker(cat.Skills),
		classes:   progression.NewClasses(cat.Classes),
		pets:      progression.NewPets(cat.Pets),
		evolution: progression.NewEvolution(cat.Evolutions),
		dungeons:  activities.NewDungeons(cat.Dungeons),
		arena:     activities.NewArena(rng, cat.Arena),
		quests:    activities.NewQuests(cat.Quests),
		mailbox:   activities.NewMailbox(cat.Mail),
		afk:       activities.NewAFK(cat.AFK, now),
		worldMap:  activities.NewWorldMap(cat.Areas),

		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),

		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	if cfg.SavePath != "" {
		s.store = storage.NewSaveService(cfg.SavePath)
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(handlers.HandleInit)

	s.handlers[domain.ActionRubLamp] = handlers.WithEmptyPayload(handlers.HandleRubLamp)
	s.handlers[domain.ActionRubLampBatch] = handlers.WithPayload(handlers.HandleRubLampBatch)
	s.handlers[domain.ActionSellItem] = handlers.WithPayload(handlers.HandleSellItem)
	s.handlers[domain.ActionEquipItem] = handlers.WithPayload(handlers.HandleEquipItem)
	s.handlers[domain.ActionSetLampAuto] = handlers.WithPayload(handlers.HandleSetLampAuto)
	s.handlers[domain.ActionToggleLampAuto] = handlers.WithEmptyPayload(handlers.HandleToggleLampAuto)

	s.handlers[domain.ActionAddResource] = handlers.WithPayload(handlers.HandleAddResource)
	s.handlers[domain.ActionSpendResource] = handlers.WithPayload(handlers.HandleSpendResource)

	s.handlers[domain.ActionAttack] = handlers.WithEmptyPayload(handlers.HandleAttack)
	s.handlers[domain.ActionCastSkill] = handlers.WithPayload(handlers.HandleCastSkill)
	s.handlers[domain.ActionCastClassSkill] = handlers.WithEmptyPayload(handlers.HandleCastClassSkill)
	s.handlers[domain.ActionToggleAutoFight] = handlers.WithEmptyPayload(handlers.HandleToggleAutoFight)
	s.handlers[domain.ActionSetStage] = handlers.WithPayload(handlers.HandleSetStage)
	s.handlers[domain.ActionSetArea] = handlers.WithPayload(handlers.HandleSetArea)

	s.handlers[domain.ActionEnterDungeon] = handlers.WithPayload(handlers.HandleEnterDungeon)
	s.handlers[domain.ActionCompleteWave] = handlers.WithPayload(handlers.HandleCompleteWave)
	s.handlers[domain.ActionFailDungeon] = handlers.WithPayload(handlers.HandleFailDungeon)
	s.handlers[domain.ActionClaimDungeon] = handlers.WithPayload(handlers.HandleClaimDungeon)
	s.handlers[domain.ActionSkipCooldown] = handlers.WithPayload(handlers.HandleSkipCooldown)

	s.handlers[domain.ActionSelectClass] = handlers.WithPayload(handlers.HandleSelectClass)
	s.handlers[domain.ActionEvolve] = handlers.WithEmptyPayload(handlers.HandleEvolve)
	s.handlers[domain.ActionUnlockPet] = handlers.WithPayload(handlers.HandleUnlockPet)
	s.handlers[domain.ActionLevelUpPet] = handlers.WithPayload(handlers.HandleLevelUpPet)

	s.handlers[domain.ActionFightArena] = handlers.WithPayload(handlers.HandleFightArena)
	s.handlers[domain.ActionRefreshArena] = handlers.WithEmptyPayload(handlers.HandleRefreshArena)
	s.handlers[domain.ActionClaimArenaDaily] = handlers.WithEmptyPayload(handlers.HandleClaimArenaDaily)

	s.handlers[domain.ActionClaimQuest] = handlers.WithPayload(handlers.HandleClaimQuest)
	s.handlers[domain.ActionClaimQuestsAll] = handlers.WithEmptyPayload(handlers.HandleClaimQuestsAll)
	s.handlers[domain.ActionClaimMail] = handlers.WithPayload(handlers.HandleClaimMail)
	s.handlers[domain.ActionClaimMailAll] = handlers.WithEmptyPayload(handlers.HandleClaimMailAll)
	s.handlers[domain.ActionClaimAFK] = handlers.WithEmptyPayload(handlers.HandleClaimAFK)
	s.handlers[domain.ActionExtendAFK] = handlers.WithPayload(handlers.HandleExtendAFK)
}

// context собирает контекст хендлера на момент now.
func (s *GameService) context(now time.Time) handlers.Context {
	return handlers.Context{
		Catalog: s.catalog,
		Rng:     s.rng,
		Now:     now,

		Ledger:    s.ledger,
		Inventory: s.inventory,
		Generator: s.generator,
		Combat:    s.combat,
		Skills:    s.skills,
		Classes:   s.classes,
		Pets:      s.pets,
		Evolution: s.evolution,
		Dungeons:  s.dungeons,
		Arena:     s.arena,
		Quests:    s.quests,
		Mailbox:   s.mailbox,
		AFK:       s.afk,
		WorldMap:  s.worldMap,
	}
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand, reply chan<- domain.CommandResult) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"action":    externalCmd.Action,
		}).Warn("Unknown action.")
		if reply != nil {
			reply <- domain.CommandResult{OK: false, Msg: "Unknown action"}
		}
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Payload: externalCmd.Payload,
		Reply:   reply,
	}
}

// Execute выполняет команду синхронно на горутине цикла.
func (s *GameService) Execute(cmd domain.InternalCommand) handlers.Result {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return handlers.Fail("Unsupported action")
	}

	result, err := handler(s.context(s.clock.Now()), cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"action":    cmd.Action.String(),
			"error":     err,
		}).Warn("Command rejected.")
		return handlers.Fail(err.Error())
	}

	s.events = append(s.events, result.Events...)
	return result
}

// Start запускает игровой цикл.
func (s *GameService) Start() {
	go s.Run()
}

// Stop останавливает цикл и дожидается его завершения.
func (s *GameService) Stop() {
	close(s.stop)
	<-s.done
}

// --- GAME LOOP ---

// Run крутит игровой цикл: команды и тики строго по очереди.
func (s *GameService) Run() {
	logger.Log.WithField("component", "engine").Info("Game loop started.")

	idle := time.NewTicker(s.cfg.IdleTick)
	combatTick := time.NewTicker(s.cfg.CombatTick)
	autoSkill := time.NewTicker(s.cfg.AutoSkillTick)
	autosave := time.NewTicker(s.cfg.AutosaveInterval)
	defer idle.Stop()
	defer combatTick.Stop()
	defer autoSkill.Stop()
	defer autosave.Stop()

	for {
		select {
		case <-s.stop:
			logger.Log.WithField("component", "engine").Info("Game loop stopped.")
			close(s.done)
			return

		case cmd := <-s.CommandChan:
			result := s.Execute(cmd)
			if cmd.Reply != nil {
				cmd.Reply <- domain.CommandResult{OK: result.OK, Msg: result.Msg}
			}
			responseType := "UPDATE"
			if cmd.Action == domain.ActionInit {
				responseType = "INIT"
			}
			s.publish(responseType, result.Msg)

		case <-idle.C:
			s.TickIdle()
			s.publish("UPDATE", "")

		case <-combatTick.C:
			s.TickCombat()
			s.publish("UPDATE", "")

		case <-autoSkill.C:
			if changed := s.TickAutoSkills(); changed {
				s.publish("UPDATE", "")
			}

		case <-autosave.C:
			s.autosave()
		}
	}
}

// TickIdle - тик простоя: пассивные лампы, авто-лампа, отметка
// присутствия для офлайн-учета.
func (s *GameService) TickIdle() {
	now := s.clock.Now()
	ctx := s.context(now)

	handlers.IdleTickStep(ctx, s.cfg.IdleTick.Seconds())
	s.events = append(s.events, handlers.AutoLampStep(ctx)...)

	// Пока клиент подключен, офлайн-отсчет не копится.
	if s.Hub.SubscriberCount() > 0 {
		s.afk.Touch(now)
	}
}

// TickCombat - боевой тик.
func (s *GameService) TickCombat() {
	ctx := s.context(s.clock.Now())
	s.events = append(s.events, handlers.CombatTickStep(ctx)...)
}

// TickAutoSkills - обход авто-навыков. Возвращает true, если
// что-то скастовалось.
func (s *GameService) TickAutoSkills() bool {
	ctx := s.context(s.clock.Now())
	events := handlers.AutoSkillStep(ctx)
	s.events = append(s.events, events...)
	return len(events) > 0
}

// publish рассылает снимок состояния всем подписчикам и очищает
// накопленные события.
func (s *GameService) publish(responseType, msg string) {
	if s.Hub.SubscriberCount() == 0 {
		s.events = nil
		return
	}

	now := s.clock.Now()
	resp := api.ServerResponse{
		Type:      responseType,
		State:     s.BuildState(now),
		Events:    toEventViews(s.events),
		Msg:       msg,
		Timestamp: now.UnixMilli(),
	}
	s.Hub.Broadcast(resp)
	s.events = nil
}

func toEventViews(events []domain.Event) []api.EventView {
	if len(events) == 0 {
		return nil
	}
	views := make([]api.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, api.EventView{
			Kind:    string(e.Kind),
			Title:   e.Title,
			Message: e.Message,
		})
	}
	return views
}
