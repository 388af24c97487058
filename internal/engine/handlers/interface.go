package handlers

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/valentintorulya-hash/LoM/internal/activities"
	"github.com/valentintorulya-hash/LoM/internal/combat"
	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/internal/economy"
	"github.com/valentintorulya-hash/LoM/internal/inventory"
	"github.com/valentintorulya-hash/LoM/internal/progression"
	"github.com/valentintorulya-hash/LoM/internal/skills"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
)

// Context передает хендлеру все подсистемы партии.
// Хендлеры мутируют состояние напрямую: движок гарантирует, что
// в каждый момент исполняется не больше одного хендлера.
type Context struct {
	Catalog *catalog.Catalog
	Rng     *rand.Rand

	// Now - момент исполнения команды по часам движка.
	Now time.Time

	Ledger    *economy.Ledger
	Inventory *inventory.Inventory
	Generator *inventory.Generator
	Combat    *combat.Engine
	Skills    *skills.Tracker
	Classes   *progression.Classes
	Pets      *progression.Pets
	Evolution *progression.Evolution
	Dungeons  *activities.Dungeons
	Arena     *activities.Arena
	Quests    *activities.Quests
	Mailbox   *activities.Mailbox
	AFK       *activities.AFK
	WorldMap  *activities.WorldMap
}

// Result - итог выполнения команды.
// Хендлер не пишет в рассылку напрямую, он возвращает данные.
type Result struct {
	OK     bool
	Msg    string
	Events []domain.Event
}

// HandlerFunc - контракт для любой команды (RUB_LAMP, ATTACK и т.д.).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// OK - успешный результат с накопленными событиями.
func OK(events ...domain.Event) Result {
	return Result{OK: true, Events: events}
}

// Fail - отказ игрового правила с текстом для клиента.
func Fail(msg string) Result {
	return Result{OK: false, Msg: msg}
}
