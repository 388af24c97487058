package agent

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/valentintorulya-hash/LoM/internal/domain"
	"github.com/valentintorulya-hash/LoM/internal/engine"
	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// Bot - безголовый автоигрок (Headless Agent).
// Этот код является примером ВНЕШНЕГО клиента: он регистрируется в хабе
// так же, как обычный игрок через WebSocket, получает снимки состояния
// и на их основе решает, какую команду отправить обратно.
//
// Жизненный цикл:
//  1. NewBot -> Регистрация в хабе сервера, получение личного канала (Inbox).
//  2. Run -> Запуск в отдельной горутине, слушает свой Inbox.
//  3. На каждом снимке makeMove выбирает не более одной команды.
type Bot struct {
	ConnID  string
	Service *engine.GameService // Прямая ссылка на движок (для простоты в этом проекте)
	Inbox   chan api.ServerResponse
}

func NewBot(connID string, service *engine.GameService) *Bot {
	log.Printf("[BOT] Creating agent %s", connID)
	return &Bot{
		ConnID:  connID,
		Service: service,
		// Бот регистрируется в хабе как обычный клиент.
		Inbox: service.Hub.Register(connID),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.ConnID)

	for update := range b.Inbox {
		if update.State == nil {
			continue
		}
		b.makeMove(update.State)
	}
	log.Printf("[BOT] Agent %s shut down.", b.ConnID)
}

// makeMove - мозг бота. Одна команда на снимок: решения по луту
// важнее новых призывов, призывы важнее наград.
func (b *Bot) makeMove(state *api.StateView) {
	// 1. Автобой должен быть включен всегда.
	if !state.Combat.AutoFight {
		b.sendCommand(domain.ActionToggleAutoFight, nil)
		return
	}

	// 2. Висящий предмет блокирует призывы: решаем сразу.
	// Простая политика - надеть, вытесненное продастся само.
	if state.Loot.Pending != nil {
		b.sendCommand(domain.ActionEquipItem, api.ItemPayload{ItemID: state.Loot.Pending.ID})
		return
	}

	// 3. Есть лампы - трем лампу.
	if lamps, err := strconv.ParseFloat(state.Resources.Lamps, 64); err == nil && lamps >= 1 {
		b.sendCommand(domain.ActionRubLamp, nil)
		return
	}

	// 4. Забираем готовые награды.
	for _, q := range state.Quests {
		if q.Claimable {
			b.sendCommand(domain.ActionClaimQuestsAll, nil)
			return
		}
	}
	for _, m := range state.Mail {
		if !m.Claimed {
			b.sendCommand(domain.ActionClaimMailAll, nil)
			return
		}
	}
	if state.AFK.PendingMinutes >= 5 {
		b.sendCommand(domain.ActionClaimAFK, nil)
		return
	}
}

func (b *Bot) sendCommand(action domain.ActionType, payload interface{}) {
	var payloadBytes json.RawMessage
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			log.Printf("[BOT %s] Error marshalling payload: %v", b.ConnID, err)
			return
		}
		payloadBytes = raw
	}

	cmd := api.ClientCommand{
		Action:  action.String(),
		Payload: payloadBytes,
	}
	b.Service.ProcessCommand(cmd, nil)
}
