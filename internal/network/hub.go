package network

import (
	"sync"

	"github.com/valentintorulya-hash/LoM/pkg/api"
)

// Broadcaster занимается только рассылкой снимков состояния подписчикам.
// Движок публикует, транспорт подписывает соединения.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID соединения -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для соединения.
func (b *Broadcaster) Register(connID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[connID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[connID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(connID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[connID]; ok {
		close(ch)
		delete(b.subscribers, connID)
	}
}

// SendTo отправляет сообщение конкретному соединению (Unicast)
func (b *Broadcaster) SendTo(connID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[connID]; ok {
		select {
		case ch <- msg:
		default:
			// Медленный потребитель теряет кадр, следующий снимок его догонит
		}
	}
}

// Broadcast отправляет снимок всем подписчикам.
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
