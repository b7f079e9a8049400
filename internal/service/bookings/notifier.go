package bookings

import (
	"sync"

	"github.com/google/uuid"
)

// Notifier рассылает сигнал "bookings changed" подписчикам слоя
// представления. Сигнал без полезной нагрузки; доставка at-least-once,
// порядок между подписчиками и между операциями не гарантируется.
type Notifier struct {
	mu          sync.RWMutex
	subscribers map[string]func()
}

// NewNotifier создает notifier без подписчиков
func NewNotifier() *Notifier {
	return &Notifier{subscribers: make(map[string]func())}
}

// Subscribe регистрирует callback и возвращает идентификатор подписки
func (n *Notifier) Subscribe(fn func()) string {
	id := uuid.New().String()
	n.mu.Lock()
	n.subscribers[id] = fn
	n.mu.Unlock()
	return id
}

// Unsubscribe снимает подписку; неизвестный id — no-op
func (n *Notifier) Unsubscribe(id string) {
	n.mu.Lock()
	delete(n.subscribers, id)
	n.mu.Unlock()
}

// Notify асинхронно вызывает всех подписчиков. Каждый callback выполняется
// в собственной горутине, чтобы медленный подписчик не задерживал ни других
// подписчиков, ни вызывающего.
func (n *Notifier) Notify() {
	n.mu.RLock()
	snapshot := make([]func(), 0, len(n.subscribers))
	for _, fn := range n.subscribers {
		snapshot = append(snapshot, fn)
	}
	n.mu.RUnlock()

	for _, fn := range snapshot {
		go fn()
	}
}
