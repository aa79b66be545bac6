package services

import (
	"sync"

	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// subscriberBuffer is how many pending events a subscriber may lag before
// events are dropped for it.
const subscriberBuffer = 16

// changeNotifier is the in-process broadcast channel for "the Document
// changed, re-read it" signals. It replaces the source's ambient cross-tab
// event dispatch with an explicit subscribe/unsubscribe lifecycle owned by
// the sync engine.
type changeNotifier struct {
	mu   sync.Mutex
	subs map[string]chan portssvc.ChangeEvent
}

func newChangeNotifier() *changeNotifier {
	return &changeNotifier{subs: make(map[string]chan portssvc.ChangeEvent)}
}

func (n *changeNotifier) subscribe() (string, <-chan portssvc.ChangeEvent) {
	id := uuid.NewString()
	ch := make(chan portssvc.ChangeEvent, subscriberBuffer)

	n.mu.Lock()
	n.subs[id] = ch
	n.mu.Unlock()

	return id, ch
}

func (n *changeNotifier) unsubscribe(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ch, ok := n.subs[id]; ok {
		delete(n.subs, id)
		close(ch)
	}
}

// publish delivers ev to every subscriber without blocking. Notification is
// not part of any mutation's success contract; a full buffer drops the event
// for that subscriber.
func (n *changeNotifier) publish(ev portssvc.ChangeEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
