package realtime

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nats-io/nats.go"
)

// Handler receives the raw payload of a published event.
type Handler func(subject string, data []byte)

// Subscription is an active bus subscription.
type Subscription interface {
	Unsubscribe() error
}

// Bus fans change events out to subscribed admin panels. Subjects are
// dot-separated; "*" matches exactly one token, as in NATS.
type Bus interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler Handler) (Subscription, error)
	Close()
}

// ---------------------------------------------------------------------------
// NATS-backed bus
// ---------------------------------------------------------------------------

type NATSBus struct {
	conn *nats.Conn
}

func NewNATSBus(url string) (*NATSBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSBus{conn: conn}, nil
}

func (b *NATSBus) Publish(subject string, data []byte) error {
	return b.conn.Publish(subject, data)
}

func (b *NATSBus) Subscribe(subject string, handler Handler) (Subscription, error) {
	sub, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (b *NATSBus) Close() {
	b.conn.Close()
}

// ---------------------------------------------------------------------------
// In-memory bus
// ---------------------------------------------------------------------------

// MemoryBus is a process-local Bus. It backs single-instance deployments
// without a broker and every test.
type MemoryBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*memorySub
}

type memorySub struct {
	bus     *MemoryBus
	id      int
	pattern string
	handler Handler
}

func (s *memorySub) Unsubscribe() error {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	delete(s.bus.subs, s.id)
	return nil
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[int]*memorySub)}
}

func (b *MemoryBus) Publish(subject string, data []byte) error {
	b.mu.RLock()
	matched := make([]*memorySub, 0, len(b.subs))
	for _, sub := range b.subs {
		if subjectMatches(sub.pattern, subject) {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range matched {
		sub.handler(subject, data)
	}
	return nil
}

func (b *MemoryBus) Subscribe(subject string, handler Handler) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := &memorySub{bus: b, id: b.nextID, pattern: subject, handler: handler}
	b.subs[sub.id] = sub
	return sub, nil
}

func (b *MemoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[int]*memorySub)
}

func subjectMatches(pattern, subject string) bool {
	pp := strings.Split(pattern, ".")
	sp := strings.Split(subject, ".")
	if len(pp) != len(sp) {
		return false
	}
	for i := range pp {
		if pp[i] != "*" && pp[i] != sp[i] {
			return false
		}
	}
	return true
}
