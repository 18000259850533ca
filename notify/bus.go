package notify

import "sync"

// Level classifies a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a user-facing message emitted by the purchase flow
type Notification struct {
	Level   Level
	Message string
}

// Bus fans notifications out to subscribers. Publish never blocks, a
// subscriber that falls behind drops messages rather than stalling the flow.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Notification
	closed bool
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Notification)}
}

// Subscribe returns a channel of notifications and a cancel func that
// releases the subscription and closes the channel.
func (b *Bus) Subscribe() (<-chan Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Notification, 16)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers to every subscriber without blocking
func (b *Bus) Publish(level Level, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- Notification{Level: level, Message: message}:
		default:
		}
	}
}

func (b *Bus) Info(message string)    { b.Publish(LevelInfo, message) }
func (b *Bus) Success(message string) { b.Publish(LevelSuccess, message) }
func (b *Bus) Warning(message string) { b.Publish(LevelWarning, message) }
func (b *Bus) Error(message string)   { b.Publish(LevelError, message) }

// Close shuts the bus down and closes every subscriber channel
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
