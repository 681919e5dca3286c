// Package sse pushes content change notifications to preview clients over
// Server-Sent Events.
package sse

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Change kinds.
const (
	KindCreated = "created"
	KindUpdated = "updated"
	KindDeleted = "deleted"
)

// SiteUpdated is the coalesced event sent after any content change.
const SiteUpdated = "site.updated"

const (
	clientBuffer     = 64
	defaultThrottle  = 2 * time.Second
	defaultHeartbeat = 25 * time.Second
)

// Event is one named SSE message.
type Event struct {
	Name string
	Data any
}

// Change describes one content file that was created, updated or deleted.
type Change struct {
	Kind       string `json:"-"`
	Path       string `json:"path"`
	Collection string `json:"collection"`
}

func (c Change) valid() bool {
	switch c.Kind {
	case KindCreated, KindUpdated, KindDeleted:
		return true
	}
	return false
}

// Option configures a Broker.
type Option func(*Broker)

// WithThrottle limits site.updated to one event per d.
func WithThrottle(d time.Duration) Option {
	return func(b *Broker) {
		if d > 0 {
			b.throttle = d
		}
	}
}

// WithHeartbeat sets the interval of keep-alive comments on open streams.
func WithHeartbeat(d time.Duration) Option {
	return func(b *Broker) {
		if d > 0 {
			b.heartbeat = d
		}
	}
}

// Broker fans events out to connected streams. One loop goroutine owns the
// subscriber set, the event sequence and the site.updated throttle.
type Broker struct {
	throttle  time.Duration
	heartbeat time.Duration

	join    chan chan []byte
	leave   chan chan []byte
	events  chan Event
	changes chan Change
	counts  chan chan int

	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewBroker starts a broker.
func NewBroker(opts ...Option) *Broker {
	b := &Broker{
		throttle:  defaultThrottle,
		heartbeat: defaultHeartbeat,
		join:      make(chan chan []byte),
		leave:     make(chan chan []byte),
		events:    make(chan Event, 256),
		changes:   make(chan Change, 256),
		counts:    make(chan chan int),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	go b.loop()
	return b
}

// frame encodes one message in the text/event-stream format.
func frame(id uint64, e Event) ([]byte, error) {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(e.Name)+len(data)+32)
	buf = append(buf, "id: "...)
	buf = strconv.AppendUint(buf, id, 10)
	buf = append(buf, "\nevent: "...)
	buf = append(buf, e.Name...)
	buf = append(buf, "\ndata: "...)
	buf = append(buf, data...)
	return append(buf, '\n', '\n'), nil
}

func (b *Broker) loop() {
	defer close(b.done)

	subs := make(map[chan []byte]struct{})
	var (
		seq      uint64
		lastSite time.Time
	)

	send := func(e Event) {
		seq++
		msg, err := frame(seq, e)
		if err != nil {
			return
		}
		for ch := range subs {
			select {
			case ch <- msg:
			default:
				// slow reader, drop the frame
			}
		}
	}

	for {
		select {
		case <-b.quit:
			for ch := range subs {
				close(ch)
			}
			return

		case ch := <-b.join:
			subs[ch] = struct{}{}

		case ch := <-b.leave:
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}

		case e := <-b.events:
			send(e)

		case c := <-b.changes:
			send(Event{Name: "content." + c.Kind, Data: c})
			if now := time.Now(); now.Sub(lastSite) >= b.throttle {
				lastSite = now
				send(Event{Name: SiteUpdated, Data: struct{}{}})
			}

		case resp := <-b.counts:
			resp <- len(subs)
		}
	}
}

func (b *Broker) stopped() bool {
	select {
	case <-b.quit:
		return true
	default:
		return false
	}
}

// Close stops the loop and closes every subscriber channel.
func (b *Broker) Close() {
	b.stopOnce.Do(func() { close(b.quit) })
	<-b.done
}

// Subscribe registers a new stream. After Close it returns a closed channel.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, clientBuffer)
	select {
	case b.join <- ch:
	case <-b.done:
		close(ch)
	}
	return ch
}

// Unsubscribe removes a stream and closes its channel.
func (b *Broker) Unsubscribe(ch chan []byte) {
	select {
	case b.leave <- ch:
	case <-b.done:
	}
}

// Clients returns the number of open streams.
func (b *Broker) Clients() int {
	resp := make(chan int, 1)
	select {
	case b.counts <- resp:
	case <-b.done:
		return 0
	}
	select {
	case n := <-resp:
		return n
	case <-b.done:
		return 0
	}
}

// Publish broadcasts an arbitrary event.
func (b *Broker) Publish(e Event) {
	if b.stopped() {
		return
	}
	select {
	case b.events <- e:
	case <-b.done:
	}
}

// PublishChange broadcasts content.<kind> followed by a throttled
// site.updated. Changes with an unknown kind are ignored.
func (b *Broker) PublishChange(c Change) {
	if !c.valid() || b.stopped() {
		return
	}
	select {
	case b.changes <- c:
	case <-b.done:
	}
}

// ServeHTTP streams events to one client (GET /api/events).
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(": connected\n\n"))
	flusher.Flush()

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	ping := time.NewTicker(b.heartbeat)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ping.C:
			_, _ = w.Write([]byte(": ping\n\n"))
			flusher.Flush()
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write(msg)
			flusher.Flush()
		}
	}
}
