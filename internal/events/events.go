// Package events provides synchronous publish/subscribe notification for the
// simulation. Publishing runs every subscriber inline, in subscription order.
package events

// Event is any notification record. The handled flag lets one subscriber
// tell later subscribers that it already reacted.
type Event interface {
	Handled() bool
	MarkHandled()
}

// Base implements the handled flag. Concrete events embed it and are
// published by pointer.
type Base struct {
	handled bool
}

// Handled reports whether a subscriber marked the event as handled.
func (b *Base) Handled() bool {
	return b.handled
}

// MarkHandled sets the handled flag.
func (b *Base) MarkHandled() {
	b.handled = true
}

// Subscriber receives events from a Publisher.
type Subscriber interface {
	Notify(e Event)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(e Event)

// Notify calls f(e).
func (f SubscriberFunc) Notify(e Event) {
	f(e)
}

// Subscription identifies one registration on a Publisher.
type Subscription int

type entry struct {
	id  Subscription
	sub Subscriber
}

// Publisher fans events out to its subscribers. The zero value is ready to use.
// A Publisher is not safe for concurrent use.
type Publisher struct {
	next    Subscription
	entries []entry
}

// Subscribe registers s and returns a handle for Unsubscribe.
func (p *Publisher) Subscribe(s Subscriber) Subscription {
	p.next++
	p.entries = append(p.entries, entry{id: p.next, sub: s})
	return p.next
}

// SubscribeFunc registers a plain function.
func (p *Publisher) SubscribeFunc(f func(Event)) Subscription {
	return p.Subscribe(SubscriberFunc(f))
}

// Unsubscribe removes a registration. Unknown handles are ignored.
func (p *Publisher) Unsubscribe(id Subscription) {
	for i, e := range p.entries {
		if e.id == id {
			p.entries = append(p.entries[:i:i], p.entries[i+1:]...)
			return
		}
	}
}

// Reset drops every subscriber.
func (p *Publisher) Reset() {
	p.entries = nil
}

// Len returns the number of subscribers.
func (p *Publisher) Len() int {
	return len(p.entries)
}

// Publish delivers e to every subscriber registered when Publish was called.
// Subscribers may subscribe or unsubscribe while being notified.
func (p *Publisher) Publish(e Event) {
	if len(p.entries) == 0 {
		return
	}
	snapshot := make([]entry, len(p.entries))
	copy(snapshot, p.entries)
	for _, en := range snapshot {
		en.sub.Notify(e)
	}
}
