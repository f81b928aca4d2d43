package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingEvent struct {
	Base
	N int
}

func TestPublishInSubscriptionOrder(t *testing.T) {
	var p Publisher
	var got []string

	p.SubscribeFunc(func(Event) { got = append(got, "a") })
	p.SubscribeFunc(func(Event) { got = append(got, "b") })
	p.Publish(&pingEvent{N: 1})

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestHandledFlagIsShared(t *testing.T) {
	var p Publisher
	var sawHandled bool

	p.SubscribeFunc(func(e Event) { e.MarkHandled() })
	p.SubscribeFunc(func(e Event) { sawHandled = e.Handled() })

	ev := &pingEvent{}
	p.Publish(ev)

	assert.True(t, sawHandled)
	assert.True(t, ev.Handled())
}

func TestUnsubscribe(t *testing.T) {
	var p Publisher
	calls := 0

	id := p.SubscribeFunc(func(Event) { calls++ })
	p.Publish(&pingEvent{})
	p.Unsubscribe(id)
	p.Publish(&pingEvent{})
	p.Unsubscribe(id)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, p.Len())
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	var p Publisher
	calls := 0

	var self Subscription
	self = p.SubscribeFunc(func(Event) { p.Unsubscribe(self) })
	p.SubscribeFunc(func(Event) { calls++ })

	p.Publish(&pingEvent{})
	p.Publish(&pingEvent{})

	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, p.Len())
}

func TestReset(t *testing.T) {
	var p Publisher
	p.SubscribeFunc(func(Event) { t.Error("reset subscriber was notified") })
	p.Reset()
	p.Publish(&pingEvent{})
}
