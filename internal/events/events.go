// ABOUTME: Document-level click bus with scoped, uuid-keyed subscriptions
// ABOUTME: Lets widgets detect clicks outside themselves and release the listener on teardown

package events

import (
	"github.com/google/uuid"
)

// Point is a cell position on the screen.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned screen region.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Click is a pointer press somewhere on the document.
type Click struct {
	At Point
}

// Handler receives every dispatched click.
type Handler func(Click)

type listener struct {
	id uuid.UUID
	fn Handler
}

// Document fans clicks out to its subscribers in subscription order.
// It is meant to be driven from a single event loop.
type Document struct {
	listeners []listener
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	ID  uuid.UUID
	doc *Document
}

// Subscribe registers h until the returned subscription is released.
func (d *Document) Subscribe(h Handler) *Subscription {
	id := uuid.New()
	d.listeners = append(d.listeners, listener{id: id, fn: h})
	return &Subscription{ID: id, doc: d}
}

// Release removes the listener. Releasing twice is a no-op.
func (s *Subscription) Release() {
	if s == nil || s.doc == nil {
		return
	}
	d := s.doc
	for i, l := range d.listeners {
		if l.id == s.ID {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
	s.doc = nil
}

// Dispatch delivers c to every current listener.
func (d *Document) Dispatch(c Click) {
	// Handlers may release themselves while being called.
	snapshot := make([]listener, len(d.listeners))
	copy(snapshot, d.listeners)
	for _, l := range snapshot {
		l.fn(c)
	}
}

// Len returns the number of active listeners.
func (d *Document) Len() int {
	return len(d.listeners)
}
