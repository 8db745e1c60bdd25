// Package store holds the active display language for a session and fans
// out change notifications to the views that render it.
package store

import (
	"sync"

	"github.com/discoverdxb/appcore/i18n"
)

type subscriber struct {
	id int
	fn func(i18n.Lang)
}

// Store is the single writer of the active language. One Store exists per
// session; consumers receive it by handle and subscribe for changes.
type Store struct {
	mu      sync.Mutex
	lang    i18n.Lang
	subs    []subscriber
	nextID  int
	onPanic func(recovered any)
}

// New returns a Store starting at i18n.Default.
func New() *Store {
	return NewWith(i18n.Default)
}

// NewWith returns a Store starting at lang, or at i18n.Default when lang is
// not a supported language.
func NewWith(lang i18n.Lang) *Store {
	if !lang.Valid() {
		lang = i18n.Default
	}
	return &Store{lang: lang}
}

// Lang returns the active language.
func (s *Store) Lang() i18n.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Set commits lang and notifies every subscriber exactly once, synchronously
// and in registration order, before returning. Setting the value already
// active is a no-op with no notification. Unsupported values are ignored.
func (s *Store) Set(lang i18n.Lang) {
	if !lang.Valid() {
		return
	}
	s.mu.Lock()
	if lang == s.lang {
		s.mu.Unlock()
		return
	}
	s.lang = lang
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	// Callbacks run outside the lock against the snapshot, so consecutive
	// mutations each deliver a full, uncoalesced round.
	for _, sub := range subs {
		s.call(sub.fn, lang)
	}
}

// Toggle switches to the other supported language. With exactly two
// languages this always commits, so it always notifies exactly once.
func (s *Store) Toggle() {
	s.Set(s.Lang().Other())
}

// Subscribe registers fn to run on every committed change. The returned
// cancel is idempotent; it stops future rounds, but a round whose snapshot
// was already taken still delivers.
func (s *Store) Subscribe(fn func(i18n.Lang)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// OnSubscriberPanic installs a hook receiving values recovered from
// panicking subscribers. Each subscriber runs isolated, so one broken view
// does not stop the rest of the round.
func (s *Store) OnSubscriberPanic(hook func(recovered any)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPanic = hook
}

func (s *Store) call(fn func(i18n.Lang), lang i18n.Lang) {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			hook := s.onPanic
			s.mu.Unlock()
			if hook != nil {
				hook(r)
			}
		}
	}()
	fn(lang)
}
