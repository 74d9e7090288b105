package menu

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type State string

const (
	StateClosed State = "closed"
	StateOpen   State = "open"
)

// CloseDelay bridges the pointer's travel across the gap between a menu
// trigger and its dropdown panel; closing immediately on pointer-leave makes
// the panel flicker shut mid-movement.
const CloseDelay = 150 * time.Millisecond

type Mode int

const (
	// ModeDesktop opens on hover and closes after CloseDelay once the
	// pointer has left both trigger and panel.
	ModeDesktop Mode = iota
	// ModeMobile is a tap-to-toggle accordion with no delay semantics.
	ModeMobile
)

type Item struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Config struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// Menu is one dropdown or accordion instance. Every menu on the page is an
// independent instance of this type; none of them share state.
type Menu struct {
	cfg   Config
	mode  Mode
	clock clockwork.Clock
	delay time.Duration

	mu         sync.Mutex
	state      State
	closeTimer clockwork.Timer
	torn       bool

	onState        func(State)
	onOverlayClose func()
}

type Option func(*Menu)

// WithClock substitutes the timer source, letting tests drive fake time.
func WithClock(clock clockwork.Clock) Option {
	return func(m *Menu) {
		m.clock = clock
	}
}

// WithStateListener observes every state transition.
func WithStateListener(fn func(State)) Option {
	return func(m *Menu) {
		m.onState = fn
	}
}

// WithOverlayCloser wires the mobile accordion to the enclosing navigation
// overlay, which closes when a link inside the accordion is activated.
func WithOverlayCloser(fn func()) Option {
	return func(m *Menu) {
		m.onOverlayClose = fn
	}
}

func New(cfg Config, mode Mode, opts ...Option) *Menu {
	m := &Menu{
		cfg:   cfg,
		mode:  mode,
		clock: clockwork.NewRealClock(),
		delay: CloseDelay,
		state: StateClosed,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Menu) Config() Config {
	return m.cfg
}

func (m *Menu) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// PointerEnter handles the pointer entering the trigger or the panel. Any
// pending close is canceled before the menu opens.
func (m *Menu) PointerEnter() {
	if m.mode != ModeDesktop {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.torn {
		return
	}
	m.cancelCloseLocked()
	m.setStateLocked(StateOpen)
}

// PointerLeave schedules a close after the delay rather than closing
// immediately. A PointerEnter before expiry cancels the scheduled close.
func (m *Menu) PointerLeave() {
	if m.mode != ModeDesktop {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.torn || m.state != StateOpen {
		return
	}
	m.cancelCloseLocked()

	var timer clockwork.Timer
	timer = m.clock.AfterFunc(m.delay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// A canceled or replaced timer may still fire; only the timer that
		// is currently scheduled is allowed to close the menu.
		if m.torn || m.closeTimer != timer {
			return
		}
		m.closeTimer = nil
		m.setStateLocked(StateClosed)
	})
	m.closeTimer = timer
}

// Toggle flips the accordion open or closed on tap.
func (m *Menu) Toggle() {
	if m.mode != ModeMobile {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.torn {
		return
	}
	if m.state == StateOpen {
		m.setStateLocked(StateClosed)
	} else {
		m.setStateLocked(StateOpen)
	}
}

// ActivateLink closes the menu immediately; selecting a destination never
// leaves the panel hanging open. On mobile it also signals the enclosing
// overlay to close.
func (m *Menu) ActivateLink() {
	m.mu.Lock()
	if m.torn {
		m.mu.Unlock()
		return
	}
	m.cancelCloseLocked()
	m.setStateLocked(StateClosed)
	overlay := m.onOverlayClose
	m.mu.Unlock()

	if m.mode == ModeMobile && overlay != nil {
		overlay()
	}
}

// Teardown cancels any scheduled close and permanently retires the menu.
// A close timer pending at teardown never fires afterwards.
func (m *Menu) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelCloseLocked()
	m.torn = true
}

func (m *Menu) cancelCloseLocked() {
	if m.closeTimer != nil {
		m.closeTimer.Stop()
		m.closeTimer = nil
	}
}

func (m *Menu) setStateLocked(next State) {
	if m.state == next {
		return
	}
	m.state = next
	if m.onState != nil {
		m.onState(next)
	}
}
