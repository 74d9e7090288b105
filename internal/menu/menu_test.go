package menu

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(id string) Config {
	return Config{
		ID:    id,
		Label: "Work Permits",
		Items: []Item{{Label: "LMIA-Based Work Permits", Href: "/work-permits/lmia"}},
	}
}

func TestDesktopOpensOnEnter(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := New(testConfig("work-permits"), ModeDesktop, WithClock(clock))

	assert.Equal(t, StateClosed, m.State())
	m.PointerEnter()
	assert.Equal(t, StateOpen, m.State())
}

func TestDesktopReEnterWithinDelayKeepsOpen(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := New(testConfig("work-permits"), ModeDesktop, WithClock(clock))

	m.PointerEnter()
	m.PointerLeave()

	clock.Advance(100 * time.Millisecond)
	m.PointerEnter()

	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, StateOpen, m.State(), "re-entering before the delay cancels the close")
}

func TestDesktopClosesAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := New(testConfig("work-permits"), ModeDesktop, WithClock(clock))

	m.PointerEnter()
	m.PointerLeave()

	clock.Advance(149 * time.Millisecond)
	assert.Equal(t, StateOpen, m.State(), "still within the close delay")

	clock.Advance(51 * time.Millisecond)
	assert.Equal(t, StateClosed, m.State())
}

func TestDesktopLinkActivationClosesImmediately(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := New(testConfig("work-permits"), ModeDesktop, WithClock(clock))

	m.PointerEnter()
	m.ActivateLink()
	assert.Equal(t, StateClosed, m.State())
}

func TestTeardownCancelsPendingClose(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var transitions []State
	m := New(testConfig("work-permits"), ModeDesktop,
		WithClock(clock),
		WithStateListener(func(s State) { transitions = append(transitions, s) }),
	)

	m.PointerEnter()
	m.PointerLeave()
	require.Equal(t, []State{StateOpen}, transitions)

	require.NotPanics(t, m.Teardown)

	clock.Advance(time.Second)
	assert.Equal(t, []State{StateOpen}, transitions,
		"no close transition may fire after teardown")
}

func TestRepeatedLeaveReschedules(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := New(testConfig("work-permits"), ModeDesktop, WithClock(clock))

	m.PointerEnter()
	m.PointerLeave()
	clock.Advance(100 * time.Millisecond)
	m.PointerEnter()
	m.PointerLeave()

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, StateOpen, m.State(), "second leave restarted the delay")
	clock.Advance(60 * time.Millisecond)
	assert.Equal(t, StateClosed, m.State())
}

func TestMobileToggle(t *testing.T) {
	m := New(testConfig("study"), ModeMobile)

	m.Toggle()
	assert.Equal(t, StateOpen, m.State())
	m.Toggle()
	assert.Equal(t, StateClosed, m.State())
}

func TestMobileLinkActivationClosesOverlay(t *testing.T) {
	overlayClosed := false
	m := New(testConfig("study"), ModeMobile, WithOverlayCloser(func() { overlayClosed = true }))

	m.Toggle()
	m.ActivateLink()

	assert.Equal(t, StateClosed, m.State())
	assert.True(t, overlayClosed, "mobile link activation signals the enclosing overlay")
}

func TestMobileIgnoresHoverEvents(t *testing.T) {
	m := New(testConfig("visit"), ModeMobile)
	m.PointerEnter()
	assert.Equal(t, StateClosed, m.State())
}

func TestMenusAreIndependent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	a := New(testConfig("work-permits"), ModeDesktop, WithClock(clock))
	b := New(testConfig("study"), ModeDesktop, WithClock(clock))

	a.PointerEnter()
	assert.Equal(t, StateOpen, a.State())
	assert.Equal(t, StateClosed, b.State())

	a.PointerLeave()
	b.PointerEnter()
	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, StateClosed, a.State())
	assert.Equal(t, StateOpen, b.State())
}

func TestBarBuildsFiveMenus(t *testing.T) {
	configs := []Config{
		testConfig("work-permits"), testConfig("study"), testConfig("visit"),
		testConfig("business"), testConfig("practice-areas"),
	}
	bar := NewBar(configs, ModeDesktop, WithClock(clockwork.NewFakeClock()))

	for _, id := range []string{"work-permits", "study", "visit", "business", "practice-areas"} {
		m, ok := bar.Menu(id)
		require.True(t, ok, "menu %s missing", id)
		assert.Equal(t, StateClosed, m.State())
	}
	_, ok := bar.Menu("nope")
	assert.False(t, ok)

	require.NotPanics(t, bar.Teardown)
}
