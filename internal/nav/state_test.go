package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsOnHome(t *testing.T) {
	s := New()
	assert.Equal(t, Home, s.Current())
}

func TestScreen_String(t *testing.T) {
	tests := []struct {
		screen Screen
		want   string
	}{
		{Home, "Home"},
		{Settings, "Settings"},
		{Profile, "Profile"},
		{Screen(42), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.screen.String())
	}
}

func TestScreens_OrderAndCopy(t *testing.T) {
	got := Screens()
	require.Equal(t, []Screen{Home, Settings, Profile}, got)

	got[0] = Profile
	assert.Equal(t, Home, Screens()[0], "mutating the returned slice must not affect the order")
}

func TestSelect_EveryTarget(t *testing.T) {
	for _, target := range Screens() {
		t.Run(target.String(), func(t *testing.T) {
			s := New()
			s.Select(target)
			assert.Equal(t, target, s.Current())
		})
	}
}

func TestSelect_HooksAndSubscribersOrder(t *testing.T) {
	s := New()
	var calls []string
	s.OnExit(Home, func() { calls = append(calls, "exit:Home") })
	s.OnEnter(Settings, func() { calls = append(calls, "enter:Settings") })
	s.Subscribe(func(from, to Screen) {
		calls = append(calls, "notify:"+from.String()+"->"+to.String())
	})

	changed := s.Select(Settings)

	assert.True(t, changed)
	assert.Equal(t, []string{"exit:Home", "enter:Settings", "notify:Home->Settings"}, calls)
}

func TestSelect_ActiveScreenIsIdempotent(t *testing.T) {
	s := New()
	var notified int
	var entered int
	s.OnEnter(Home, func() { entered++ })
	s.Subscribe(func(from, to Screen) { notified++ })

	changed := s.Select(Home)

	assert.False(t, changed)
	assert.Equal(t, Home, s.Current())
	assert.Zero(t, notified)
	assert.Zero(t, entered)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := New()
	var a, b int
	unsubA := s.Subscribe(func(from, to Screen) { a++ })
	s.Subscribe(func(from, to Screen) { b++ })

	s.Select(Settings)
	unsubA()
	s.Select(Profile)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)

	// Calling it again is harmless.
	unsubA()
	s.Select(Home)
	assert.Equal(t, 1, a)
	assert.Equal(t, 3, b)
}

func TestSubscribe_UnsubscribeDuringNotify(t *testing.T) {
	s := New()
	var calls int
	var unsub func()
	unsub = s.Subscribe(func(from, to Screen) {
		calls++
		unsub()
	})
	var others int
	s.Subscribe(func(from, to Screen) { others++ })

	s.Select(Settings)
	s.Select(Profile)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, others)
}

func TestScreen_NextPrevWrap(t *testing.T) {
	assert.Equal(t, Settings, Home.Next())
	assert.Equal(t, Profile, Settings.Next())
	assert.Equal(t, Home, Profile.Next())

	assert.Equal(t, Profile, Home.Prev())
	assert.Equal(t, Settings, Profile.Prev())
	assert.Equal(t, Home, Settings.Prev())

	assert.Equal(t, Home, Screen(42).Next(), "unknown screens fall back to Home")
}
