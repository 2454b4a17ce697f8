package nav

// ChangeFunc is called after the active screen moves from one screen to another.
type ChangeFunc func(from, to Screen)

// State owns the currently active screen. It is not safe for concurrent use;
// all mutation is expected to happen on the UI event loop.
type State struct {
	current     Screen
	onEnter     map[Screen]func()
	onExit      map[Screen]func()
	subscribers []subscriber
	nextID      int
}

type subscriber struct {
	id int
	fn ChangeFunc
}

// New returns a State positioned on Home.
func New() *State {
	return &State{
		current: Home,
		onEnter: make(map[Screen]func()),
		onExit:  make(map[Screen]func()),
	}
}

// Current returns the active screen.
func (s *State) Current() Screen {
	return s.current
}

// OnEnter registers fn to run whenever screen becomes active.
// Replaces any previous hook for screen.
func (s *State) OnEnter(screen Screen, fn func()) {
	s.onEnter[screen] = fn
}

// OnExit registers fn to run whenever screen stops being active.
func (s *State) OnExit(screen Screen, fn func()) {
	s.onExit[screen] = fn
}

// Subscribe adds fn to the change listeners. Listeners run in registration
// order after the enter hook. The returned func removes the listener.
func (s *State) Subscribe(fn ChangeFunc) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Select makes to the active screen and reports whether anything changed.
// Selecting the active screen is a no-op: no hooks run and no listener is notified.
func (s *State) Select(to Screen) bool {
	from := s.current
	if from == to {
		return false
	}
	if fn, ok := s.onExit[from]; ok {
		fn()
	}
	s.current = to
	if fn, ok := s.onEnter[to]; ok {
		fn()
	}
	// Copy so a listener may unsubscribe itself while being notified.
	subs := append([]subscriber(nil), s.subscribers...)
	for _, sub := range subs {
		sub.fn(from, to)
	}
	return true
}
