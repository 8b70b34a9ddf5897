package gui

// Cleanable is implemented by stores that drop entries not used recently.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

var (
	registeredStores []Cleanable
	currentFrame     uint64
)

// NextFrame advances the frame counter and cleans every FrameStore.
// Context.Reset calls it once per frame.
func NextFrame() {
	currentFrame++
	for _, store := range registeredStores {
		store.Cleanup(currentFrame)
	}
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore keeps typed per-widget state between frames. Entries not
// touched during the previous frame are removed automatically, so a widget
// that stops being drawn forgets its state.
//
// Create one store per state type at package level:
//
//	var sliderStore = NewFrameStore[SliderState]()
//
// The GUI is single-threaded; stores are not safe for concurrent use.
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a store and registers it for per-frame cleanup.
func NewFrameStore[T any]() *FrameStore[T] {
	store := &FrameStore[T]{states: make(map[ID]*stateEntry[T])}
	registeredStores = append(registeredStores, store)
	return store
}

// Get returns the state for id, creating it from defaultVal if missing, and
// marks it as used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: defaultVal}
		s.states[id] = entry
	}
	entry.lastFrame = currentFrame
	return &entry.value
}

// Cleanup removes entries not accessed in the previous frame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	return len(s.states)
}
