package nav

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/places-guide/internal/model"
)

// Entry is one element of the back stack
type Entry struct {
	ID     uuid.UUID
	Screen model.Screen
}

// Navigator is a stack of screens rooted at the category list.
// It is safe for concurrent use.
type Navigator struct {
	mu       sync.Mutex
	stack    []Entry
	onUpdate func(Entry) // called with the new top after each change
}

// New creates a navigator whose stack holds only the category list
func New() *Navigator {
	return &Navigator{
		stack: []Entry{newEntry(model.CategoryListScreen())},
	}
}

// SetUpdateCallback sets the function called after every stack change
func (n *Navigator) SetUpdateCallback(callback func(Entry)) {
	n.mu.Lock()
	n.onUpdate = callback
	n.mu.Unlock()
}

// Push puts screen on top of the stack and returns its entry
func (n *Navigator) Push(screen model.Screen) Entry {
	n.mu.Lock()
	entry := newEntry(screen)
	n.stack = append(n.stack, entry)
	callback := n.onUpdate
	depth := len(n.stack)
	n.mu.Unlock()

	log.Printf("Navigated to %s (depth %d)", screen, depth)
	notify(callback, entry)
	return entry
}

// Pop removes the top screen. At the root it does nothing and returns false.
func (n *Navigator) Pop() bool {
	n.mu.Lock()
	if len(n.stack) <= 1 {
		n.mu.Unlock()
		log.Printf("Back ignored: already at %s", model.CategoryListScreen())
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	top := n.stack[len(n.stack)-1]
	callback := n.onUpdate
	n.mu.Unlock()

	log.Printf("Navigated back to %s", top.Screen)
	notify(callback, top)
	return true
}

// Dispatch applies a navigation intent. It returns false when nothing changed.
func (n *Navigator) Dispatch(intent model.Intent) bool {
	switch intent.Kind {
	case model.IntentPush:
		n.Push(intent.Target)
		return true
	case model.IntentPop:
		return n.Pop()
	default:
		log.Printf("Unknown intent kind %d ignored", intent.Kind)
		return false
	}
}

// Current returns the entry on top of the stack
func (n *Navigator) Current() Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Stack returns the screens from root to top
func (n *Navigator) Stack() []model.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()

	screens := make([]model.Screen, 0, len(n.stack))
	for _, e := range n.stack {
		screens = append(screens, e.Screen)
	}
	return screens
}

// Depth returns the number of screens on the stack
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

// CanPop reports whether there is a screen to go back to
func (n *Navigator) CanPop() bool {
	return n.Depth() > 1
}

func newEntry(screen model.Screen) Entry {
	return Entry{ID: uuid.New(), Screen: screen}
}

func notify(callback func(Entry), entry Entry) {
	if callback != nil {
		callback(entry)
	}
}
