package nav

import (
	"log"
	"sync"

	"github.com/ytget/places-guide/internal/flow"
	"github.com/ytget/places-guide/internal/model"
)

// Router connects user intents to the navigator and keeps the flow for the
// current screen activated. Intents are processed one at a time.
type Router struct {
	mu  sync.Mutex
	nav *Navigator

	categories *flow.CategoryFlow
	places     *flow.PlaceListFlow
	detail     *flow.PlaceDetailFlow

	seq      uint64
	current  flow.Render
	onRender func(flow.Render)
}

// NewRouter creates a router over navigator and activates its current screen
func NewRouter(navigator *Navigator, catalog flow.Catalog) *Router {
	r := &Router{
		nav:        navigator,
		categories: flow.NewCategoryFlow(catalog),
		places:     flow.NewPlaceListFlow(catalog),
		detail:     flow.NewPlaceDetailFlow(catalog),
	}
	r.current = r.activate(navigator.Current())
	return r
}

// OnRender sets the function that receives a snapshot after every change.
// Snapshots are delivered outside the router lock, so concurrent intents may
// deliver them out of order; listeners drop those that do not Supersede the
// one they show.
func (r *Router) OnRender(callback func(flow.Render)) {
	r.mu.Lock()
	r.onRender = callback
	r.mu.Unlock()
}

// Render returns the snapshot of the current screen
func (r *Router) Render() flow.Render {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Stack returns the screens from root to top
func (r *Router) Stack() []model.Screen {
	return r.nav.Stack()
}

// Depth returns the number of screens on the stack
func (r *Router) Depth() int {
	return r.nav.Depth()
}

// SelectCategory handles a category tap on the category list screen
func (r *Router) SelectCategory(name string) bool {
	return r.handle(model.ScreenCategoryList, func() model.Intent {
		return r.categories.Select(name)
	})
}

// SelectPlace handles a place tap on the place list screen
func (r *Router) SelectPlace(id int) bool {
	return r.handle(model.ScreenPlaceList, func() model.Intent {
		return r.places.Select(id)
	})
}

// GoBack pops the current screen. It returns false at the root.
func (r *Router) GoBack() bool {
	return r.Dispatch(model.Pop())
}

// Dispatch applies any intent regardless of the current screen
func (r *Router) Dispatch(intent model.Intent) bool {
	r.mu.Lock()
	changed := r.apply(intent)
	snapshot, callback := r.current, r.onRender
	r.mu.Unlock()

	publish(changed, callback, snapshot)
	return changed
}

// handle runs a selection only if the current screen is of kind. Stale
// selections from a screen that is no longer on top are dropped.
func (r *Router) handle(kind model.ScreenKind, selection func() model.Intent) bool {
	r.mu.Lock()
	top := r.nav.Current().Screen
	if top.Kind != kind {
		r.mu.Unlock()
		log.Printf("Selection for %s ignored on %s", kind, top)
		return false
	}
	changed := r.apply(selection())
	snapshot, callback := r.current, r.onRender
	r.mu.Unlock()

	publish(changed, callback, snapshot)
	return changed
}

// apply mutates the stack and re-activates the top flow.
// Callers must hold r.mu.
func (r *Router) apply(intent model.Intent) bool {
	if !r.nav.Dispatch(intent) {
		return false
	}
	r.seq++
	r.current = r.activate(r.nav.Current())
	return true
}

func publish(changed bool, callback func(flow.Render), snapshot flow.Render) {
	if changed && callback != nil {
		callback(snapshot)
	}
}

// activate prepares the flow for the entry's screen and builds its snapshot.
// Callers must hold r.mu.
func (r *Router) activate(entry Entry) flow.Render {
	screen := entry.Screen
	render := flow.Render{
		Screen:    screen,
		EntryID:   entry.ID,
		Seq:       r.seq,
		CanGoBack: r.nav.CanPop(),
	}

	switch screen.Kind {
	case model.ScreenCategoryList:
		r.categories.Activate()
		render.Categories = r.categories.State()
	case model.ScreenPlaceList:
		r.places.Activate(screen.Category)
		render.PlaceList = r.places.State()
	case model.ScreenPlaceDetail:
		r.detail.Activate(screen.PlaceID)
		render.Detail = r.detail.State()
	}

	return render
}
