package flow

import (
	"github.com/google/uuid"

	"github.com/ytget/places-guide/internal/model"
)

// Render is the snapshot handed to a rendering collaborator for the current
// screen. Exactly one of the state fields matches Screen.Kind.
type Render struct {
	Screen model.Screen
	// EntryID identifies the back stack entry on top. A pop back to an earlier
	// entry yields that entry's id again.
	EntryID   uuid.UUID
	Seq       uint64 // grows with every stack change
	CanGoBack bool

	Categories CategoryState
	PlaceList  PlaceListState
	Detail     PlaceDetailState
}

// Supersedes reports whether r is newer than other
func (r Render) Supersedes(other Render) bool {
	return r.Seq > other.Seq
}
