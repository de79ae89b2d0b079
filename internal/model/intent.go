package model

// IntentKind is the type of a navigation request
type IntentKind int

const (
	IntentPush IntentKind = iota
	IntentPop
)

// Intent is a user-triggered request to change the current screen.
// Target is set only for IntentPush.
type Intent struct {
	Kind   IntentKind
	Target Screen
}

// Push returns an intent that navigates to screen
func Push(screen Screen) Intent {
	return Intent{Kind: IntentPush, Target: screen}
}

// Pop returns an intent that goes back one screen
func Pop() Intent {
	return Intent{Kind: IntentPop}
}

// String returns a short human-readable form of the intent
func (i Intent) String() string {
	if i.Kind == IntentPop {
		return "pop"
	}
	return "push " + i.Target.String()
}
