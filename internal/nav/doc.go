package nav

// Package nav implements the stack-based navigator and the router that binds
// it to the screen flows. The navigator owns the screen stack and serializes
// every push and pop; the router activates the flow for the screen on top and
// publishes render snapshots to the rendering collaborator.
