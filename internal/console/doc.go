package console

// Package console is a terminal rendering collaborator. It prints the render
// snapshot of the current screen and turns typed commands into router calls.
