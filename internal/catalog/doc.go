package catalog

// Package catalog owns the static list of places and answers read-only
// queries over it. A Store is validated once at construction and never
// mutated afterwards, so it may be shared freely between renderers.
