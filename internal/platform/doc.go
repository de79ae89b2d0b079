package platform

// Package platform contains OS/platform integration glue: locating the
// directory with place images and resolving image references to files.
