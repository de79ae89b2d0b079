package ui

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/places-guide/internal/catalog"
	"github.com/ytget/places-guide/internal/platform"
)

//go:generate fyne bundle -o bundled.go -pkg ui placeholders

// placeholders stand in for the seed images when the assets directory lacks them
var placeholders = map[string]fyne.Resource{
	catalog.ImageTower:   resourceTowerPng,
	catalog.ImageEduardo: resourceEduardoparkPng,
	catalog.ImageRamiro:  resourceRamirorestaurantsPng,
}

// ImageLoader resolves place image references to Fyne resources.
// Files in the assets directory win, then the bundled placeholders, then a
// theme icon.
type ImageLoader struct {
	mu    sync.Mutex
	dir   string
	cache map[string]fyne.Resource
}

// NewImageLoader creates a loader reading images from dir
func NewImageLoader(dir string) *ImageLoader {
	return &ImageLoader{
		dir:   dir,
		cache: make(map[string]fyne.Resource),
	}
}

// Directory returns the directory images are read from
func (l *ImageLoader) Directory() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dir
}

// SetDirectory switches to another directory and drops cached images
func (l *ImageLoader) SetDirectory(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if dir == l.dir {
		return
	}
	l.dir = dir
	l.cache = make(map[string]fyne.Resource)
}

// Load returns the resource for ref
func (l *ImageLoader) Load(ref string) fyne.Resource {
	l.mu.Lock()
	defer l.mu.Unlock()

	if res, ok := l.cache[ref]; ok {
		return res
	}

	res := l.load(ref)
	l.cache[ref] = res
	return res
}

func (l *ImageLoader) load(ref string) fyne.Resource {
	path, err := platform.ResolveImagePath(l.dir, ref)
	if err != nil {
		return fallback(ref, err)
	}

	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return fallback(ref, err)
	}
	return res
}

func fallback(ref string, err error) fyne.Resource {
	if res, ok := placeholders[ref]; ok {
		return res
	}
	log.Printf("Image fallback for %q: %v", ref, err)
	return theme.BrokenImageIcon()
}
