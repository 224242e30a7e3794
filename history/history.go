// Package history records which videos were played and how far.
package history

import (
	"github.com/clipdeck/clipdeck/filesystem"
	"github.com/clipdeck/clipdeck/video"
	"github.com/clipdeck/clipdeck/where"
	"github.com/metafates/gache"
)

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns all entries keyed by Key.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}

	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}

	return cached, nil
}

// Save records that v from service was played up to percentage.
// A lower percentage never replaces a higher one.
func Save(service string, v *video.Video, percentage float64) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	entry := newEntry(service, v)
	if existing, ok := saved[entry.key()]; ok {
		percentage = max(percentage, existing.WatchedPercentage)
	}
	entry.WatchedPercentage = percentage

	saved[entry.key()] = entry
	return cacher.Set(saved)
}

// Lookup returns the entry for id on service, if any.
func Lookup(service string, id int64) (*Entry, bool) {
	saved, err := Get()
	if err != nil {
		return nil, false
	}

	entry, ok := saved[Key(service, id)]
	return entry, ok
}

func Remove(entry *Entry) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, entry.key())
	return cacher.Set(saved)
}
