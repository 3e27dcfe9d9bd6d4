// Package nowplaying shares the tracker's current snapshot with other
// processes through a short-lived cache file, so "vlctrack status" can answer
// without opening a second rc session while a watcher is running.
package nowplaying

import (
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/log"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/where"
)

// Lifetime bounds how stale a snapshot may be. A watcher rewrites it after every poll.
const Lifetime = 10 * time.Second

// Snapshot is what a running tracker last saw.
type Snapshot struct {
	Playing     bool          `json:"playing"`
	Status      player.Status `json:"status"`
	PublishedAt time.Time     `json:"published_at,omitzero"`
}

// Cache reads and writes the snapshot file.
type Cache struct {
	cacher *gache.Cache[Snapshot]
}

// New opens the snapshot at path. An empty path selects the default location.
func New(path string) *Cache {
	if path == "" {
		path = where.NowPlaying()
	}

	return &Cache{
		cacher: gache.New[Snapshot](&gache.Options{
			Path:       path,
			Lifetime:   Lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// Publish stores current. It satisfies tracker.Publisher.
func (c *Cache) Publish(current mo.Option[player.Status]) {
	status, ok := current.Get()
	snapshot := Snapshot{Playing: ok, Status: status, PublishedAt: time.Now()}
	if err := c.cacher.Set(snapshot); err != nil {
		log.Warnf("publish now playing: %v", err)
	}
}

// Get returns the published snapshot. fresh is false when no watcher has
// written one recently, including when nothing was ever written.
func (c *Cache) Get() (snapshot Snapshot, fresh bool, err error) {
	snapshot, expired, err := c.cacher.Get()
	if err != nil {
		return Snapshot{}, false, err
	}

	if expired || snapshot.PublishedAt.IsZero() {
		return Snapshot{}, false, nil
	}

	return snapshot, true, nil
}

// Current converts a fresh snapshot back to the tracker's representation.
func (s Snapshot) Current() mo.Option[player.Status] {
	if !s.Playing {
		return mo.None[player.Status]()
	}
	return mo.Some(s.Status)
}
