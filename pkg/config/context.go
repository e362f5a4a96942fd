package config

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Context holds the single published Document of a process.
//
// A Context is created once at startup and passed to every component that
// needs configuration. Publish succeeds exactly once; afterwards the
// document is immutable and Get is safe for any number of concurrent
// readers without locking.
type Context struct {
	current atomic.Pointer[Snapshot]
}

// Snapshot is a read-only view of a published document. Every accessor
// returns a copy, so callers cannot modify the published state.
type Snapshot struct {
	doc         *Document
	generation  string
	publishedAt time.Time
}

// NewContext returns an empty, unpublished Context.
func NewContext() *Context {
	return &Context{}
}

// Publish makes doc the process-wide configuration. The Context keeps its
// own deep copy, so later changes to doc are not observed. A second call
// returns ErrAlreadyPublished and leaves the first document in place.
func (c *Context) Publish(doc *Document) error {
	snap := &Snapshot{
		doc:         doc.Clone(),
		generation:  uuid.NewString(),
		publishedAt: time.Now().UTC(),
	}
	if snap.doc == nil {
		snap.doc = &Document{}
	}
	if !c.current.CompareAndSwap(nil, snap) {
		return ErrAlreadyPublished
	}
	return nil
}

// Get returns the published snapshot, or ErrNotPublished if Publish has not
// succeeded yet.
func (c *Context) Get() (*Snapshot, error) {
	snap := c.current.Load()
	if snap == nil {
		return nil, ErrNotPublished
	}
	return snap, nil
}

// Published reports whether Publish has succeeded.
func (c *Context) Published() bool {
	return c.current.Load() != nil
}

// Generation is the unique id assigned when the snapshot was published.
func (s *Snapshot) Generation() string { return s.generation }

// PublishedAt is when the snapshot was published (UTC).
func (s *Snapshot) PublishedAt() time.Time { return s.publishedAt }

// Document returns a deep copy of the published document.
func (s *Snapshot) Document() *Document { return s.doc.Clone() }

// Has reports whether the published document carries the section.
func (s *Snapshot) Has(sec Section) bool { return s.doc.Has(sec) }

// Storage returns a copy of the storage section.
func (s *Snapshot) Storage() (StorageConfig, bool) {
	return deref(s.doc.Storage)
}

// Cache returns a copy of the cache section.
func (s *Snapshot) Cache() (CacheConfig, bool) {
	if s.doc.Cache == nil {
		return CacheConfig{}, false
	}
	return *cloneCache(s.doc.Cache), true
}

// Messaging returns a copy of the messaging section.
func (s *Snapshot) Messaging() (MessagingConfig, bool) {
	return deref(s.doc.Messaging)
}

// Upstream returns a copy of the upstream API section.
func (s *Snapshot) Upstream() (UpstreamConfig, bool) {
	return deref(s.doc.Upstream)
}

// Servers returns a copy of the servers section.
func (s *Snapshot) Servers() (ServersConfig, bool) {
	if s.doc.Servers == nil {
		return ServersConfig{}, false
	}
	return *cloneServers(s.doc.Servers), true
}

// TLS returns a copy of the TLS section.
func (s *Snapshot) TLS() (TLSConfig, bool) {
	return deref(s.doc.TLS)
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
