package config

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_GetBeforePublish(t *testing.T) {
	ctx := NewContext()
	assert.False(t, ctx.Published())

	snap, err := ctx.Get()
	assert.ErrorIs(t, err, ErrNotPublished)
	assert.Nil(t, snap)
}

func TestContext_PublishOnce(t *testing.T) {
	ctx := NewContext()
	first := customDocument()
	require.NoError(t, ctx.Publish(first))
	assert.True(t, ctx.Published())

	snap, err := ctx.Get()
	require.NoError(t, err)
	generation := snap.Generation()

	err = ctx.Publish(Defaults())
	assert.ErrorIs(t, err, ErrAlreadyPublished)

	again, err := ctx.Get()
	require.NoError(t, err)
	assert.Equal(t, generation, again.Generation())
	assert.Equal(t, customDocument(), again.Document())
}

func TestContext_PublishKeepsOwnCopy(t *testing.T) {
	ctx := NewContext()
	doc := customDocument()
	require.NoError(t, ctx.Publish(doc))

	doc.Storage.Endpoint = "mutated"
	doc.TLS = nil

	snap, err := ctx.Get()
	require.NoError(t, err)
	storage, ok := snap.Storage()
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1:9000", storage.Endpoint)
	assert.True(t, snap.Has(SectionTLS))
}

func TestContext_PublishNil(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Publish(nil))

	snap, err := ctx.Get()
	require.NoError(t, err)
	for _, s := range AllSections {
		assert.False(t, snap.Has(s))
	}
}

func TestSnapshot_Metadata(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Publish(Defaults()))
	snap, err := ctx.Get()
	require.NoError(t, err)

	_, err = uuid.Parse(snap.Generation())
	assert.NoError(t, err)
	assert.False(t, snap.PublishedAt().IsZero())
	assert.Equal(t, "UTC", snap.PublishedAt().Location().String())

	other := NewContext()
	require.NoError(t, other.Publish(Defaults()))
	otherSnap, err := other.Get()
	require.NoError(t, err)
	assert.NotEqual(t, snap.Generation(), otherSnap.Generation())
}

func TestSnapshot_AccessorsReturnCopies(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Publish(Defaults()))
	snap, err := ctx.Get()
	require.NoError(t, err)

	cache, ok := snap.Cache()
	require.True(t, ok)
	*cache.APIDB = 99
	cache.Host = "changed"

	servers, ok := snap.Servers()
	require.True(t, ok)
	servers.Auth.Port = 1

	doc := snap.Document()
	doc.Messaging.Topic = "changed"

	fresh, _ := snap.Cache()
	assert.Equal(t, DefaultCacheAPIDB, *fresh.APIDB)
	assert.Equal(t, DefaultCacheHost, fresh.Host)
	freshServers, _ := snap.Servers()
	assert.Equal(t, DefaultAuthServerPort, freshServers.Auth.Port)
	messaging, _ := snap.Messaging()
	assert.Equal(t, DefaultMessagingTopic, messaging.Topic)
}

func TestSnapshot_AbsentSections(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Publish(&Document{Storage: DefaultStorage()}))
	snap, err := ctx.Get()
	require.NoError(t, err)

	_, ok := snap.Storage()
	assert.True(t, ok)
	_, ok = snap.Cache()
	assert.False(t, ok)
	_, ok = snap.Messaging()
	assert.False(t, ok)
	_, ok = snap.Upstream()
	assert.False(t, ok)
	_, ok = snap.Servers()
	assert.False(t, ok)
	_, ok = snap.TLS()
	assert.False(t, ok)
}

func TestContext_ConcurrentPublish(t *testing.T) {
	ctx := NewContext()

	const publishers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ctx.Publish(Defaults()); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, ErrAlreadyPublished)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestContext_ConcurrentReaders(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Publish(Defaults()))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap, err := ctx.Get()
				if !assert.NoError(t, err) {
					return
				}
				storage, ok := snap.Storage()
				assert.True(t, ok)
				assert.Equal(t, DefaultStorageEndpoint, storage.Endpoint)
			}
		}()
	}
	wg.Wait()
}
