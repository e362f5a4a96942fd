package config

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Complete(t *testing.T) {
	assert.NoError(t, Validate(Defaults(), SchemaV2))
	assert.NoError(t, Validate(Defaults(), SchemaV1))
}

func TestValidate_FirstMissingInDeclaredOrder(t *testing.T) {
	doc := Defaults()
	doc.Storage = nil
	doc.TLS = nil

	err := Validate(doc, CurrentSchema)
	require.Error(t, err)

	var missing *MissingSectionError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, SectionStorage, missing.Section)
	assert.ErrorIs(t, err, ErrMissingSection)
	assert.Equal(t, "missing [storage] section", err.Error())
}

func TestValidate_OrderFollowsSet(t *testing.T) {
	doc := Defaults()
	doc.Storage = nil
	doc.TLS = nil

	reversed := RequiredSet{SectionTLS, SectionStorage}
	var missing *MissingSectionError
	require.ErrorAs(t, Validate(doc, reversed), &missing)
	assert.Equal(t, SectionTLS, missing.Section)
}

func TestValidate_SchemaVersions(t *testing.T) {
	doc := &Document{Storage: DefaultStorage(), Cache: DefaultCache()}

	assert.NoError(t, Validate(doc, SchemaV1))

	var missing *MissingSectionError
	require.ErrorAs(t, Validate(doc, SchemaV2), &missing)
	assert.Equal(t, SectionMessaging, missing.Section)
}

func TestValidate_PresentButEmptyPasses(t *testing.T) {
	doc := &Document{
		Storage:   &StorageConfig{},
		Cache:     &CacheConfig{},
		Messaging: &MessagingConfig{},
		Upstream:  &UpstreamConfig{},
		Servers:   &ServersConfig{},
		TLS:       &TLSConfig{},
	}
	assert.NoError(t, Validate(doc, CurrentSchema))
}

func TestValidate_NilDocument(t *testing.T) {
	var missing *MissingSectionError
	require.ErrorAs(t, Validate(nil, CurrentSchema), &missing)
	assert.Equal(t, SectionStorage, missing.Section)
}

func TestMissing(t *testing.T) {
	doc := Defaults()
	doc.Cache = nil
	doc.Servers = nil

	assert.Equal(t, []Section{SectionCache, SectionServers}, Missing(doc, CurrentSchema))
	assert.Empty(t, Missing(Defaults(), CurrentSchema))
	assert.Equal(t, []Section(CurrentSchema), Missing(&Document{}, CurrentSchema))
}

func TestValidateAll(t *testing.T) {
	assert.NoError(t, ValidateAll(Defaults(), CurrentSchema))

	doc := &Document{Cache: DefaultCache(), TLS: DefaultTLS()}
	err := ValidateAll(doc, CurrentSchema)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSection)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 4)

	var got []Section
	for _, e := range merr.Errors {
		var ms *MissingSectionError
		require.ErrorAs(t, e, &ms)
		got = append(got, ms.Section)
	}
	assert.Equal(t, []Section{SectionStorage, SectionMessaging, SectionUpstream, SectionServers}, got)
}

func TestRequiredSet_Contains(t *testing.T) {
	assert.True(t, SchemaV1.Contains(SectionCache))
	assert.False(t, SchemaV1.Contains(SectionTLS))
	assert.True(t, SchemaV2.Contains(SectionTLS))
}
