package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customDocument() *Document {
	return &Document{
		Storage: &StorageConfig{
			Endpoint: "127.0.0.1:9000",
			Database: "test_db",
			Read:     Identity{User: "admin"},
			Write:    Identity{User: "admin", Password: "securepass"},
		},
		Cache: &CacheConfig{
			Host:      "cache.internal",
			Port:      6380,
			WriteUser: "w",
			APIDB:     intPtr(9),
		},
		Messaging: &MessagingConfig{Broker: "k1:9092,k2:9092", Topic: "ticks"},
		Upstream:  &UpstreamConfig{APIKey: "k", APISecret: "s", UserName: "u"},
		Servers: &ServersConfig{
			Auth: &ServerEndpoint{Host: "10.0.0.1", Port: 7001},
		},
		TLS: &TLSConfig{CertPath: "/pki/cert.pem", KeyPath: "/pki/key.pem"},
	}
}

func TestMerge_FillsOnlyMissingSection(t *testing.T) {
	defaults := Defaults()

	for _, missing := range AllSections {
		t.Run(missing.String(), func(t *testing.T) {
			input := customDocument()
			input.copySection(missing, &Document{})
			require.False(t, input.Has(missing))
			before := input.Clone()

			healed, added := Merge(input, defaults, CurrentSchema)

			assert.Equal(t, []Section{missing}, added)
			assert.Equal(t, before, input, "Merge must not modify its input")

			expected := customDocument()
			expected.copySection(missing, defaults)
			assert.Equal(t, expected, healed)

			// Present sections serialize exactly as before.
			for _, s := range AllSections {
				if s == missing {
					continue
				}
				want, err := Encode(sectionOnly(input, s), FormatTOML)
				require.NoError(t, err)
				got, err := Encode(sectionOnly(healed, s), FormatTOML)
				require.NoError(t, err)
				assert.Equal(t, string(want), string(got), "section %s changed", s)
			}
		})
	}
}

func sectionOnly(doc *Document, s Section) *Document {
	out := &Document{}
	out.copySection(s, doc)
	return out
}

func TestMerge_CompleteDocumentUnchanged(t *testing.T) {
	doc := customDocument()
	healed, added := Merge(doc, Defaults(), CurrentSchema)
	assert.Empty(t, added)
	assert.Equal(t, doc, healed)
	assert.NotSame(t, doc.Storage, healed.Storage)
}

func TestMerge_RespectsRequiredSet(t *testing.T) {
	healed, added := Merge(&Document{}, Defaults(), SchemaV1)
	assert.Equal(t, []Section{SectionStorage, SectionCache}, added)
	assert.True(t, healed.Has(SectionStorage))
	assert.True(t, healed.Has(SectionCache))
	assert.False(t, healed.Has(SectionTLS))
}

func TestMerge_NilInputs(t *testing.T) {
	healed, added := Merge(nil, Defaults(), CurrentSchema)
	assert.Equal(t, []Section(CurrentSchema), added)
	assert.Equal(t, Defaults(), healed)

	healed, added = Merge(customDocument(), nil, CurrentSchema)
	assert.Empty(t, added)
	assert.Equal(t, customDocument(), healed)
}

func TestMerge_DefaultsNotShared(t *testing.T) {
	defaults := Defaults()
	healed, _ := Merge(&Document{}, defaults, CurrentSchema)

	healed.Cache.Host = "changed"
	*healed.Cache.APIDB = 77
	assert.Equal(t, DefaultCacheHost, defaults.Cache.Host)
	assert.Equal(t, DefaultCacheAPIDB, *defaults.Cache.APIDB)
}

func TestPersist_WritesLoadableResource(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			doc := customDocument()

			require.NoError(t, Persist(doc, path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, doc, loaded)

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			require.Len(t, entries, 1, "temporary files left behind")
			assert.Equal(t, name, entries[0].Name())
		})
	}
}

func TestPersist_ReplacesExisting(t *testing.T) {
	path := writeFile(t, "config.toml", "garbage that is not toml [[[")

	require.NoError(t, Persist(Defaults(), path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), loaded)
}

func TestPersist_Failure(t *testing.T) {
	// A regular file where the parent directory should be.
	blocker := writeFile(t, "blocker", "x")
	err := Persist(Defaults(), filepath.Join(blocker, "config.toml"))
	assert.ErrorIs(t, err, ErrPersist)
}

func TestPersist_RenameFailureKeepsTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("rename over an existing path is retried on windows")
	}
	dir := t.TempDir()
	// An empty directory at the target makes the rename fail.
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := Persist(Defaults(), path)
	require.ErrorIs(t, err, ErrPersist)

	info, statErr := os.Stat(path)
	require.NoError(t, statErr, "target removed by failed persist")
	assert.True(t, info.IsDir())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files left behind")
}

func TestHeal_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := customDocument()
	partial.Messaging = nil
	partial.TLS = nil

	added, err := Heal(partial, path, CurrentSchema)
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionMessaging, SectionTLS}, added)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	healed, err := Load(path)
	require.NoError(t, err)
	added, err = Heal(healed, path, CurrentSchema)
	require.NoError(t, err)
	assert.Empty(t, added)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestCreateDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, CreateDefault(path))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), doc)
}
