package config

// Section identifies one top-level table of the configuration resource.
type Section int

const (
	// SectionStorage is the analytics store (ClickHouse) section.
	SectionStorage Section = iota
	// SectionCache is the cache (Redis) section.
	SectionCache
	// SectionMessaging is the message broker (Kafka) section.
	SectionMessaging
	// SectionUpstream is the upstream broker API section.
	SectionUpstream
	// SectionServers is the internal server endpoints section.
	SectionServers
	// SectionTLS is the certificate/key section.
	SectionTLS
)

// AllSections lists every section kind in resource order.
var AllSections = []Section{
	SectionStorage,
	SectionCache,
	SectionMessaging,
	SectionUpstream,
	SectionServers,
	SectionTLS,
}

// String returns the resource key for the section.
func (s Section) String() string {
	switch s {
	case SectionStorage:
		return "storage"
	case SectionCache:
		return "cache"
	case SectionMessaging:
		return "messaging"
	case SectionUpstream:
		return "upstream"
	case SectionServers:
		return "servers"
	case SectionTLS:
		return "tls"
	default:
		return "unknown"
	}
}

// Document is the in-memory aggregate of every configuration section.
// A nil section pointer means the section is absent from the resource.
//
// Field order is the serialization order, so machine-written resources keep
// a stable layout.
type Document struct {
	// Storage holds the analytics store endpoint and its read/write identities.
	Storage *StorageConfig `toml:"storage,omitempty" yaml:"storage,omitempty"`

	// Cache holds the cache endpoint, credential pairs and routing slots.
	Cache *CacheConfig `toml:"cache,omitempty" yaml:"cache,omitempty"`

	// Messaging holds the broker address and topic.
	Messaging *MessagingConfig `toml:"messaging,omitempty" yaml:"messaging,omitempty"`

	// Upstream holds the upstream broker API credentials.
	Upstream *UpstreamConfig `toml:"upstream,omitempty" yaml:"upstream,omitempty"`

	// Servers holds the named internal server endpoints.
	Servers *ServersConfig `toml:"servers,omitempty" yaml:"servers,omitempty"`

	// TLS holds certificate and private key paths.
	TLS *TLSConfig `toml:"tls,omitempty" yaml:"tls,omitempty"`
}

// StorageConfig describes the analytics store.
type StorageConfig struct {
	// Endpoint is "host" or "host:port" (e.g., "127.0.0.1:9000").
	Endpoint string `toml:"endpoint" yaml:"endpoint"`

	// Database is the target database name.
	Database string `toml:"database" yaml:"database"`

	// Protocol is the connection scheme: "tcp" (native) or "http".
	// Empty means "tcp".
	Protocol string `toml:"protocol,omitempty" yaml:"protocol,omitempty"`

	// Read is the read-only identity. Its password is optional.
	Read Identity `toml:"read" yaml:"read"`

	// Write is the read-write identity. Its password is required when used.
	Write Identity `toml:"write" yaml:"write"`
}

// Identity is a user name with an optional password.
type Identity struct {
	User     string `toml:"user" yaml:"user"`
	Password string `toml:"password,omitempty" yaml:"password,omitempty"`
}

// CacheConfig is the raw cache section. The derived per-purpose connection
// lives in the resolve package.
type CacheConfig struct {
	Host          string `toml:"host" yaml:"host"`
	Port          int    `toml:"port" yaml:"port"`
	ReadUser      string `toml:"read_user" yaml:"read_user"`
	ReadPassword  string `toml:"read_password" yaml:"read_password"`
	WriteUser     string `toml:"write_user" yaml:"write_user"`
	WritePassword string `toml:"write_password" yaml:"write_password"`

	// Routing slots, one per purpose. Nil means the purpose is not configured.
	APIDB     *int `toml:"api_db,omitempty" yaml:"api_db,omitempty"`
	GreeksDB  *int `toml:"greeks_db,omitempty" yaml:"greeks_db,omitempty"`
	FuturesDB *int `toml:"futures_db,omitempty" yaml:"futures_db,omitempty"`
	IndexDB   *int `toml:"index_db,omitempty" yaml:"index_db,omitempty"`
}

// MessagingConfig describes the message broker.
type MessagingConfig struct {
	// Broker is one address or a comma-separated list of addresses.
	Broker string `toml:"broker" yaml:"broker"`

	// Topic receives tick data.
	Topic string `toml:"topic" yaml:"topic"`

	// GroupID is the consumer group used by readers. Optional.
	GroupID string `toml:"group_id,omitempty" yaml:"group_id,omitempty"`
}

// UpstreamConfig holds the upstream broker API credentials.
type UpstreamConfig struct {
	APIKey    string `toml:"api_key" yaml:"api_key"`
	APISecret string `toml:"api_secret" yaml:"api_secret"`
	UserName  string `toml:"user_name" yaml:"user_name"`
}

// ServersConfig holds the fixed set of internal servers. A nil entry is a
// server that was never configured.
type ServersConfig struct {
	Auth           *ServerEndpoint `toml:"auth,omitempty" yaml:"auth,omitempty"`
	Ingestion      *ServerEndpoint `toml:"ingestion,omitempty" yaml:"ingestion,omitempty"`
	Analysis       *ServerEndpoint `toml:"analysis,omitempty" yaml:"analysis,omitempty"`
	RealtimeStream *ServerEndpoint `toml:"realtime_stream,omitempty" yaml:"realtime_stream,omitempty"`
}

// ServerEndpoint is a host/port pair.
type ServerEndpoint struct {
	Host string `toml:"host" yaml:"host"`
	Port int    `toml:"port" yaml:"port"`
}

// TLSConfig holds certificate and key paths. Any string is accepted here;
// existence is checked when the paths are resolved.
type TLSConfig struct {
	CertPath string `toml:"cert_path" yaml:"cert_path"`
	KeyPath  string `toml:"key_path" yaml:"key_path"`
}

// Has reports whether the section is present in the document.
func (d *Document) Has(s Section) bool {
	if d == nil {
		return false
	}
	switch s {
	case SectionStorage:
		return d.Storage != nil
	case SectionCache:
		return d.Cache != nil
	case SectionMessaging:
		return d.Messaging != nil
	case SectionUpstream:
		return d.Upstream != nil
	case SectionServers:
		return d.Servers != nil
	case SectionTLS:
		return d.TLS != nil
	default:
		return false
	}
}

// copySection copies section s from src into d, replacing whatever d held.
// The copy is deep, so d and src share no memory afterwards.
func (d *Document) copySection(s Section, src *Document) {
	switch s {
	case SectionStorage:
		d.Storage = clonePtr(src.Storage)
	case SectionCache:
		d.Cache = cloneCache(src.Cache)
	case SectionMessaging:
		d.Messaging = clonePtr(src.Messaging)
	case SectionUpstream:
		d.Upstream = clonePtr(src.Upstream)
	case SectionServers:
		d.Servers = cloneServers(src.Servers)
	case SectionTLS:
		d.TLS = clonePtr(src.TLS)
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{}
	for _, s := range AllSections {
		out.copySection(s, d)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneCache(c *CacheConfig) *CacheConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.APIDB = clonePtr(c.APIDB)
	out.GreeksDB = clonePtr(c.GreeksDB)
	out.FuturesDB = clonePtr(c.FuturesDB)
	out.IndexDB = clonePtr(c.IndexDB)
	return &out
}

func cloneServers(s *ServersConfig) *ServersConfig {
	if s == nil {
		return nil
	}
	return &ServersConfig{
		Auth:           clonePtr(s.Auth),
		Ingestion:      clonePtr(s.Ingestion),
		Analysis:       clonePtr(s.Analysis),
		RealtimeStream: clonePtr(s.RealtimeStream),
	}
}
