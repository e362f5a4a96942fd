package config

// Default values written into new or healed resources.
const (
	// Storage defaults
	DefaultStorageEndpoint      = "127.0.0.1:9000"
	DefaultStorageDatabase      = "default_db"
	DefaultStorageProtocol      = "tcp"
	DefaultStorageReadUser      = "readonly_user"
	DefaultStorageWriteUser     = "default_user"
	DefaultStorageWritePassword = "default_password"

	// Cache defaults
	DefaultCacheHost          = "127.0.0.1"
	DefaultCachePort          = 6379
	DefaultCacheReadUser      = "readonly_user"
	DefaultCacheReadPassword  = "readonlypass"
	DefaultCacheWriteUser     = "write_user"
	DefaultCacheWritePassword = "writepass"
	DefaultCacheAPIDB         = 1
	DefaultCacheGreeksDB      = 2
	DefaultCacheFuturesDB     = 3
	DefaultCacheIndexDB       = 4

	// Messaging defaults
	DefaultMessagingBroker = "127.0.0.1:9092"
	DefaultMessagingTopic  = "tick_data"

	// Upstream defaults are placeholders an operator must replace.
	DefaultUpstreamAPIKey    = "API_KEY"
	DefaultUpstreamAPISecret = "API_SECRET"
	DefaultUpstreamUserName  = "USER_NAME"

	// Server defaults
	DefaultServerHost          = "127.0.0.1"
	DefaultAuthServerPort      = 8001
	DefaultIngestionServerPort = 8002
	DefaultAnalysisServerPort  = 8003
	DefaultRealtimeStreamPort  = 8004

	// TLS defaults
	DefaultTLSCertPath = "certs/server.crt"
	DefaultTLSKeyPath  = "certs/server.key"
)

// Defaults returns a document with the canonical default for every section.
// Each call returns fresh values the caller may keep.
func Defaults() *Document {
	return &Document{
		Storage:   DefaultStorage(),
		Cache:     DefaultCache(),
		Messaging: DefaultMessaging(),
		Upstream:  DefaultUpstream(),
		Servers:   DefaultServers(),
		TLS:       DefaultTLS(),
	}
}

// DefaultStorage returns the canonical storage section.
func DefaultStorage() *StorageConfig {
	return &StorageConfig{
		Endpoint: DefaultStorageEndpoint,
		Database: DefaultStorageDatabase,
		Protocol: DefaultStorageProtocol,
		Read:     Identity{User: DefaultStorageReadUser},
		Write: Identity{
			User:     DefaultStorageWriteUser,
			Password: DefaultStorageWritePassword,
		},
	}
}

// DefaultCache returns the canonical cache section with all four slots set.
func DefaultCache() *CacheConfig {
	return &CacheConfig{
		Host:          DefaultCacheHost,
		Port:          DefaultCachePort,
		ReadUser:      DefaultCacheReadUser,
		ReadPassword:  DefaultCacheReadPassword,
		WriteUser:     DefaultCacheWriteUser,
		WritePassword: DefaultCacheWritePassword,
		APIDB:         intPtr(DefaultCacheAPIDB),
		GreeksDB:      intPtr(DefaultCacheGreeksDB),
		FuturesDB:     intPtr(DefaultCacheFuturesDB),
		IndexDB:       intPtr(DefaultCacheIndexDB),
	}
}

// DefaultMessaging returns the canonical messaging section.
func DefaultMessaging() *MessagingConfig {
	return &MessagingConfig{
		Broker: DefaultMessagingBroker,
		Topic:  DefaultMessagingTopic,
	}
}

// DefaultUpstream returns placeholder upstream credentials.
func DefaultUpstream() *UpstreamConfig {
	return &UpstreamConfig{
		APIKey:    DefaultUpstreamAPIKey,
		APISecret: DefaultUpstreamAPISecret,
		UserName:  DefaultUpstreamUserName,
	}
}

// DefaultServers returns all four named servers on the loopback interface.
func DefaultServers() *ServersConfig {
	return &ServersConfig{
		Auth:           &ServerEndpoint{Host: DefaultServerHost, Port: DefaultAuthServerPort},
		Ingestion:      &ServerEndpoint{Host: DefaultServerHost, Port: DefaultIngestionServerPort},
		Analysis:       &ServerEndpoint{Host: DefaultServerHost, Port: DefaultAnalysisServerPort},
		RealtimeStream: &ServerEndpoint{Host: DefaultServerHost, Port: DefaultRealtimeStreamPort},
	}
}

// DefaultTLS returns conventional certificate paths relative to the working
// directory. The files are not created.
func DefaultTLS() *TLSConfig {
	return &TLSConfig{
		CertPath: DefaultTLSCertPath,
		KeyPath:  DefaultTLSKeyPath,
	}
}

func intPtr(v int) *int {
	return &v
}
