package resolve

import (
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"

	"tickline-hq/keystone/pkg/config"
)

// Role selects which identity is used against a backing store.
type Role int

const (
	// RoleRead is the read-only identity.
	RoleRead Role = iota
	// RoleWrite is the read-write identity.
	RoleWrite
)

// AccessMode is the role used for cache connections.
type AccessMode = Role

// Roles lists every role.
var Roles = []Role{RoleRead, RoleWrite}

func (r Role) String() string {
	switch r {
	case RoleRead:
		return "read"
	case RoleWrite:
		return "write"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// MarshalText renders the name in JSON output.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseRole maps "read" or "write" back to its role.
func ParseRole(name string) (Role, error) {
	for _, r := range Roles {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}

// Storage protocols.
const (
	ProtocolTCP  = "tcp"
	ProtocolHTTP = "http"
)

// StorageConnection is the analytics store descriptor for one role.
// Credentials are carried separately from the endpoint.
type StorageConnection struct {
	Role     Role   `json:"role"`
	Endpoint string `json:"endpoint"`
	Protocol string `json:"protocol"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
}

// Storage resolves the analytics store connection for role.
//
// The write role requires a non-empty password and fails with
// ErrMissingSecret otherwise. The read role never requires one and carries
// a password only when the resource configures it.
func Storage(snap *config.Snapshot, role Role) (StorageConnection, error) {
	cfg, ok := snap.Storage()
	if !ok {
		return StorageConnection{}, &config.MissingSectionError{Section: config.SectionStorage}
	}

	if cfg.Endpoint == "" {
		return StorageConnection{}, &EmptyFieldError{Section: "storage", Field: "endpoint"}
	}
	if cfg.Database == "" {
		return StorageConnection{}, &EmptyFieldError{Section: "storage", Field: "database"}
	}

	protocol := strings.ToLower(cfg.Protocol)
	if protocol == "" {
		protocol = ProtocolTCP
	}
	if protocol != ProtocolTCP && protocol != ProtocolHTTP {
		return StorageConnection{}, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, cfg.Protocol)
	}

	conn := StorageConnection{
		Role:     role,
		Endpoint: cfg.Endpoint,
		Protocol: protocol,
		Database: cfg.Database,
	}

	switch role {
	case RoleRead:
		if cfg.Read.User == "" {
			return StorageConnection{}, &EmptyFieldError{Section: "storage.read", Field: "user"}
		}
		conn.User = cfg.Read.User
		conn.Password = cfg.Read.Password
	case RoleWrite:
		if cfg.Write.User == "" {
			return StorageConnection{}, &EmptyFieldError{Section: "storage.write", Field: "user"}
		}
		if cfg.Write.Password == "" {
			return StorageConnection{}, fmt.Errorf("%w: storage write user %q has no password", ErrMissingSecret, cfg.Write.User)
		}
		conn.User = cfg.Write.User
		conn.Password = cfg.Write.Password
	default:
		return StorageConnection{}, fmt.Errorf("unknown role %v", role)
	}
	return conn, nil
}

// ConnectionString returns "scheme://host[:port]". Credentials are never
// embedded.
func (c StorageConnection) ConnectionString() string {
	return c.Protocol + "://" + c.Endpoint
}

// ClickHouseOptions combines the descriptor into client options. Nothing is
// dialed.
func (c StorageConnection) ClickHouseOptions() *clickhouse.Options {
	protocol := clickhouse.Native
	if c.Protocol == ProtocolHTTP {
		protocol = clickhouse.HTTP
	}
	return &clickhouse.Options{
		Protocol: protocol,
		Addr:     []string{c.Endpoint},
		Auth: clickhouse.Auth{
			Database: c.Database,
			Username: c.User,
			Password: c.Password,
		},
	}
}
