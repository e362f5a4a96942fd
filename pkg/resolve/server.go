package resolve

import (
	"fmt"
	"net"
	"strconv"

	"tickline-hq/keystone/pkg/config"
)

// ServerName identifies one of the internal servers.
type ServerName int

const (
	ServerAuth ServerName = iota
	ServerIngestion
	ServerAnalysis
	ServerRealtimeStream
)

// ServerNames lists every server.
var ServerNames = []ServerName{ServerAuth, ServerIngestion, ServerAnalysis, ServerRealtimeStream}

// String returns the resource key of the server entry.
func (n ServerName) String() string {
	switch n {
	case ServerAuth:
		return "auth"
	case ServerIngestion:
		return "ingestion"
	case ServerAnalysis:
		return "analysis"
	case ServerRealtimeStream:
		return "realtime_stream"
	default:
		return fmt.Sprintf("ServerName(%d)", int(n))
	}
}

// MarshalText renders the name in JSON output.
func (n ServerName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// ParseServerName maps a resource key back to its server.
func ParseServerName(name string) (ServerName, error) {
	for _, n := range ServerNames {
		if n.String() == name {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown server %q", name)
}

// ServerEndpoint is a fully specified server address.
type ServerEndpoint struct {
	Name ServerName `json:"name"`
	Host string     `json:"host"`
	Port int        `json:"port"`
}

// Address returns "host:port".
func (e ServerEndpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Server looks up a named server. Both an absent servers section and an
// absent entry fail with *NamedSectionMissingError.
func Server(snap *config.Snapshot, name ServerName) (ServerEndpoint, error) {
	servers, ok := snap.Servers()
	if !ok {
		return ServerEndpoint{}, &NamedSectionMissingError{
			Name: name,
			Err:  &config.MissingSectionError{Section: config.SectionServers},
		}
	}

	var entry *config.ServerEndpoint
	switch name {
	case ServerAuth:
		entry = servers.Auth
	case ServerIngestion:
		entry = servers.Ingestion
	case ServerAnalysis:
		entry = servers.Analysis
	case ServerRealtimeStream:
		entry = servers.RealtimeStream
	default:
		return ServerEndpoint{}, fmt.Errorf("unknown server %v", name)
	}
	if entry == nil {
		return ServerEndpoint{}, &NamedSectionMissingError{Name: name}
	}

	section := "servers." + name.String()
	if entry.Host == "" {
		return ServerEndpoint{}, &EmptyFieldError{Section: section, Field: "host"}
	}
	if entry.Port <= 0 {
		return ServerEndpoint{}, &EmptyFieldError{Section: section, Field: "port"}
	}
	if entry.Port > MaxPort {
		return ServerEndpoint{}, &InvalidFieldError{Section: section, Field: "port", Value: entry.Port}
	}
	return ServerEndpoint{Name: name, Host: entry.Host, Port: entry.Port}, nil
}
