package tls

import (
	"crypto/tls"
	"fmt"
	"os"
	"strings"
)

// Options tunes the server configuration built by ServerConfig.
type Options struct {
	// MinVersion is "1.2" or "1.3". Default: "1.3".
	MinVersion string

	// CipherSuites restricts TLS 1.2 suites. Empty means Go's defaults.
	CipherSuites []string
}

// ServerConfig loads the key pair at certFile/keyFile and returns a server
// configuration for it. The certificate must be currently valid.
func ServerConfig(certFile, keyFile string, opts Options) (*tls.Config, error) {
	cert, err := LoadKeyPair(certFile, keyFile)
	if err != nil {
		return nil, err
	}

	version, err := parseTLSVersion(opts.MinVersion)
	if err != nil {
		return nil, err
	}
	suites, err := parseCipherSuites(opts.CipherSuites)
	if err != nil {
		return nil, err
	}

	// #nosec G402 - MinVersion is 1.2 or 1.3
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   version,
		CipherSuites: suites,
	}, nil
}

// LoadKeyPair reads and validates a PEM certificate and private key.
func LoadKeyPair(certFile, keyFile string) (tls.Certificate, error) {
	if _, err := os.Stat(certFile); err != nil {
		return tls.Certificate{}, fmt.Errorf("certificate file not found: %s: %w", certFile, err)
	}
	if _, err := os.Stat(keyFile); err != nil {
		return tls.Certificate{}, fmt.Errorf("key file not found: %s: %w", keyFile, err)
	}

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to load certificate: %w", err)
	}
	if err := ValidateCertificate(&cert); err != nil {
		return tls.Certificate{}, fmt.Errorf("certificate validation failed: %w", err)
	}
	return cert, nil
}

func parseTLSVersion(v string) (uint16, error) {
	switch v {
	case "1.3", "":
		return tls.VersionTLS13, nil
	case "1.2":
		return tls.VersionTLS12, nil
	default:
		return 0, fmt.Errorf("unsupported minimum TLS version %q", v)
	}
}

func parseCipherSuites(names []string) ([]uint16, error) {
	if len(names) == 0 {
		return nil, nil
	}

	known := make(map[string]uint16)
	for _, s := range tls.CipherSuites() {
		known[s.Name] = s.ID
	}

	suites := make([]uint16, 0, len(names))
	for _, name := range names {
		id, ok := known[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("unknown or insecure cipher suite %q", name)
		}
		suites = append(suites, id)
	}
	return suites, nil
}
