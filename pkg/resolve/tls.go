package resolve

import (
	"fmt"
	"os"

	"tickline-hq/keystone/pkg/config"
)

// TLSPaths holds certificate and key paths that existed when resolved.
type TLSPaths struct {
	CertPath string `json:"cert_path"`
	KeyPath  string `json:"key_path"`
}

// TLS returns the configured paths unchanged after checking that both
// exist on the filesystem now. The certificate is checked first.
func TLS(snap *config.Snapshot) (TLSPaths, error) {
	cfg, ok := snap.TLS()
	if !ok {
		return TLSPaths{}, &config.MissingSectionError{Section: config.SectionTLS}
	}

	if _, err := os.Stat(cfg.CertPath); err != nil {
		return TLSPaths{}, fmt.Errorf("%w: %q: %w", ErrCertificateNotFound, cfg.CertPath, err)
	}
	if _, err := os.Stat(cfg.KeyPath); err != nil {
		return TLSPaths{}, fmt.Errorf("%w: %q: %w", ErrKeyNotFound, cfg.KeyPath, err)
	}
	return TLSPaths{CertPath: cfg.CertPath, KeyPath: cfg.KeyPath}, nil
}
