package resolve

import (
	"tickline-hq/keystone/pkg/config"
)

// UpstreamCredentials authenticate against the upstream broker API.
type UpstreamCredentials struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret,omitempty"`
	UserName  string `json:"user_name"`
}

// Upstream resolves the upstream broker API credentials. All three fields
// are required.
func Upstream(snap *config.Snapshot) (UpstreamCredentials, error) {
	cfg, ok := snap.Upstream()
	if !ok {
		return UpstreamCredentials{}, &config.MissingSectionError{Section: config.SectionUpstream}
	}

	switch {
	case cfg.APIKey == "":
		return UpstreamCredentials{}, &EmptyFieldError{Section: "upstream", Field: "api_key"}
	case cfg.APISecret == "":
		return UpstreamCredentials{}, &EmptyFieldError{Section: "upstream", Field: "api_secret"}
	case cfg.UserName == "":
		return UpstreamCredentials{}, &EmptyFieldError{Section: "upstream", Field: "user_name"}
	}

	return UpstreamCredentials{
		APIKey:    cfg.APIKey,
		APISecret: cfg.APISecret,
		UserName:  cfg.UserName,
	}, nil
}
