package resolve

import (
	"context"

	"tickline-hq/keystone/pkg/telemetry/health"
)

// RegisterChecks adds one readiness check per resolvable descriptor:
// every storage role, every cache (purpose, mode) pair, every named server,
// TLS, messaging and upstream. A check fails with the resolver's error. It
// returns the registered names in registration order.
func RegisterChecks(checker *health.Checker, r *Resolver) []string {
	var names []string
	add := func(name string, fn func() error) {
		checker.RegisterCheck(name, func(context.Context) error { return fn() })
		names = append(names, name)
	}

	for _, role := range Roles {
		add("storage."+role.String(), func() error {
			_, err := r.Storage(role)
			return err
		})
	}
	for _, purpose := range Purposes {
		for _, mode := range Roles {
			add("cache."+purpose.String()+"."+mode.String(), func() error {
				_, err := r.Cache(purpose, mode)
				return err
			})
		}
	}
	for _, name := range ServerNames {
		add("server."+name.String(), func() error {
			_, err := r.Server(name)
			return err
		})
	}
	add("tls", func() error {
		_, err := r.TLS()
		return err
	})
	add("messaging", func() error {
		_, err := r.Messaging()
		return err
	})
	add("upstream", func() error {
		_, err := r.Upstream()
		return err
	})
	return names
}
