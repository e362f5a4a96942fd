// Package config loads, validates, heals and publishes the platform
// configuration resource.
//
// The resource is a TOML file (YAML is accepted for .yaml and .yml paths)
// with one table per section: storage, cache, messaging, upstream, servers
// and tls. A Document keeps one pointer per section; nil means the section
// is absent.
//
// # Bootstrap
//
// A process runs the bootstrap once, before anything resolves a connection:
//
//	ctx := config.NewContext()
//	report, err := config.NewBootstrapper(ctx,
//	    config.WithLogger(logger),
//	).Init("config.toml")
//
// Init creates the resource from defaults when it does not exist, fills any
// missing required sections from defaults (writing the result back
// atomically), loads it again and publishes it into ctx. Sections the
// operator already wrote are never replaced.
//
// # Required sections
//
// The set of sections a complete document must carry is versioned data
// (SchemaV1, SchemaV2). Validate reports the first absent section in
// declared order; ValidateAll reports all of them.
//
// # Publishing
//
// A Context accepts exactly one Publish. After that, Get returns an
// immutable Snapshot whose accessors hand out copies, and readers need no
// locking. Tests create a fresh Context instead of resetting a global.
//
// # Drift
//
// Watcher observes the resource after publish and reports edits, including
// whether the edited file would still validate. The published document is
// not reloaded.
package config
