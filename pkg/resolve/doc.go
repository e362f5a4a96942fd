// Package resolve derives connection descriptors from a published
// configuration.
//
// Each resolver is a pure function of a *config.Snapshot and a selector:
//
//	conn, err := resolve.Storage(snap, resolve.RoleWrite)
//	cache, err := resolve.Cache(snap, resolve.PurposeGreeks, resolve.RoleRead)
//	addr, err := resolve.Server(snap, resolve.ServerIngestion)
//
// Resolvers never modify or heal the configuration. Problems a structurally
// complete document can still have, such as a write identity without a
// password or a cache purpose without a routing slot, are reported here at
// the point of use.
//
// Resolver wraps the same functions around a *config.Context, logs each
// resolution and reports its outcome to a Recorder. Descriptors can be
// turned into client options (ClickHouse, Redis, Kafka) without dialing.
package resolve
