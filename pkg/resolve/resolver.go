package resolve

import (
	"errors"
	"log/slog"

	"tickline-hq/keystone/pkg/config"
)

// Resolution outcomes passed to Recorder.ResolveCompleted.
const (
	OutcomeOK                  = "ok"
	OutcomeNotPublished        = "not_published"
	OutcomeMissingSection      = "missing_section"
	OutcomeMissingServer       = "missing_server"
	OutcomeMissingSecret       = "missing_secret"
	OutcomeMissingRoutingSlot  = "missing_routing_slot"
	OutcomeCertificateNotFound = "certificate_not_found"
	OutcomeKeyNotFound         = "key_not_found"
	OutcomeEmptyField          = "empty_field"
	OutcomeInvalidField        = "invalid_field"
	OutcomeError               = "error"
)

// Outcome classifies a resolver error into a metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, config.ErrNotPublished):
		return OutcomeNotPublished
	// Checked before ErrMissingSection: an absent servers section matches both.
	case errors.Is(err, ErrNamedSectionMissing):
		return OutcomeMissingServer
	case errors.Is(err, config.ErrMissingSection):
		return OutcomeMissingSection
	case errors.Is(err, ErrMissingSecret):
		return OutcomeMissingSecret
	case errors.Is(err, ErrMissingRoutingSlot):
		return OutcomeMissingRoutingSlot
	case errors.Is(err, ErrCertificateNotFound):
		return OutcomeCertificateNotFound
	case errors.Is(err, ErrKeyNotFound):
		return OutcomeKeyNotFound
	case errors.Is(err, ErrEmptyField):
		return OutcomeEmptyField
	case errors.Is(err, ErrInvalidField):
		return OutcomeInvalidField
	default:
		return OutcomeError
	}
}

// Recorder receives resolution outcomes, typically to update metrics.
type Recorder interface {
	ResolveCompleted(resolver, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ResolveCompleted(string, string) {}

// Resolver binds the resolve functions to a Context. It never heals or
// republishes; every call reads the published snapshot.
type Resolver struct {
	ctx      *config.Context
	logger   *slog.Logger
	recorder Recorder
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRecorder sets the outcome recorder.
func WithRecorder(rec Recorder) Option {
	return func(r *Resolver) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// New returns a Resolver reading from ctx.
func New(ctx *config.Context, opts ...Option) *Resolver {
	r := &Resolver{
		ctx:      ctx,
		logger:   slog.Default(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Storage resolves the analytics store connection for role.
func (r *Resolver) Storage(role Role) (StorageConnection, error) {
	return observe(r, "storage", []any{"role", role.String()}, func(s *config.Snapshot) (StorageConnection, error) {
		return Storage(s, role)
	})
}

// Cache resolves the cache connection for purpose and mode.
func (r *Resolver) Cache(purpose Purpose, mode AccessMode) (CacheConnection, error) {
	attrs := []any{"purpose", purpose.String(), "mode", mode.String()}
	return observe(r, "cache", attrs, func(s *config.Snapshot) (CacheConnection, error) {
		return Cache(s, purpose, mode)
	})
}

// Server looks up a named internal server.
func (r *Resolver) Server(name ServerName) (ServerEndpoint, error) {
	return observe(r, "server", []any{"server", name.String()}, func(s *config.Snapshot) (ServerEndpoint, error) {
		return Server(s, name)
	})
}

// TLS resolves certificate and key paths.
func (r *Resolver) TLS() (TLSPaths, error) {
	return observe(r, "tls", nil, TLS)
}

// Messaging resolves the broker connection.
func (r *Resolver) Messaging() (MessagingConnection, error) {
	return observe(r, "messaging", nil, Messaging)
}

// Upstream resolves the upstream broker API credentials.
func (r *Resolver) Upstream() (UpstreamCredentials, error) {
	return observe(r, "upstream", nil, Upstream)
}

func observe[T any](r *Resolver, name string, attrs []any, fn func(*config.Snapshot) (T, error)) (T, error) {
	var (
		out T
		err error
	)
	snap, err := r.ctx.Get()
	if err == nil {
		out, err = fn(snap)
	}

	outcome := Outcome(err)
	r.recorder.ResolveCompleted(name, outcome)

	args := append([]any{"resolver", name, "outcome", outcome}, attrs...)
	if err != nil {
		r.logger.Warn("resolution failed", append(args, "error", err)...)
		var zero T
		return zero, err
	}
	r.logger.Debug("resolved", append(args, "generation", snap.Generation())...)
	return out, nil
}
