package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// Bootstrap outcomes passed to Recorder.BootstrapCompleted.
const (
	OutcomeCreated = "created"
	OutcomeHealed  = "healed"
	OutcomeLoaded  = "loaded"
	OutcomeFailed  = "failed"
)

// Recorder receives bootstrap events, typically to update metrics.
type Recorder interface {
	BootstrapCompleted(outcome string)
	SectionHealed(section string)
	Published(generation string)
}

type nopRecorder struct{}

func (nopRecorder) BootstrapCompleted(string) {}
func (nopRecorder) SectionHealed(string)      {}
func (nopRecorder) Published(string)          {}

// Report describes what a bootstrap run did.
type Report struct {
	// Path is the resource that was bootstrapped.
	Path string

	// Created is true when the resource did not exist and was written from
	// defaults.
	Created bool

	// Healed lists the sections filled from defaults, in declared order.
	Healed []Section

	// Generation is the id of the published snapshot.
	Generation string
}

// Bootstrapper turns a resource path into a published Context. It runs once,
// before any resolver is used.
type Bootstrapper struct {
	ctx      *Context
	logger   *slog.Logger
	recorder Recorder
	required RequiredSet
	defaults func() *Document
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bootstrapper) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithRecorder sets the event recorder.
func WithRecorder(r Recorder) Option {
	return func(b *Bootstrapper) {
		if r != nil {
			b.recorder = r
		}
	}
}

// WithRequiredSet selects the schema version to validate against.
func WithRequiredSet(set RequiredSet) Option {
	return func(b *Bootstrapper) {
		b.required = set
	}
}

// WithDefaults replaces the defaults provider used for creation and healing.
func WithDefaults(fn func() *Document) Option {
	return func(b *Bootstrapper) {
		if fn != nil {
			b.defaults = fn
		}
	}
}

// NewBootstrapper returns a Bootstrapper that publishes into ctx.
func NewBootstrapper(ctx *Context, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		ctx:      ctx,
		logger:   slog.Default(),
		recorder: nopRecorder{},
		required: CurrentSchema,
		defaults: Defaults,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init runs the bootstrap sequence for path:
//
//  1. create the resource from full defaults if it does not exist
//  2. load it
//  3. validate it; if sections are missing, heal, persist and load again
//  4. publish the result
//
// Each step stops the sequence on failure. Nothing is published unless the
// final document passed validation. Init on a Context that is already
// published returns ErrAlreadyPublished without touching the resource.
func (b *Bootstrapper) Init(path string) (*Report, error) {
	report, err := b.run(path)
	if err != nil {
		b.recorder.BootstrapCompleted(OutcomeFailed)
		b.logger.Error("configuration bootstrap failed", "path", path, "error", err)
		return nil, fmt.Errorf("bootstrap %q: %w", path, err)
	}

	switch {
	case report.Created:
		b.recorder.BootstrapCompleted(OutcomeCreated)
	case len(report.Healed) > 0:
		b.recorder.BootstrapCompleted(OutcomeHealed)
	default:
		b.recorder.BootstrapCompleted(OutcomeLoaded)
	}
	b.recorder.Published(report.Generation)
	b.logger.Info("configuration published",
		"path", path,
		"generation", report.Generation,
		"created", report.Created,
		"healed", sectionNames(report.Healed),
	)
	return report, nil
}

func (b *Bootstrapper) run(path string) (*Report, error) {
	if b.ctx.Published() {
		return nil, ErrAlreadyPublished
	}

	report := &Report{Path: path}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrResourceUnreadable, err)
		}
		b.logger.Warn("configuration resource not found, creating from defaults", "path", path)
		if err := Persist(b.defaults(), path); err != nil {
			return nil, err
		}
		report.Created = true
	}

	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(doc, b.required); err != nil {
		b.logger.Warn("configuration incomplete, healing",
			"path", path,
			"missing", sectionNames(Missing(doc, b.required)),
		)

		healed, added := Merge(doc, b.defaults(), b.required)
		if err := Persist(healed, path); err != nil {
			return nil, err
		}
		for _, s := range added {
			b.recorder.SectionHealed(s.String())
			b.logger.Info("added default section", "section", s.String())
		}
		report.Healed = added

		// Callers must see what is on disk now, not the pre-heal document.
		doc, err = Load(path)
		if err != nil {
			return nil, err
		}
		if err := Validate(doc, b.required); err != nil {
			return nil, err
		}
	}

	if err := b.ctx.Publish(doc); err != nil {
		return nil, err
	}
	snap, err := b.ctx.Get()
	if err != nil {
		return nil, err
	}
	report.Generation = snap.Generation()
	return report, nil
}

func sectionNames(sections []Section) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.String()
	}
	return names
}
