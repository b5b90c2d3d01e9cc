// Package postalsvc wraps foundation/postal with logging and metrics for
// services that want one observable entry point instead of re-wiring both
// on every call site.
package postalsvc

import (
	"context"
	"errors"
	"time"

	"github.com/vortex-fintech/postal-lib/foundation/postal"
	"github.com/vortex-fintech/postal-lib/logger"
)

type Service struct {
	log logger.LoggerInterface
	m   Metrics
}

type Option func(*Service)

func WithLogger(l logger.LoggerInterface) Option {
	return func(s *Service) { s.log = l }
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) { s.m = m }
}

// New builds a Service. Without options it is a plain pass-through to
// foundation/postal.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ctxLogger is implemented by loggers that can pull trace/request IDs out of
// the context; plain Debugw is the fallback.
type ctxLogger interface {
	DebugwCtx(ctx context.Context, msg string, kv ...any)
}

// Format formats input for the given country and records the outcome.
// Semantics are exactly those of postal.Format.
func (s *Service) Format(ctx context.Context, countryCode, input string) (string, error) {
	start := time.Now()

	out, err := postal.Format(countryCode, input)
	s.observe(ctx, countryCode, classify(countryCode, input, err), start)
	return out, err
}

// Validate is the boolean-style sibling of Format.
func (s *Service) Validate(ctx context.Context, countryCode, input string) (string, bool) {
	out, err := s.Format(ctx, countryCode, input)
	if err != nil {
		return "", false
	}
	return out, true
}

func classify(countryCode, input string, err error) string {
	switch {
	case errors.Is(err, postal.ErrMissingArgument):
		return ResultMissingArgument
	case errors.Is(err, postal.ErrInvalidPostcode):
		return postal.OutcomeInvalid.String()
	case err != nil:
		return "error"
	}
	_, outcome := postal.Resolve(countryCode, input)
	return outcome.String()
}

func (s *Service) observe(ctx context.Context, countryCode, result string, start time.Time) {
	if s.m != nil {
		s.m.IncResult(countryCode, result)
		s.m.ObserveDuration(time.Since(start))
	}

	if s.log == nil {
		return
	}
	if cl, ok := s.log.(ctxLogger); ok {
		cl.DebugwCtx(ctx, "postcode resolved", "country_code", countryCode, "result", result)
		return
	}
	s.log.Debugw("postcode resolved", "country_code", countryCode, "result", result)
}
