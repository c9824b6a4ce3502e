package store

import "time"

// Option customizes store construction.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides the identifier generator, for tests. The
// generator receives the entity-type prefix and must return a full id.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}
