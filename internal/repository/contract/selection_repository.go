package contract

import "context"

// SelectionRepository is the persistent key-value store behind the wizard.
// An absent key reads back as the empty string; callers are expected to
// tolerate malformed stored values.
type SelectionRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
