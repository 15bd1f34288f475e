package ids

import "github.com/google/uuid"

// Provider hands out client-visible identifiers for sections and activities.
// Injecting it keeps id generation deterministic in tests.
type Provider interface {
	NewID() string
}

type uuidProvider struct{}

// NewUUIDProvider returns the production Provider backed by random UUIDv4s.
func NewUUIDProvider() Provider {
	return uuidProvider{}
}

func (uuidProvider) NewID() string {
	return uuid.NewString()
}
