package platform

import (
	"errors"
)

// Provider bundles the tree backends.
type Provider struct {
	Reader  Reader
	Speller Speller
}

// ErrUnsupported is returned when no tree provider has been registered.
var ErrUnsupported = errors.New("no accessibility tree provider registered; import internal/platform/file")

// NewProviderFunc is set by provider packages via init().
// See internal/platform/file/init.go for the tree file registration.
var NewProviderFunc func(opts ProviderOptions) (*Provider, error)

// ProviderOptions configures a provider. Dictionaries are extra word lists
// for the spell checker.
type ProviderOptions struct {
	Dictionaries []string
	NoSpelling   bool
}

// NewProvider returns the registered Provider.
func NewProvider(opts ProviderOptions) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(opts)
}
