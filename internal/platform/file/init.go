package file

import (
	"github.com/mj1618/axsearch/internal/platform"
	"github.com/mj1618/axsearch/internal/spelling"
)

func init() {
	platform.NewProviderFunc = NewProvider
}

// NewProvider builds a file-backed provider, loading the user dictionaries
// into a fresh spell checker unless spelling is disabled.
func NewProvider(opts platform.ProviderOptions) (*platform.Provider, error) {
	if opts.NoSpelling {
		return &platform.Provider{Reader: NewReader(nil)}, nil
	}
	checker, err := spelling.New()
	if err != nil {
		return nil, err
	}
	for _, path := range opts.Dictionaries {
		if err := checker.AddDictionaryFile(path); err != nil {
			return nil, err
		}
	}
	return &platform.Provider{
		Reader:  NewReader(checker),
		Speller: checker,
	}, nil
}
