package identity

import (
	"fmt"

	"go.uber.org/multierr"
)

// BatchValidate runs LocallyValidate over a set of identities, typically a
// peer list loaded from disk or received from the network, and returns an
// aggregate error naming every identity that failed. A nil return means
// every identity validated.
func BatchValidate(ids []*Identity) error {
	var errs error
	for i, id := range ids {
		if id == nil {
			errs = multierr.Append(errs, fmt.Errorf("identity %d: %w", i, ErrMalformedInput))
			continue
		}
		if !id.LocallyValidate() {
			errs = multierr.Append(errs, fmt.Errorf("identity %d (%s): %w", i, id.Address(), ErrInvalidIdentity))
		}
	}
	return errs
}
