package workflows

import "context"

// ListResult contains the entries in the store.
type ListResult struct {
	StorePath string
	Names     []string
}

// List returns every entry name in the configured store.
//
// Returns ErrNotInitialized if init has not been run.
func List(ctx context.Context, deps Deps) (*ListResult, error) {
	_, s, err := loadStore(deps)
	if err != nil {
		return nil, err
	}

	names, err := s.List()
	if err != nil {
		return nil, err
	}
	deps.Logger.Debugf("Found %d entries in %s", len(names), s.Dir())

	return &ListResult{StorePath: s.Dir(), Names: names}, nil
}
