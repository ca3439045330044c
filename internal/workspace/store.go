package workspace

import "context"

// Store persists a finished workspace. Persistence lives outside this
// service; the pipeline only hands over the item list it produced.
type Store interface {
	SaveWorkspace(ctx context.Context, prompt string, profile Profile, items []Item) error
}

// NopStore discards workspaces. Used when no store is configured.
type NopStore struct{}

func (NopStore) SaveWorkspace(context.Context, string, Profile, []Item) error { return nil }
