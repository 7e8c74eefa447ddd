package ui

import (
	"context"
	"errors"

	"tableflip.dev/notes/pkg/store"
	"tableflip.dev/notes/pkg/tui"
)

// UI opens the full-screen notes browser.
type UI struct {
	Persistence store.Persistence
}

func (d *UI) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("failed to create persistence object")
	}
	return tui.Run(ctx, d.Persistence)
}
