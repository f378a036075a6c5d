package root

import (
	"context"

	"rihla/internal/engine"
	"rihla/internal/storage"
)

func openStore(ctx context.Context) (*engine.Store, *storage.StateRepo, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	repo := storage.NewStateRepo(db)
	store, err := engine.NewStore(ctx, repo, nil)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	// Launching a command is our "app came to the foreground" moment.
	store.CheckAndUpdateStreak()

	cleanup := func() {
		_ = db.Close()
	}
	return store, repo, cleanup, nil
}
