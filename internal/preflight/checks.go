package preflight

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"spinscan/internal/config"
	"spinscan/internal/logging"
	"spinscan/internal/tracklist"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckTracklist opens and loads the configured tracklist store.
func CheckTracklist(ctx context.Context, cfg config.Tracklist) Result {
	const name = "Tracklist"

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	store, err := tracklist.OpenStore(checkCtx, cfg, logging.NewNop())
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s backend unavailable (%v)", cfg.Backend, err)}
	}
	defer store.Close()

	db, err := store.Load(checkCtx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s load failed (%v)", cfg.Backend, err)}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%s: %d artists, %d songs", cfg.Backend, db.Len(), db.SongCount()),
	}
}
