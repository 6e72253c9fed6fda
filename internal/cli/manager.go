package cli

import (
	"fmt"
	"os"

	"github.com/chazuruo/shellhist/internal/config"
	"github.com/chazuruo/shellhist/internal/history"
)

// loadConfig loads the config from an explicit path, or from the XDG default
// locations when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadWithDefaults()
}

// openManager builds a history manager from the config and loads the
// persisted file. A missing file yields an empty history; a corrupt file
// yields whatever could be recovered plus a warning on stderr. Neither is
// fatal.
func openManager(cfg *config.Config) *history.Manager {
	mgr := history.NewManager(cfg.History.Path, cfg.History.MaxSize, AppVersion())
	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (keeping %d recovered commands)\n", err, mgr.Store().Len())
	}
	return mgr
}
