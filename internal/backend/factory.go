package backend

import (
	"fmt"
	"log/slog"

	"walletalert/internal/store/memory"
	"walletalert/internal/store/sqlite"
)

// Factory creates the process-wide store from configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateBackend builds the configured store. A sqlite backend that cannot be
// opened at startup is not a per-call error: the process silently falls back
// to the memory store and stays there for its lifetime. Per-call failures on
// a healthy sqlite backend still propagate to callers unchanged.
func (f *Factory) CreateBackend(config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	if config.Type == SQLiteBackend {
		st, err := sqlite.New(config.SQLiteDBPath)
		if err != nil {
			f.logger.Warn("SQLite backend unavailable, falling back to memory store for the process lifetime",
				"db_path", config.SQLiteDBPath,
				"error", err)
			return f.createMemoryBackend(), nil
		}

		f.logger.Info("Initialized sqlite backend", "db_path", config.SQLiteDBPath)
		return &Result{
			Store:   st,
			Type:    SQLiteBackend,
			Cleanup: st.Close,
		}, nil
	}

	return f.createMemoryBackend(), nil
}

func (f *Factory) createMemoryBackend() *Result {
	f.logger.Info("Initialized memory backend")
	return &Result{
		Store:   memory.New(),
		Type:    MemoryBackend,
		Cleanup: nil,
	}
}
