package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// Init builds the process-wide logger from config and installs it.
// Any previously installed logger is closed.
func Init(config *Config) (*Logger, error) {
	logger, err := NewLogger(config)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	previous := instance
	instance = logger
	mu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}
	return logger, nil
}

// GetLogger returns the process-wide logger.
// Before Init it returns a console logger at info level.
func GetLogger() *Logger {
	mu.RLock()
	logger := instance
	mu.RUnlock()
	if logger != nil {
		return logger
	}

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		// Console-only config cannot fail validation
		instance, _ = NewLogger(&Config{Level: LevelInfo})
	}
	return instance
}
