package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/footprint-tools/roped/internal/paths"
)

const (
	lockFileName     = ".ropedrc.lock"
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when another console holds the config lock
// for longer than the lock timeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// fileLock is an exclusive lock held by creating a file. A lock file older
// than staleLockTimeout belongs to a process that died holding it.
type fileLock struct {
	path string
	file *os.File
}

// WithLock runs fn while holding the config lock. Consoles running side by
// side serialize their config edits through it.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	lock := &fileLock{path: filepath.Join(filepath.Dir(configPath), lockFileName)}
	if err := lock.acquire(time.Now().Add(lockTimeout)); err != nil {
		return err
	}
	defer lock.release()

	return fn()
}

func (l *fileLock) acquire(deadline time.Time) error {
	for {
		l.clearStale()

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			l.file = f
			return nil
		}

		if time.Now().After(deadline) {
			return ErrLockTimeout
		}
		time.Sleep(lockPollInterval)
	}
}

func (l *fileLock) clearStale() {
	info, err := os.Stat(l.path)
	if err == nil && time.Since(info.ModTime()) > staleLockTimeout {
		_ = os.Remove(l.path)
	}
}

func (l *fileLock) release() {
	if l.file != nil {
		_ = l.file.Close()
	}
	_ = os.Remove(l.path)
}
