package tuner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nightlyone/lockfile"
)

const (
	ThetaFloatFile = "theta.flt"
	ThetaIntFile   = "theta.int"
	lockFile       = "tune.lock"
)

var ErrStoreBusy = errors.New("tuner: output directory is used by another run")

// Store persists θ after every iteration. It holds a lock file in Dir
// until Close.
type Store struct {
	Dir  string
	lock lockfile.Lockfile
}

func OpenStore(dir string) (*Store, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	lock, err := lockfile.New(filepath.Join(dir, lockFile))
	if err != nil {
		return nil, err
	}
	if err := lock.TryLock(); err != nil {
		if errors.Is(err, lockfile.ErrBusy) {
			return nil, fmt.Errorf("%v: %w", dir, ErrStoreBusy)
		}
		return nil, err
	}
	return &Store{Dir: dir, lock: lock}, nil
}

// Save writes the float vector, its rounded projection and a numbered snapshot.
func (s *Store) Save(k int, theta Vector[float32]) error {
	if err := writeAtomic(filepath.Join(s.Dir, ThetaFloatFile), theta); err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(s.Dir, ThetaIntFile), Round(theta)); err != nil {
		return err
	}
	return theta.WriteFile(s.SnapshotPath(k))
}

func (s *Store) SnapshotPath(k int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("theta-%v.flt", k))
}

func (s *Store) Close() error {
	return s.lock.Unlock()
}

func writeAtomic[T Number](path string, v Vector[T]) error {
	var tmp = path + ".tmp"
	if err := v.WriteFile(tmp); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
