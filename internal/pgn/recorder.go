package pgn

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// DirRecorder saves every game as a separate file in Dir.
type DirRecorder struct {
	Dir   string
	count atomic.Int64
}

func NewDirRecorder(dir string) (*DirRecorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DirRecorder{Dir: dir}, nil
}

func (r *DirRecorder) Record(record Record) error {
	var now = time.Now()
	var n = r.count.Add(1)
	var path = filepath.Join(r.Dir, fmt.Sprintf("game_%v-%v.pgn", now.UnixMilli(), n))
	var file, err = os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := Write(file, &record, now); err != nil {
		return err
	}
	return file.Close()
}
