package store

import (
	"os"
	"time"
)

// Fingerprint holds stat-based identity for an input file.
type Fingerprint struct {
	Size    int64
	ModTime time.Time
}

// statFile returns the fingerprint of an on-disk file; the zero value when
// it cannot be read.
func statFile(path string) Fingerprint {
	info, err := os.Stat(path)
	if err != nil {
		return Fingerprint{}
	}
	return Fingerprint{
		Size:    info.Size(),
		ModTime: info.ModTime().UTC().Truncate(time.Microsecond),
	}
}

// Matches reports whether the file at path still has this fingerprint.
func (f Fingerprint) Matches(path string) bool {
	cur := statFile(path)
	return cur.Size == f.Size && cur.ModTime.Equal(f.ModTime)
}
