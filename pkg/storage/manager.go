package storage

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/shashiranjanraj/mangamart/config"
	"github.com/shashiranjanraj/mangamart/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. Call once at application startup,
// after config.Load.
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDefault()

	// Always boot the local disk.
	disks["local"] = meter("local", newLocalDisk())

	// Boot the S3 disk only when a bucket is configured.
	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = meter("s3", d)
		}
	}
}

// Use returns the named disk ("local" or "s3"). The local disk is
// booted on demand so callers that only need it (route listing, tests)
// work before Connect runs.
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if ok {
		return d
	}

	if name == "local" {
		managerMu.Lock()
		defer managerMu.Unlock()
		if d, ok := disks["local"]; ok {
			return d
		}
		ld := meter("local", newLocalDisk())
		disks["local"] = ld
		return ld
	}

	panic(fmt.Sprintf("storage: disk %q is not configured", name))
}

// Default returns the disk named by STORAGE_DISK.
func Default() Disk {
	managerMu.RLock()
	name := defaultDisk
	managerMu.RUnlock()
	if name == "" {
		name = config.StorageDefault()
	}
	return Use(name)
}

// RegisterDisk plugs in a custom Disk implementation at boot time.
// Tests use it to swap in fakes.
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

// ── Default disk helpers ─────────────────────────────────────────────────────

// Put writes content to path on the default disk.
func Put(path string, content []byte) error { return Default().Put(path, content) }

// PutStream writes from r to path on the default disk.
func PutStream(path string, r io.Reader) error { return Default().PutStream(path, r) }

// Get returns object content from the default disk.
func Get(path string) ([]byte, error) { return Default().Get(path) }

// GetStream returns a ReadCloser from the default disk.
func GetStream(path string) (io.ReadCloser, error) { return Default().GetStream(path) }

// Exists reports whether path exists on the default disk.
func Exists(path string) bool { return Default().Exists(path) }

// Delete removes path from the default disk.
func Delete(path string) error { return Default().Delete(path) }

// URL returns the public URL for path on the default disk.
func URL(path string) string { return Default().URL(path) }

// Size returns the object size in bytes on the default disk.
func Size(path string) (int64, error) { return Default().Size(path) }

// LastModified returns the last-modified time on the default disk.
func LastModified(path string) (time.Time, error) { return Default().LastModified(path) }

// Files lists objects in directory (non-recursive) on the default disk.
func Files(directory string) ([]string, error) { return Default().Files(directory) }

// AllFiles lists all objects under directory on the default disk.
func AllFiles(directory string) ([]string, error) { return Default().AllFiles(directory) }
