package freesurfer

import (
	"io/fs"
	"os"
	"time"
)

// Stater abstracts file system stat operations for testability.
type Stater interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealStater implements Stater using the actual file system.
type RealStater struct{}

// Stat returns file info for the given path.
func (r *RealStater) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// EnvGetter abstracts environment lookups for testing.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter uses the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// mockStater is a test double for Stater.
type mockStater struct {
	StatFunc func(name string) (fs.FileInfo, error)
}

// Stat calls the mock function.
func (m *mockStater) Stat(name string) (fs.FileInfo, error) {
	return m.StatFunc(name)
}

// mockFileInfo is a test double for fs.FileInfo.
type mockFileInfo struct {
	NameValue  string
	SizeValue  int64
	ModeValue  fs.FileMode
	IsDirValue bool
}

func (m *mockFileInfo) Name() string       { return m.NameValue }
func (m *mockFileInfo) Size() int64        { return m.SizeValue }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.ModeValue }
func (m *mockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m *mockFileInfo) Sys() interface{}   { return nil }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
