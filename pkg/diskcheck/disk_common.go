package diskcheck

// SpaceChecker abstracts free-space detection for testability.
type SpaceChecker interface {
	// FreeDiskSpace returns free disk space in bytes at the given path.
	FreeDiskSpace(path string) (uint64, error)
}

// RealSpaceChecker implements SpaceChecker using actual system calls.
type RealSpaceChecker struct{}

// MockSpaceChecker is a test implementation of SpaceChecker.
type MockSpaceChecker struct {
	FreeFunc func(path string) (uint64, error)
}

func (m *MockSpaceChecker) FreeDiskSpace(path string) (uint64, error) {
	if m.FreeFunc != nil {
		return m.FreeFunc(path)
	}
	return 0, nil
}
