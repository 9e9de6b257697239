package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WritePIDFile records the current process id at path, creating parent
// directories as needed.
func WritePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create pid file directory: %w", err)
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o600)
}

// ReadPIDFile parses the pid recorded at path. Surrounding whitespace is
// tolerated; non-numeric or non-positive content is an error.
func ReadPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("pid file %s: %w", path, err)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("pid file %s: non-positive pid %d", path, pid)
	}
	return pid, nil
}

// RemovePIDFile deletes the pid file. A missing file is not an error.
func RemovePIDFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RunningPID returns the pid recorded at path if that process still exists,
// or 0 when the file is missing, unparseable, or stale.
func RunningPID(path string) int {
	pid, err := ReadPIDFile(path)
	if err != nil {
		return 0
	}
	if !processExists(pid) {
		return 0
	}
	return pid
}
