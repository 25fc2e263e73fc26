package downloads

import (
	"fmt"
	"os"
	"time"

	"grabarr/internal/domain/consts"
)

// VerifyDownload waits for the saved file to settle in the filesystem
// and checks it is a non-empty regular file.
func VerifyDownload(path string) error {
	if err := waitForFile(path, consts.FileWaitTimeout); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file verification failed: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("saved path %q is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("saved file is empty: %s", path)
	}
	return nil
}

// waitForFile waits until the file is ready in the file system.
func waitForFile(path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil { // err IS nil
			return nil
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("unexpected error while checking file: %w", err)
		}
		time.Sleep(consts.FileCheckInterval)
	}
	return fmt.Errorf("file not ready after %v: %s", timeout, path)
}
