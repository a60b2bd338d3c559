package output

import (
	"fmt"
	"os"
)

// Write replaces the file at path with content. The parent directory must
// already exist.
func Write(path, content string) error {
	if path == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file '%s': %w", path, err)
	}
	return nil
}
