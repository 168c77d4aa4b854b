package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted dumps code that failed go/format to a sidecar file
// next to the intended output, so the broken template output can be
// inspected. Best-effort: it must never make generation fail harder.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	// Keep the .go suffix for editor highlighting without colliding with the
	// real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(dir, debugName), content, filePerm)
}
