package card

import (
	"context"
)

// Loader defines the interface for loading seed-code files.
type Loader interface {
	// Load reads a gzipped seed file and returns the raw codes it
	// contains, one per line.
	Load(ctx context.Context, filePath string) ([]string, error)
}
