package card

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped seed files from the
// local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a gzipped seed file and returns the raw codes it contains.
// The file is expected to contain one gift-card code per line.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]string, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	codes, err := scanCodes(ctx, gzipReader)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading seed file")
		return nil, fmt.Errorf("error reading seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("codes_loaded", len(codes)).
		Msg("seed file loaded successfully")

	return codes, nil
}

// scanCodes reads one code per line, skipping blanks. It checks for
// context cancellation periodically so a slow load can be abandoned.
func scanCodes(ctx context.Context, r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var codes []string
	lineCount := 0
	for scanner.Scan() {
		if lineCount%100_000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		lineCount++

		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			codes = append(codes, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}
