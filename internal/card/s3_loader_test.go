package card

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// stubLoader is a function-backed Loader for fallback tests.
type stubLoader struct {
	loadFunc func(ctx context.Context, filePath string) ([]string, error)
}

func (s *stubLoader) Load(ctx context.Context, filePath string) ([]string, error) {
	if s.loadFunc != nil {
		return s.loadFunc(ctx, filePath)
	}
	return nil, errors.New("not implemented")
}

func TestFallbackLoader_S3Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	s3Loader := &stubLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]string, error) {
			assert.Equal(t, "seeds/test.gz", filePath, "S3 key should have prefix")
			return []string{"S3CODE123"}, nil
		},
	}

	fileLoader := &stubLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]string, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seeds/", true, logger)

	codes, err := fallback.Load(ctx, "test.gz")
	assert.NoError(t, err)
	assert.Equal(t, []string{"S3CODE123"}, codes)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	s3Loader := &stubLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]string, error) {
			return nil, errors.New("S3 connection failed")
		},
	}

	fileLoader := &stubLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]string, error) {
			assert.Equal(t, "test.gz", filePath, "local file path should not have prefix")
			return []string{"LOCALCODE1"}, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seeds/", true, logger)

	codes, err := fallback.Load(ctx, "test.gz")
	assert.NoError(t, err)
	assert.Equal(t, []string{"LOCALCODE1"}, codes)
}

func TestFallbackLoader_S3Disabled(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	s3Loader := &stubLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]string, error) {
			t.Error("S3 loader should not be called when S3 is disabled")
			return nil, errors.New("should not be called")
		},
	}

	fileLoader := &stubLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]string, error) {
			assert.Equal(t, "test.gz", filePath)
			return []string{"LOCALCODE2"}, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seeds/", false, logger)

	codes, err := fallback.Load(ctx, "test.gz")
	assert.NoError(t, err)
	assert.Equal(t, []string{"LOCALCODE2"}, codes)
}

func TestFallbackLoader_S3LoaderNil(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	fileLoader := &stubLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]string, error) {
			return []string{"LOCALCODE3"}, nil
		},
	}

	fallback := NewFallbackLoader(nil, fileLoader, "seeds/", true, logger)

	codes, err := fallback.Load(ctx, "test.gz")
	assert.NoError(t, err)
	assert.Equal(t, []string{"LOCALCODE3"}, codes)
}
