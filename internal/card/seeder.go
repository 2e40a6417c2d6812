package card

import (
	"context"
	"fmt"

	"gift-kiosk/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder preloads pre-issued gift-card codes into the registry at boot.
// Seeded cards behave exactly like customer-submitted ones: they start
// pending with no price override.
type Seeder struct {
	loader Loader
	cards  repository.CardRepository
	logger zerolog.Logger
}

// NewSeeder creates a new registry seeder.
func NewSeeder(loader Loader, cards repository.CardRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader: loader,
		cards:  cards,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed loads every configured seed file and registers each valid code.
// Lines that fail normalisation are logged and skipped rather than
// aborting the whole load. Returns the number of codes registered.
func (s *Seeder) Seed(ctx context.Context, filePaths []string) (int, error) {
	registered := 0

	for _, filePath := range filePaths {
		codes, err := s.loader.Load(ctx, filePath)
		if err != nil {
			return registered, fmt.Errorf("failed to load seed file %s: %w", filePath, err)
		}

		skipped := 0
		for _, raw := range codes {
			code, err := NormalizeCode(raw)
			if err != nil {
				skipped++
				s.logger.Warn().
					Str("file", filePath).
					Str("raw_code", raw).
					Msg("skipping seed code that fails validation")
				continue
			}

			if _, err := s.cards.LookupOrCreate(ctx, code); err != nil {
				return registered, fmt.Errorf("failed to register seed code %s: %w", code, err)
			}
			registered++
		}

		s.logger.Info().
			Str("file", filePath).
			Int("registered", registered).
			Int("skipped", skipped).
			Msg("seed file processed")
	}

	return registered, nil
}
