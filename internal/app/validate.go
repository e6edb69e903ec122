package app

import (
	"context"

	"github.com/samber/lo"
	"go.trai.ch/mono/internal/core/domain"
)

// ValidateOptions configures Validate.
type ValidateOptions struct {
	// Packages filters the packages to check. Empty selects all.
	Packages []string
	// Skip lists dependencies ignored in addition to the configured ones.
	Skip []string
}

// Validate checks that every external dependency is declared with a single
// version range across the selected packages.
func (a *App) Validate(_ context.Context, opts ValidateOptions) error {
	ws, catalog, err := a.load()
	if err != nil {
		return err
	}

	skip := lo.Uniq(append(append([]string{}, ws.Settings.ValidateSkip...), opts.Skip...))
	if err := domain.CheckVersionsMatch(catalog, opts.Packages, skip); err != nil {
		return err
	}

	a.logger.Info("All dependency versions match")
	return nil
}
