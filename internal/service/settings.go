package service

import (
	"context"
	"strconv"

	"archistat/internal/dossier"

	"github.com/rs/zerolog/log"
)

// SetInitialStock writes the total backlog of dossiers to clear. Must be
// strictly positive.
func (s *Service) SetInitialStock(ctx context.Context, n int) error {
	if n <= 0 {
		return ErrNotPositive
	}
	if err := s.store.SetParam(ctx, dossier.ParamInitialStock, strconv.Itoa(n)); err != nil {
		return err
	}
	log.Info().Int("initial_stock", n).Msg("Initial stock updated")
	return nil
}

// SetDailyTarget writes the dossiers-per-day goal. Must be strictly
// positive.
func (s *Service) SetDailyTarget(ctx context.Context, n int) error {
	if n <= 0 {
		return ErrNotPositive
	}
	if err := s.store.SetParam(ctx, dossier.ParamDailyTarget, strconv.Itoa(n)); err != nil {
		return err
	}
	log.Info().Int("daily_target", n).Msg("Daily target updated")
	return nil
}

// SetThreshold writes the attainment threshold fraction, clamped to
// [0.5, 1.0]. The clamp belongs to this surface; the engine itself accepts
// whatever is stored.
func (s *Service) SetThreshold(ctx context.Context, f float64) error {
	if f < 0.5 {
		f = 0.5
	}
	if f > 1.0 {
		f = 1.0
	}
	if err := s.store.SetParam(ctx, dossier.ParamThreshold, strconv.FormatFloat(f, 'g', -1, 64)); err != nil {
		return err
	}
	log.Info().Float64("reach_threshold", f).Msg("Attainment threshold updated")
	return nil
}

// SetAdminPassword updates the administration password (minimum 3
// characters).
func (s *Service) SetAdminPassword(ctx context.Context, password string) error {
	return s.setPassword(ctx, dossier.ParamAdminPassword, password)
}

// SetAppPassword updates the application-access password (minimum 3
// characters).
func (s *Service) SetAppPassword(ctx context.Context, password string) error {
	return s.setPassword(ctx, dossier.ParamAppPassword, password)
}

func (s *Service) setPassword(ctx context.Context, key, password string) error {
	if len(password) < 3 {
		return ErrPasswordTooShort
	}
	if err := s.store.SetParam(ctx, key, password); err != nil {
		return err
	}
	log.Info().Str("key", key).Msg("Password updated")
	return nil
}
