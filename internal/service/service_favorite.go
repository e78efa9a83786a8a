// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/store"
	"github.com/MKhiriev/starwars-api/internal/telemetry"
	"github.com/MKhiriev/starwars-api/models"
)

// favoriteService is the concrete implementation of [FavoriteService].
type favoriteService struct {
	users     store.UserRepository
	favorites store.FavoriteRepository

	logger *logger.Logger
}

func NewFavoriteService(users store.UserRepository, favorites store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		users:     users,
		favorites: favorites,
		logger:    logger,
	}
}

// Add implements [FavoriteService].
//
// Error handling:
//   - kind is not planet, people or vehicle → [ErrUnknownFavoriteKind].
//   - identity.UserID has no row → [ErrUserNotFound].
//   - a row for (user, target) exists → [ErrAlreadyFavorited].
//   - storage failures are wrapped and returned as is.
func (s *favoriteService) Add(ctx context.Context, identity models.Identity, kind models.FavoriteKind, targetID int64) (favorite models.Favorite, err error) {
	defer func() { telemetry.ObserveFavoriteToggle(string(kind), telemetry.ActionAdd, toggleResult(err)) }()

	log := logger.FromContext(ctx)

	user, err := s.resolveUser(ctx, kind, identity)
	if err != nil {
		return models.Favorite{}, err
	}

	_, err = s.favorites.FindFavorite(ctx, kind, user.ID, targetID)
	switch {
	case err == nil:
		return models.Favorite{}, ErrAlreadyFavorited
	case !errors.Is(err, store.ErrFavoriteNotFound):
		log.Err(err).Str("func", "*favoriteService.Add").Msg("error looking up favorite")
		return models.Favorite{}, fmt.Errorf("error looking up favorite: %w", err)
	}

	favorite, err = s.favorites.CreateFavorite(ctx, models.Favorite{
		Kind:     kind,
		UserID:   user.ID,
		TargetID: targetID,
	})
	if err != nil {
		log.Err(err).Str("func", "*favoriteService.Add").Msg("error creating favorite")
		return models.Favorite{}, fmt.Errorf("error creating favorite: %w", err)
	}

	log.Debug().
		Str("kind", string(kind)).
		Int64("user_id", user.ID).
		Int64("target_id", targetID).
		Int64("favorite_id", favorite.ID).
		Msg("favorite added")

	return favorite, nil
}

// Remove implements [FavoriteService].
//
// Error handling:
//   - kind is not planet, people or vehicle → [ErrUnknownFavoriteKind].
//   - identity.UserID has no row → [ErrUserNotFound].
//   - no row for (user, target), or it vanished before the delete →
//     [ErrFavoriteNotFound].
func (s *favoriteService) Remove(ctx context.Context, identity models.Identity, kind models.FavoriteKind, targetID int64) (err error) {
	defer func() { telemetry.ObserveFavoriteToggle(string(kind), telemetry.ActionRemove, toggleResult(err)) }()

	log := logger.FromContext(ctx)

	user, err := s.resolveUser(ctx, kind, identity)
	if err != nil {
		return err
	}

	favorite, err := s.favorites.FindFavorite(ctx, kind, user.ID, targetID)
	if errors.Is(err, store.ErrFavoriteNotFound) {
		return ErrFavoriteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*favoriteService.Remove").Msg("error looking up favorite")
		return fmt.Errorf("error looking up favorite: %w", err)
	}

	err = s.favorites.DeleteFavorite(ctx, favorite)
	if errors.Is(err, store.ErrFavoriteNotFound) {
		return ErrFavoriteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*favoriteService.Remove").Msg("error deleting favorite")
		return fmt.Errorf("error deleting favorite: %w", err)
	}

	return nil
}

func (s *favoriteService) resolveUser(ctx context.Context, kind models.FavoriteKind, identity models.Identity) (models.User, error) {
	if !kind.Valid() {
		return models.User{}, ErrUnknownFavoriteKind
	}

	user, err := s.users.FindUserByID(ctx, identity.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteService.resolveUser").Msg("error resolving user")
		return models.User{}, fmt.Errorf("error resolving user: %w", err)
	}

	return user, nil
}

func toggleResult(err error) string {
	switch {
	case err == nil:
		return telemetry.ResultOK
	case errors.Is(err, ErrUserNotFound):
		return telemetry.ResultUserNotFound
	case errors.Is(err, ErrAlreadyFavorited):
		return telemetry.ResultConflict
	case errors.Is(err, ErrFavoriteNotFound):
		return telemetry.ResultNotFound
	default:
		return telemetry.ResultError
	}
}
