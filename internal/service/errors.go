package service

import "errors"

var (
	ErrInvalidID           = errors.New("invalid id")
	ErrUnknownFavoriteKind = errors.New("unknown favorite kind")

	ErrPersonNotFound  = errors.New("person not found")
	ErrPlanetNotFound  = errors.New("planet not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrAlreadyFavorited = errors.New("already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
