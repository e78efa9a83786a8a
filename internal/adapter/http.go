package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/utils"
	"github.com/MKhiriev/starwars-api/models"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs the HTTP implementation of [APIAdapter].
// The base URL from cfg.BaseURL is normalised (a missing scheme defaults to
// http) and every request is bounded by cfg.RequestTimeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPAPIAdapter(cfg config.Adapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API address: %w", err)
	}

	return &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIAdapter) ListPeople(ctx context.Context) ([]models.Person, error) {
	var people []models.Person
	err := h.get(ctx, "/people", &people)
	return people, err
}

func (h *httpAPIAdapter) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	var person models.Person
	err := h.get(ctx, itemPath("/people", id), &person)
	return person, err
}

func (h *httpAPIAdapter) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	var planets []models.Planet
	err := h.get(ctx, "/planets", &planets)
	return planets, err
}

func (h *httpAPIAdapter) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	var planet models.Planet
	err := h.get(ctx, itemPath("/planets", id), &planet)
	return planet, err
}

func (h *httpAPIAdapter) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := h.get(ctx, "/vehicles", &vehicles)
	return vehicles, err
}

func (h *httpAPIAdapter) GetVehicle(ctx context.Context, id int64) (models.Vehicle, error) {
	var vehicle models.Vehicle
	err := h.get(ctx, itemPath("/vehicles", id), &vehicle)
	return vehicle, err
}

func (h *httpAPIAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := h.get(ctx, "/users", &users)
	return users, err
}

func (h *httpAPIAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := h.get(ctx, itemPath("/users", id), &user)
	return user, err
}

func (h *httpAPIAdapter) GetUserFavorites(ctx context.Context, userID int64) (models.UserFavorites, error) {
	var favorites models.UserFavorites
	err := h.get(ctx, itemPath("/users", userID)+"/favorites", &favorites)
	return favorites, err
}

// AddFavorite implements [APIAdapter] via POST /favorite/<kind>/<id>?user_id=.
func (h *httpAPIAdapter) AddFavorite(ctx context.Context, userID int64, kind models.FavoriteKind, targetID int64) (string, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		SetResult(&msg).
		Post(favoritePath(kind, targetID))
	if err != nil {
		return "", fmt.Errorf("add favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Msg, nil
}

// RemoveFavorite implements [APIAdapter] via DELETE /favorite/<kind>/<id>?user_id=.
func (h *httpAPIAdapter) RemoveFavorite(ctx context.Context, userID int64, kind models.FavoriteKind, targetID int64) (string, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		SetResult(&msg).
		Delete(favoritePath(kind, targetID))
	if err != nil {
		return "", fmt.Errorf("remove favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Msg, nil
}

func (h *httpAPIAdapter) Version(ctx context.Context) (VersionInfo, error) {
	var info VersionInfo
	err := h.get(ctx, "/version", &info)
	return info, err
}

// get issues GET path and decodes a 2xx JSON body into result.
func (h *httpAPIAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("request failed")
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func itemPath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}

func favoritePath(kind models.FavoriteKind, targetID int64) string {
	return "/favorite/" + string(kind) + "/" + strconv.FormatInt(targetID, 10)
}
