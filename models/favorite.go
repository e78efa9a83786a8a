// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// FavoriteKind selects which catalog table and join table a favorite
// operation targets.
type FavoriteKind string

const (
	FavoriteKindPlanet  FavoriteKind = "planet"
	FavoriteKindPeople  FavoriteKind = "people"
	FavoriteKindVehicle FavoriteKind = "vehicle"
)

// FavoriteKinds lists every supported kind in a stable order.
var FavoriteKinds = []FavoriteKind{
	FavoriteKindPeople,
	FavoriteKindPlanet,
	FavoriteKindVehicle,
}

// Valid reports whether k is one of the supported kinds.
func (k FavoriteKind) Valid() bool {
	switch k {
	case FavoriteKindPlanet, FavoriteKindPeople, FavoriteKindVehicle:
		return true
	}
	return false
}

// Title returns the capitalized display name used in response messages
// ("Planet", "People", "Vehicle").
func (k FavoriteKind) Title() string {
	switch k {
	case FavoriteKindPlanet:
		return "Planet"
	case FavoriteKindPeople:
		return "People"
	case FavoriteKindVehicle:
		return "Vehicle"
	}
	return string(k)
}

// TargetColumn returns the join-table column that references the catalog row.
func (k FavoriteKind) TargetColumn() string {
	switch k {
	case FavoriteKindPlanet:
		return "planet_id"
	case FavoriteKindPeople:
		return "people_id"
	case FavoriteKindVehicle:
		return "vehicle_id"
	}
	return ""
}

// TableName returns the join table for the kind.
func (k FavoriteKind) TableName() string {
	switch k {
	case FavoriteKindPlanet:
		return "favorite_planet"
	case FavoriteKindPeople:
		return "favorite_people"
	case FavoriteKindVehicle:
		return "favorite_vehicle"
	}
	return ""
}

// Favorite is a join row linking a user to one catalog entity.
//
// The row is serialized as {"id", "user_id", "<kind>_id"}, where the last key
// depends on Kind.
type Favorite struct {
	ID       int64
	Kind     FavoriteKind
	UserID   int64
	TargetID int64
}

// MarshalJSON renders the favorite with its kind-specific target column.
func (f Favorite) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int64{
		"id":                  f.ID,
		"user_id":             f.UserID,
		f.Kind.TargetColumn(): f.TargetID,
	})
}

// UnmarshalJSON restores Kind from whichever target column is present.
func (f *Favorite) UnmarshalJSON(b []byte) error {
	var raw map[string]int64
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*f = Favorite{ID: raw["id"], UserID: raw["user_id"]}
	for _, kind := range FavoriteKinds {
		if target, ok := raw[kind.TargetColumn()]; ok {
			f.Kind = kind
			f.TargetID = target
			break
		}
	}
	return nil
}

// UserFavorites groups every favorite row of a single user by kind.
type UserFavorites struct {
	People   []Favorite `json:"people"`
	Planets  []Favorite `json:"planets"`
	Vehicles []Favorite `json:"vehicles"`
}

// Identity is the caller on whose behalf a favorite operation runs.
//
// There is no authentication: the HTTP layer resolves it from the optional
// user_id query parameter.
type Identity struct {
	UserID int64
}
