package tui

import "github.com/MKhiriev/starwars-api/models"

type catalogLoadedMsg struct {
	rows      [tabCount][]row
	favorites map[models.FavoriteKind]map[int64]bool
	err       error
}

type favoriteToggledMsg struct {
	kind     models.FavoriteKind
	targetID int64
	added    bool
	msg      string
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
