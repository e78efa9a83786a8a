// Package tui is an interactive terminal browser for the Star Wars API.
//
// It lists people, planets and vehicles in tabs, marks the favorites of the
// acting user and lets that user toggle a favorite or copy an entry as JSON.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/starwars-api/internal/adapter"
	"github.com/MKhiriev/starwars-api/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	api    adapter.APIAdapter
	logger *logger.Logger
}

func New(api adapter.APIAdapter, logger *logger.Logger) (*TUI, error) {
	if api == nil {
		return nil, errors.New("tui: nil API adapter")
	}
	return &TUI{api: api, logger: logger}, nil
}

// Browse runs the browser on behalf of userID until the user quits.
func (t *TUI) Browse(ctx context.Context, userID int64) error {
	model := newBrowserModel(ctx, t.api, userID)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(browserModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil {
		t.logger.Debug().Err(result.err).Msg("browser closed with error")
	}
	return nil
}
