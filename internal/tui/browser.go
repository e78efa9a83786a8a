package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/starwars-api/internal/adapter"
	"github.com/MKhiriev/starwars-api/models"
)

const (
	tabPeople = iota
	tabPlanets
	tabVehicles
	tabCount
)

// tabKinds maps each tab to the favorite kind of its entries.
var tabKinds = [tabCount]models.FavoriteKind{
	tabPeople:   models.FavoriteKindPeople,
	tabPlanets:  models.FavoriteKindPlanet,
	tabVehicles: models.FavoriteKindVehicle,
}

var tabTitles = [tabCount]string{
	tabPeople:   "People",
	tabPlanets:  "Planets",
	tabVehicles: "Vehicles",
}

const statusTTL = 2 * time.Second

// row is one catalog entry as listed by the browser.
type row struct {
	id    int64
	label string
	item  any
}

type browserModel struct {
	ctx    context.Context
	api    adapter.APIAdapter
	userID int64

	tab       int
	rows      [tabCount][]row
	idx       [tabCount]int
	favorites map[models.FavoriteKind]map[int64]bool

	loading bool
	spinner spinner.Model
	status  string
	err     error

	// copy writes to the system clipboard.
	copy func(text string) error
}

func newBrowserModel(ctx context.Context, api adapter.APIAdapter, userID int64) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:       ctx,
		api:       api,
		userID:    userID,
		favorites: emptyFavorites(),
		loading:   true,
		spinner:   s,
		copy:      clipboard.WriteAll,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.rows = msg.rows
		m.favorites = msg.favorites
		for t := range m.idx {
			m.idx[t] = clamp(m.idx[t], len(m.rows[t]))
		}
		return m, nil
	case favoriteToggledMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, cmdClearStatus()
		}
		if msg.added {
			m.favorites[msg.kind][msg.targetID] = true
		} else {
			delete(m.favorites[msg.kind], msg.targetID)
		}
		m.status = msg.msg
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy to clipboard: %v", msg.err)
		} else {
			m.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m browserModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}

	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.left):
		m.tab = (m.tab + tabCount - 1) % tabCount
	case key.Matches(msg, keys.right):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(msg, keys.up):
		m.idx[m.tab] = clamp(m.idx[m.tab]-1, len(m.rows[m.tab]))
	case key.Matches(msg, keys.down):
		m.idx[m.tab] = clamp(m.idx[m.tab]+1, len(m.rows[m.tab]))
	case key.Matches(msg, keys.favorite):
		if r, ok := m.current(); ok {
			return m, m.cmdToggleFavorite(tabKinds[m.tab], r.id)
		}
	case key.Matches(msg, keys.copy):
		if r, ok := m.current(); ok {
			return m, m.cmdCopy(r.item)
		}
	}
	return m, nil
}

func (m browserModel) current() (row, bool) {
	rows := m.rows[m.tab]
	i := m.idx[m.tab]
	if i < 0 || i >= len(rows) {
		return row{}, false
	}
	return rows[i], true
}

func (m browserModel) isFavorite(kind models.FavoriteKind, id int64) bool {
	return m.favorites[kind][id]
}

func (m browserModel) cmdLoad() tea.Cmd {
	ctx, api, userID := m.ctx, m.api, m.userID
	return func() tea.Msg {
		return loadCatalog(ctx, api, userID)
	}
}

func loadCatalog(ctx context.Context, api adapter.APIAdapter, userID int64) catalogLoadedMsg {
	var msg catalogLoadedMsg

	people, err := api.ListPeople(ctx)
	if err != nil {
		return catalogLoadedMsg{err: err}
	}
	for _, p := range people {
		msg.rows[tabPeople] = append(msg.rows[tabPeople], row{id: p.ID, label: fmt.Sprintf("%s (%s, %d)", p.Name, p.Gender, p.Age), item: p})
	}

	planets, err := api.ListPlanets(ctx)
	if err != nil {
		return catalogLoadedMsg{err: err}
	}
	for _, p := range planets {
		msg.rows[tabPlanets] = append(msg.rows[tabPlanets], row{id: p.ID, label: fmt.Sprintf("%s (%s)", p.Name, p.Climate), item: p})
	}

	vehicles, err := api.ListVehicles(ctx)
	if err != nil {
		return catalogLoadedMsg{err: err}
	}
	for _, v := range vehicles {
		msg.rows[tabVehicles] = append(msg.rows[tabVehicles], row{id: v.ID, label: v.Brand + " " + v.Model, item: v})
	}

	msg.favorites = emptyFavorites()
	favorites, err := api.GetUserFavorites(ctx, userID)
	if err != nil {
		return catalogLoadedMsg{err: fmt.Errorf("user %d: %w", userID, err)}
	}
	for _, group := range [][]models.Favorite{favorites.People, favorites.Planets, favorites.Vehicles} {
		for _, f := range group {
			if set, ok := msg.favorites[f.Kind]; ok {
				set[f.TargetID] = true
			}
		}
	}

	return msg
}

// cmdToggleFavorite removes a marked favorite and adds an unmarked one.
// A server that disagrees with the local mark is trusted: a duplicate add
// marks the entry and a missing favorite on removal unmarks it.
func (m browserModel) cmdToggleFavorite(kind models.FavoriteKind, targetID int64) tea.Cmd {
	ctx, api, userID := m.ctx, m.api, m.userID
	remove := m.isFavorite(kind, targetID)

	return func() tea.Msg {
		result := favoriteToggledMsg{kind: kind, targetID: targetID}
		if remove {
			msg, err := api.RemoveFavorite(ctx, userID, kind, targetID)
			switch {
			case err == nil:
				result.msg = msg
			case errors.Is(err, adapter.ErrNotFound):
				result.msg = "not a favorite any more"
			default:
				result.err = err
			}
			return result
		}

		msg, err := api.AddFavorite(ctx, userID, kind, targetID)
		switch {
		case err == nil:
			result.added, result.msg = true, msg
		case errors.Is(err, adapter.ErrBadRequest):
			result.added, result.msg = true, "already a favorite"
		default:
			result.err = err
		}
		return result
	}
}

func (m browserModel) cmdCopy(item any) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		text, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: copyFn(string(text))}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func emptyFavorites() map[models.FavoriteKind]map[int64]bool {
	favorites := make(map[models.FavoriteKind]map[int64]bool, len(models.FavoriteKinds))
	for _, kind := range models.FavoriteKinds {
		favorites[kind] = make(map[int64]bool)
	}
	return favorites
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
