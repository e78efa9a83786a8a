// Command client talks to a running Star Wars API.
//
// Usage:
//
//	client [-url base] [-user id] <command> [args]
//
// Commands:
//
//	people|planets|vehicles|users [id]   list a collection or show one entry
//	favorites <userID>                   show the favorites of a user
//	add <kind> <id>                      favorite an entry (kind: people|planet|vehicle)
//	remove <kind> <id>                   remove a favorite
//	version                              show the server build info
//	browse                               interactive browser
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/starwars-api/internal/adapter"
	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/tui"
	"github.com/MKhiriev/starwars-api/models"
)

var errUsage = errors.New("usage: client [-url base] [-user id] <people|planets|vehicles|users [id] | favorites <userID> | add|remove <kind> <id> | version | browse>")

func main() {
	log := logger.NewCLILogger("starwars-client")

	cfg, err := config.GetStructuredConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fs := flag.NewFlagSet("client", flag.ExitOnError)
	baseURL := fs.String("url", cfg.Adapter.BaseURL, "API base URL")
	userID := fs.Int64("user", cfg.App.DefaultUserID, "Acting user id for favorites")
	_ = fs.Parse(os.Args[1:])

	cfg.Adapter.BaseURL = *baseURL
	api, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API adapter")
	}

	ctx := context.Background()
	if err = run(ctx, api, *userID, fs.Args(), log); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, api adapter.APIAdapter, userID int64, args []string, log *logger.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "people":
		return listOrGet(ctx, rest, api.ListPeople, api.GetPerson)
	case "planets":
		return listOrGet(ctx, rest, api.ListPlanets, api.GetPlanet)
	case "vehicles":
		return listOrGet(ctx, rest, api.ListVehicles, api.GetVehicle)
	case "users":
		return listOrGet(ctx, rest, api.ListUsers, api.GetUser)
	case "favorites":
		if len(rest) != 1 {
			return errUsage
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		favorites, err := api.GetUserFavorites(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(favorites)
	case "add", "remove":
		if len(rest) != 2 {
			return errUsage
		}
		kind := models.FavoriteKind(rest[0])
		if !kind.Valid() {
			return fmt.Errorf("unknown kind %q", rest[0])
		}
		id, err := parseID(rest[1])
		if err != nil {
			return err
		}

		toggle := api.AddFavorite
		if command == "remove" {
			toggle = api.RemoveFavorite
		}
		msg, err := toggle(ctx, userID, kind, id)
		if err != nil {
			return err
		}
		return printJSON(models.MessageResponse{Msg: msg})
	case "version":
		info, err := api.Version(ctx)
		if err != nil {
			return err
		}
		return printJSON(info)
	case "browse":
		ui, err := tui.New(api, log)
		if err != nil {
			return err
		}
		return ui.Browse(ctx, userID)
	default:
		return errUsage
	}
}

func listOrGet[T any](
	ctx context.Context,
	args []string,
	list func(context.Context) ([]T, error),
	get func(context.Context, int64) (T, error),
) error {
	switch len(args) {
	case 0:
		items, err := list(ctx)
		if err != nil {
			return err
		}
		return printJSON(items)
	case 1:
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		item, err := get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(item)
	default:
		return errUsage
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return id, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
