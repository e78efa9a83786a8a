package http

import (
	"html/template"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/models"
)

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Star Wars API</title></head>
<body style="text-align: center;">
<h1>Star Wars API</h1>
<p>API HOST: <code>{{ .Host }}</code></p>
<p>Start working on your project by following these endpoints:</p>
<ul style="text-align: left; display: inline-block;">
{{- range .Routes }}
<li>{{ if .Link }}<a href="{{ .Pattern }}">{{ .Method }} {{ .Pattern }}</a>{{ else }}{{ .Method }} {{ .Pattern }}{{ end }}</li>
{{- end }}
</ul>
</body>
</html>
`))

type sitemapRoute struct {
	models.Route
	Link bool
}

// sitemap lists every route registered on router. GET routes without path
// parameters are rendered as links.
func (h *Handler) sitemap(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		routes, err := collectRoutes(router)
		if err != nil {
			writeError(w, r, err)
			return
		}

		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		err = sitemapTemplate.Execute(w, struct {
			Host   string
			Routes []sitemapRoute
		}{
			Host:   scheme + "://" + r.Host,
			Routes: routes,
		})
		if err != nil {
			log.Err(err).Msg("error rendering sitemap")
		}
	}
}

// paramConstraint matches the regexp part of a chi parameter, ":[0-9]+" in
// "{id:[0-9]+}".
var paramConstraint = regexp.MustCompile(`\{(\w+):[^}]*\}`)

func displayPattern(route string) string {
	route = strings.ReplaceAll(route, "/*/", "/")
	return paramConstraint.ReplaceAllString(route, "{$1}")
}

func collectRoutes(router chi.Routes) ([]sitemapRoute, error) {
	var routes []sitemapRoute

	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		route = displayPattern(route)
		routes = append(routes, sitemapRoute{
			Route: models.Route{Method: method, Pattern: route},
			Link:  method == http.MethodGet && !strings.Contains(route, "{"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Pattern != routes[j].Pattern {
			return routes[i].Pattern < routes[j].Pattern
		}
		return routes[i].Method < routes[j].Method
	})

	return routes, nil
}
