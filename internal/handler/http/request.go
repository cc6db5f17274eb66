package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-car-rental/models"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the positive integer path parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParameter, name, raw)
	}
	return id, nil
}

// parsePage reads the optional page and size query parameters.
func parsePage(r *http.Request) (models.Page, error) {
	query := r.URL.Query()

	var page models.Page
	for name, dst := range map[string]*int{"page": &page.Number, "size": &page.Size} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return models.Page{}, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParameter, name, raw)
		}
		*dst = n
	}

	return page.Normalize(), nil
}

// requestURL is the absolute URL of r without its query, used as the token
// issuer.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return (&url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path}).String()
}
