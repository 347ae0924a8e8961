package utils

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pasale/product-catalog/internal/errors"
)

// ParseID reads a positive integer path value.
func ParseID(r *http.Request, name string) (int64, error) {

	raw := r.PathValue(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		slog.Debug("Invalid path id", slog.String("param", name), slog.String("value", raw))
		return 0, errors.BadRequestError("Invalid ID format").WithDetail(name + " must be a positive integer")
	}

	return id, nil
}

// QueryInt reads an integer query parameter, returning def when it is absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {

	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.AddValidationError(name, "must be an integer")
	}

	return value, nil
}
