package catalog

import "errors"

// ErrCatalogNotFound is returned when collection.json does not exist yet.
var ErrCatalogNotFound = errors.New("catalog file not found")

// ErrUnknownKey indicates a row key that matches no catalog entry.
var ErrUnknownKey = errors.New("unknown row key")
