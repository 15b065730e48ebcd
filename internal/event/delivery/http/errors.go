package http

import (
	"net/http"

	"threatmonitor-api/internal/event"
	pkgErrors "threatmonitor-api/pkg/errors"
	"threatmonitor-api/pkg/response"
)

var (
	errWrongBody    = pkgErrors.NewHTTPError(10000, "Wrong body", http.StatusBadRequest)
	errWrongQuery   = pkgErrors.NewHTTPError(10001, "Wrong query", http.StatusBadRequest)
	errMissingScope = pkgErrors.NewUnauthorizedHTTPError()
)

var errorMapping = response.ErrorMapping{
	event.ErrEventNotFound: pkgErrors.NewNotFoundHTTPError("Event not found"),
}
