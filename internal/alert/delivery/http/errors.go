package http

import (
	"net/http"

	"threatmonitor-api/internal/alert"
	pkgErrors "threatmonitor-api/pkg/errors"
	"threatmonitor-api/pkg/response"
)

var (
	errWrongBody    = pkgErrors.NewHTTPError(10100, "Wrong body", http.StatusBadRequest)
	errWrongQuery   = pkgErrors.NewHTTPError(10101, "Wrong query", http.StatusBadRequest)
	errMissingScope = pkgErrors.NewUnauthorizedHTTPError()
)

var errorMapping = response.ErrorMapping{
	alert.ErrAlertNotFound: pkgErrors.NewNotFoundHTTPError("Alert not found"),
}
