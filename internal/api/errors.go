// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/hostduel/internal/catalog"
	"github.com/tomtom215/hostduel/internal/compare"
)

// ErrNotFound is returned by lookups that find no host.
var ErrNotFound = errors.New("not found")

// notFoundErrors are domain errors answered with 404.
var notFoundErrors = []error{
	ErrNotFound,
	compare.ErrInvalidSlug,
	compare.ErrHostNotFound,
	compare.ErrCrossCluster,
	catalog.ErrUnknownUseCase,
}

// writeServiceError maps a domain error to its envelope. Unknown errors
// become 500 and are logged.
func writeServiceError(rw *ResponseWriter, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			rw.Error(http.StatusNotFound, ErrCodeNotFound, err.Error())
			return
		}
	}
	rw.InternalError(err)
}
