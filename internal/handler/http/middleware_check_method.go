// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// apiNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the /api subrouter.
//
// Chi would answer a known path requested with an unsupported method with
// 405 and an unknown path with a plain-text 404. Under /api both cases get
// the same JSON 404 body instead, so API clients always receive a coded
// error and route existence is not revealed.
func apiNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, fmt.Errorf("%w: %s %s", ErrAPIRouteNotFound, r.Method, r.URL.Path))
}
