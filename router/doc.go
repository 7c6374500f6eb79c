// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Olympics app.

# Route Registration

NewRouter builds an http.ServeMux with every endpoint and wraps it with the
session middleware:

	handler := router.NewRouter(store, cfg, sessions, users, m)

# Endpoints

Operations:

	GET /health     - Liveness check
	GET /metrics    - Prometheus metrics
	GET /static/... - Embedded assets

Public pages:

	GET  /          - Home
	GET  /privacy   - Privacy policy
	GET  /login     - Login form (returnUrl query parameter)
	POST /login     - Sign in
	GET  /register  - Registration form
	POST /register  - Create account and sign in
	POST /logout    - Sign out

Signed-in users only (others are redirected to /login):

	GET  /sportspeople?page=&pageSize=           - Paginated listing
	GET  /sportspeople/{id}/events               - Event entries of one person
	GET  /sportspeople/{id}/participations/new   - Add participation form
	POST /sportspeople/{id}/participations/new   - Add participation
	POST /participations/delete                  - Delete participation

Every page route is logged and reported to the request metrics under its
pattern. Unknown GET paths render the not-found page; other methods on
known paths get 405.
*/
package router
