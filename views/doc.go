// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML pages.

Templates and the stylesheet are embedded. Each page template defines a
"content" block that is executed inside layout.html:

	views.Render(w, r, http.StatusOK, views.PageSportspeople, "Sportspeople", page)

The layout greets the user found in the request context. Template helpers
use go-humanize for counts (comma) and measurements (measure).
*/
package views
