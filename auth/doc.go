// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides accounts, sessions and request identity.

# Users File

Accounts live in a JSON file of usernames and bcrypt hashes:

	users, err := auth.NewFileUserStore("users.json")
	err = users.Authenticate(username, password)
	user, err := users.Register(username, password)

A missing or empty file is an empty store. Usernames are matched case
insensitively. Writes go through a temp file and rename.

# Sessions

Sessions are HS256 JWTs carried in the olympics_session cookie:

	sessions := auth.NewSessionManager(secret, 30*time.Minute, secure)
	err := sessions.SetCookie(w, username)
	claims, err := sessions.FromRequest(r)

Expiration slides: once less than half the lifetime remains the
middleware issues a fresh cookie. Cookies are HttpOnly with SameSite=Lax.

# Request Identity

WithUser and UserFromContext carry the signed-in username through the
request context. NewRequestID returns a UUID shown on error pages.
*/
package auth
