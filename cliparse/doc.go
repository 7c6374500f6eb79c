// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Sources are layered, later ones winning:

 1. Defaults()
 2. YAML file named by -c or OLYMPICS_CONFIG
 3. OLYMPICS_* environment variables, after loading the dotenv file
 4. Flags set on the command line

# CLI Flags

	-p              Server port
	-d              Database URL (file path for sqlite)
	-t              Database type: sqlite or postgres
	-u              Users file
	-c              YAML config file
	-env-file       Dotenv file (default .env, ignored when missing)
	-session-secret Session signing secret

# Environment Variables

Keys drop the prefix and are lowercased:

	OLYMPICS_PORT           → port
	OLYMPICS_DATABASE_URL   → database_url
	OLYMPICS_SESSION_SECRET → session_secret
	OLYMPICS_SESSION_TTL    → session_ttl (e.g. 45m)

# Validation

ParseFlags returns an error when the session secret is missing, the port
or database type is invalid, or page sizes are not positive with
max_page_size at least page_size.
*/
package cliparse
