// Package config loads runtime configuration for the forms client binaries
// (web frontend and CLI).
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and FORMS_* environment variables.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-b string   backend base URL, e.g. http://localhost:5179
//	-t int      backend request timeout (milliseconds)
//	-l string   listen address of the web frontend
//	-s string   path of the web session database (bolt)
//	-m string   path of the CLI metadata database (sqlite)
//	-k string   passphrase used to seal tokens at rest (empty disables sealing)
//	-v string   log level: debug, info, warn, error
//
// Environment variables
//
//	FORMS_BACKEND_URL, FORMS_REQUEST_TIMEOUT ("5s"), FORMS_LISTEN_ADDR,
//	FORMS_SESSION_DB, FORMS_METADATA_DB, FORMS_SESSION_KEY, FORMS_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "backend_url": "http://localhost:5179",
//	  "request_timeout": "5s",
//	  "listen_addr": ":8080",
//	  "session_db": "sessions.db",
//	  "metadata_db": "forms.db",
//	  "session_key": "",
//	  "log_level": "info"
//	}
//
// Empty JSON fields leave the previous value in place.
package config
