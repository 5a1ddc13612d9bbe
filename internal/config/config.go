package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Database variables are required and missing
// values abort startup; everything else falls back to a default so the
// server runs with only a database configured.
type Config struct {
    Env         string // application environment ("dev" enables error detail in responses)
    Port        string // HTTP port to listen on
    FrontendURL string // allowed CORS origin for the browser frontend
    DBUser      string // database username
    DBPass      string // database password (optional)
    DBHost      string // database host address
    DBPort      string // database port number
    DBName      string // database name
    AdminUser   string // single admin username, upserted at startup
    AdminPass   string // single admin password, upserted at startup
    UploadDir   string // directory where uploaded spreadsheets are retained
    WorkerCmd   string // external spreadsheet worker command (empty disables)
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:         getenv("APP_ENV", "dev"),
        Port:        getenv("APP_PORT", "4000"),
        FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),
        DBUser:      must("DB_USER"),      // database user
        DBPass:      os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost:      must("DB_HOST"),      // database host
        DBPort:      must("DB_PORT"),      // database port
        DBName:      must("DB_NAME"),      // database name
        AdminUser:   getenv("ADMIN_USER", "Kgkite"),
        AdminPass:   getenv("ADMIN_PASS", "Kite@123"),
        UploadDir:   getenv("UPLOAD_DIR", "uploads"),
        WorkerCmd:   os.Getenv("INGEST_WORKER"), // e.g. a python excel worker script
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// getenv retrieves an optional environment variable, falling back to the
// given default when unset or empty.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
