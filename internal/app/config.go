package app

import "goasterix/internal/export"

// Default configuration constants
const (
	DefaultWorkers = 4
)

// Config holds application configuration
type Config struct {
	InputFile   string
	CSVBase     string // base path for per-category CSV files, empty disables
	SQLitePath  string // SQLite database path, empty disables
	Workers     int    // parallel decode workers, 1 means sequential
	Inspect     int    // print the first N decoded records to stdout
	Verbose     bool
	ShowVersion bool

	Filters export.Filters
}
