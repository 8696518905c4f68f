// Package log provides centralised audit logging for nametag operations.
// Logs are stored in ~/.nametag/log/nametag-log.db and track every tag
// operation and rename across directories, which is what makes the
// "nametag history" command possible.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("tag:add", "add").
//		Path(p).
//		Renamed(newPath).
//		Detail("tags", tags).
//		Write(err)
//
// The source parameter follows the format "tag:{command}" for CLI commands
// or "mcp:{tool}" for MCP tools. Examples: "tag:add", "mcp:nametag_tags".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "tag:add", "mcp:nametag_tags"
	Action string // verb: add, remove, clear, list, find
	Path   string // input: file path the operation targeted

	// Renamed is the path the file ended up at, when the operation
	// performed a rename. Empty for read-only operations and dry runs.
	Renamed string

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data (tags, counts)
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the file path this operation affects.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Renamed sets the path the file was renamed to (output). Leave unset for
// read-only operations, dry runs, and no-op renames.
func (b *Builder) Renamed(path string) *Builder {
	b.entry.Renamed = path
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure
// from err. This is the standard way to complete a log entry after an
// operation:
//
//	err := fileop.Add(...)
//	log.Event("tag:add", "add").Path(p).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetWorkDir sets the directory identifier for subsequent log entries.
// The dir should be the absolute path of the directory being operated on.
func SetWorkDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.workdir = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns the most recent entries, newest first. Returns nil with
// no error when the logger is not initialised.
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	return l.recent(limit)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
