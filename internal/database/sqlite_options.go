package database

// SynchronousMode represents the available synchronous settings for SQLite
type SynchronousMode string

const (
	SynchronousOff    SynchronousMode = "OFF"
	SynchronousNormal SynchronousMode = "NORMAL"
	SynchronousFull   SynchronousMode = "FULL"
)

// JournalMode represents the available journal modes for SQLite
type JournalMode string

const (
	JournalDelete JournalMode = "DELETE"
	JournalMemory JournalMode = "MEMORY"
	JournalWAL    JournalMode = "WAL"
)

// CacheMode represents the available cache modes for SQLite
type CacheMode string

const (
	CacheShared  CacheMode = "shared"
	CachePrivate CacheMode = "private"
)

// SQLiteOptions contains configuration options for the SQLite connection.
// Mode and Cache travel in the DSN; the rest are applied as PRAGMAs after
// the connection is opened.
type SQLiteOptions struct {
	// Path to the SQLite database file, or ":memory:"
	Path string

	Mode        string // ro, rw, rwc, memory
	Cache       CacheMode
	Journal     JournalMode
	ForeignKeys bool
	BusyTimeout int // milliseconds
	Synchronous SynchronousMode
}

// NewDefaultOptions creates SQLiteOptions with recommended defaults
func NewDefaultOptions(path string) SQLiteOptions {
	return SQLiteOptions{
		Path:        path,
		Mode:        "rwc",
		Cache:       CachePrivate,
		Journal:     JournalWAL,
		ForeignKeys: true,
		BusyTimeout: 5000,
		Synchronous: SynchronousNormal,
	}
}

// NewMemoryOptions creates SQLiteOptions for an in-memory database, used by
// tests.
func NewMemoryOptions() SQLiteOptions {
	return SQLiteOptions{
		Path:        ":memory:",
		Mode:        "memory",
		Cache:       CacheShared,
		Journal:     JournalMemory,
		ForeignKeys: true,
		BusyTimeout: 5000,
	}
}
