package history

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- One row per refresh cycle, successful or not
CREATE TABLE IF NOT EXISTS refresh_cycles (
    cycle_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,           -- schedule or feed
    entry_count INTEGER NOT NULL,   -- triples extracted from the listing
    table_size INTEGER NOT NULL,    -- live table key count after the cycle
    took_ms INTEGER NOT NULL,
    error TEXT,                     -- NULL on success
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_cycles_created ON refresh_cycles(created_at);
CREATE INDEX IF NOT EXISTS idx_cycles_source ON refresh_cycles(source);
`
