package database

// SQLite schema for the nine record tables. Created on startup when the
// embedded backend is active; the Postgres backend is migration-managed
// and never receives DDL from this process.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_code TEXT UNIQUE,
    name TEXT,
    client_name TEXT,
    location TEXT,
    contract_value REAL DEFAULT 0,
    start_date TEXT,
    status TEXT,
    project_type TEXT DEFAULT 'Other'
);

CREATE TABLE IF NOT EXISTS cash_book (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT,
    project_code TEXT,
    description TEXT,
    method TEXT,
    ref_no TEXT,
    debit REAL DEFAULT 0,
    credit REAL DEFAULT 0,
    remarks TEXT
);

CREATE TABLE IF NOT EXISTS invoices (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    invoice_no TEXT,
    date TEXT,
    project_code TEXT,
    client_name TEXT,
    description TEXT,
    amount REAL,
    status TEXT,
    remarks TEXT,
    attachment_path TEXT
);

CREATE TABLE IF NOT EXISTS debts_fixed (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type TEXT,
    name TEXT,
    project_code TEXT,
    amount REAL,
    start_date TEXT,
    remarks TEXT
);

CREATE TABLE IF NOT EXISTS people (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    emp_code TEXT,
    name TEXT,
    position TEXT,
    project_code TEXT,
    basic_salary REAL,
    allowance REAL,
    is_active INTEGER DEFAULT 1
);

CREATE TABLE IF NOT EXISTS visas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    emp_code TEXT,
    name TEXT,
    visa_no TEXT,
    issue_date TEXT,
    expiry_date TEXT,
    cost REAL,
    project_code TEXT
);

CREATE TABLE IF NOT EXISTS tickets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    emp_code TEXT,
    name TEXT,
    from_city TEXT,
    to_city TEXT,
    travel_date TEXT,
    cost REAL,
    project_code TEXT
);

CREATE TABLE IF NOT EXISTS accounts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    code TEXT UNIQUE,
    name TEXT,
    type TEXT
);

CREATE TABLE IF NOT EXISTS journal (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT,
    account_code TEXT,
    description TEXT,
    debit REAL,
    credit REAL,
    ref TEXT
);

CREATE INDEX IF NOT EXISTS idx_cash_book_project ON cash_book(project_code);
CREATE INDEX IF NOT EXISTS idx_cash_book_date ON cash_book(date);
CREATE INDEX IF NOT EXISTS idx_invoices_project ON invoices(project_code);
CREATE INDEX IF NOT EXISTS idx_debts_fixed_project ON debts_fixed(project_code);
CREATE INDEX IF NOT EXISTS idx_journal_account ON journal(account_code);
`

func (db *DB) initSchema() error {
	_, err := db.conn.Exec(sqliteSchema)
	return err
}
