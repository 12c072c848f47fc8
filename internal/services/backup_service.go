package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
)

// BackupService snapshots the embedded SQLite database to dated files.
// The Postgres backend is backed up by its own infrastructure, so Run
// refuses when that backend is active.
type BackupService struct {
	db        *database.DB
	backupDir string
	keep      int
	log       zerolog.Logger
}

// NewBackupService creates a new backup service. keep caps how many
// snapshot files are retained; older ones are pruned after each run.
func NewBackupService(db *database.DB, backupDir string, keep int, log zerolog.Logger) *BackupService {
	if keep < 1 {
		keep = 14
	}
	return &BackupService{
		db:        db,
		backupDir: backupDir,
		keep:      keep,
		log:       log.With().Str("component", "backup").Logger(),
	}
}

// Name implements scheduler.Job
func (s *BackupService) Name() string {
	return "database_backup"
}

// Run implements scheduler.Job. VACUUM INTO produces a consistent
// snapshot without blocking writers under WAL.
func (s *BackupService) Run() error {
	if s.db.Backend() != database.BackendSQLite {
		return fmt.Errorf("backup supports the embedded sqlite backend only")
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	dest := filepath.Join(s.backupDir, fmt.Sprintf("nps_accounting_%s.db", time.Now().Format("2006-01-02_150405")))
	if _, err := s.db.Conn().Exec("VACUUM INTO ?", dest); err != nil {
		return fmt.Errorf("failed to snapshot database: %w", err)
	}

	s.log.Info().Str("path", dest).Msg("Backup written")
	return s.prune()
}

// prune removes the oldest snapshots beyond the retention cap.
// Filenames embed the timestamp, so lexical order is age order.
func (s *BackupService) prune() error {
	matches, err := filepath.Glob(filepath.Join(s.backupDir, "nps_accounting_*.db"))
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(matches) <= s.keep {
		return nil
	}

	for _, old := range matches[:len(matches)-s.keep] {
		if err := os.Remove(old); err != nil {
			s.log.Warn().Err(err).Str("path", old).Msg("Failed to prune old backup")
		}
	}
	return nil
}
