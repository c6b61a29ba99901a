package main

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/DiversenSato/dashtools/client"
)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) EnsureSchema(ctx context.Context) error {
	const ddlLevels = `
CREATE TABLE IF NOT EXISTS levels (
  id BIGINT UNSIGNED NOT NULL COMMENT 'Level ID',
  name VARCHAR(64) NOT NULL COMMENT 'Level name',
  player_id BIGINT NOT NULL DEFAULT 0 COMMENT 'Creator player ID',
  stars INT NOT NULL DEFAULT 0 COMMENT 'Awarded stars',
  downloads BIGINT NOT NULL DEFAULT 0 COMMENT 'Download count at fetch time',
  likes BIGINT NOT NULL DEFAULT 0 COMMENT 'Like count at fetch time',
  version INT NOT NULL DEFAULT 1 COMMENT 'Level version at fetch time',
  description TEXT NOT NULL COMMENT 'Decoded description',
  level_string LONGTEXT NOT NULL COMMENT 'Opaque game data payload',
  hash_valid TINYINT(1) NOT NULL DEFAULT 0 COMMENT '1=both download hashes verified',
  fetched_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP COMMENT 'Fetch time',
  PRIMARY KEY (id),
  KEY idx_player_id (player_id) COMMENT 'Levels by creator',
  KEY idx_stars (stars) COMMENT 'Filter rated levels'
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci COMMENT='Archived level snapshots';`

	if _, err := r.db.ExecContext(ctx, ddlLevels); err != nil {
		return err
	}
	// Older archives predate the integrity column.
	if _, err := r.db.ExecContext(ctx, `ALTER TABLE levels ADD COLUMN hash_valid TINYINT(1) NOT NULL DEFAULT 0 COMMENT '1=both download hashes verified'`); err != nil {
		if !strings.Contains(err.Error(), "Duplicate column name") {
			return err
		}
	}
	return nil
}

// SaveLevel upserts one downloaded level. Re-archiving a level replaces
// the stored snapshot.
func (r *Repo) SaveLevel(ctx context.Context, d client.DownloadedLevel) error {
	l := d.Level
	hashValid := 0
	if d.IsHash1Valid && d.IsHash2Valid {
		hashValid = 1
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO levels (id, name, player_id, stars, downloads, likes, version, description, level_string, hash_valid, fetched_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name = VALUES(name),
  player_id = VALUES(player_id),
  stars = VALUES(stars),
  downloads = VALUES(downloads),
  likes = VALUES(likes),
  version = VALUES(version),
  description = VALUES(description),
  level_string = VALUES(level_string),
  hash_valid = VALUES(hash_valid),
  fetched_at = VALUES(fetched_at)`,
		l.ID, l.Name, l.PlayerID, l.Stars, l.Downloads, l.Likes, l.Version,
		l.Description, l.LevelString, hashValid, time.Now())
	return err
}

// HasLevel reports whether a level snapshot already exists.
func (r *Repo) HasLevel(ctx context.Context, id int) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM levels WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
