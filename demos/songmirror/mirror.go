package main

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DiversenSato/dashtools/entity"
)

// SongMirror keeps decoded song metadata in a Redis hash so repeated
// lookups skip the game servers.
type SongMirror struct {
	rdb     *redis.Client
	hashKey string // e.g. gd:songs
}

func newRedisClientFromEnv() (*redis.Client, error) {
	if url := strings.TrimSpace(os.Getenv("REDIS_URL")); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			return nil, err
		}
		return redis.NewClient(opt), nil
	}

	host := strings.TrimSpace(os.Getenv("REDIS_HOST"))
	if host == "" {
		host = "127.0.0.1"
	}
	port := 6379
	if v := strings.TrimSpace(os.Getenv("REDIS_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	db := 0
	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}
	user := strings.TrimSpace(os.Getenv("REDIS_USERNAME"))
	pass := strings.TrimSpace(os.Getenv("REDIS_PASSWORD"))
	useTLS := strings.TrimSpace(os.Getenv("REDIS_SSL"))

	opt := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		DB:       db,
		Username: user,
		Password: pass,
	}
	if useTLS == "1" || strings.EqualFold(useTLS, "true") {
		opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(opt), nil
}

func newSongMirror() (*SongMirror, error) {
	rdb, err := newRedisClientFromEnv()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	hashKey := strings.TrimSpace(os.Getenv("SONG_MIRROR_KEY"))
	if hashKey == "" {
		hashKey = "gd:songs"
	}
	return &SongMirror{rdb: rdb, hashKey: hashKey}, nil
}

func (m *SongMirror) Close() error {
	return m.rdb.Close()
}

// Get returns the mirrored song, or ok=false on a miss.
func (m *SongMirror) Get(ctx context.Context, songID int) (entity.Song, bool, error) {
	raw, err := m.rdb.HGet(ctx, m.hashKey, strconv.Itoa(songID)).Result()
	if err == redis.Nil {
		return entity.Song{}, false, nil
	}
	if err != nil {
		return entity.Song{}, false, err
	}
	var s entity.Song
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return entity.Song{}, false, err
	}
	return s, true, nil
}

// Put stores one song in the mirror.
func (m *SongMirror) Put(ctx context.Context, s entity.Song) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return m.rdb.HSet(ctx, m.hashKey, strconv.Itoa(s.ID), raw).Err()
}

// Count returns the number of mirrored songs.
func (m *SongMirror) Count(ctx context.Context) (int64, error) {
	return m.rdb.HLen(ctx, m.hashKey).Result()
}
