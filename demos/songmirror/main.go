// Command songmirror fetches custom song metadata and mirrors it into
// Redis, serving repeat lookups locally.
package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/DiversenSato/dashtools/client"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: songmirror SONG_ID...")
	}
	if err := godotenv.Load(); err == nil {
		log.Printf("[env] loaded: .env")
	}

	mirror, err := newSongMirror()
	if err != nil {
		log.Fatalf("redis init failed: %v", err)
	}
	defer mirror.Close()

	var gd *client.Client
	if server := os.Getenv("GD_SERVER"); server != "" {
		gd = client.New(client.Account{}, &client.Config{Server: server})
	} else {
		gd = client.New(client.Account{}, nil)
	}

	hits, fetched, failed := 0, 0, 0
	for _, arg := range os.Args[1:] {
		id, err := strconv.Atoi(arg)
		if err != nil {
			log.Printf("[skip] not a song ID: %q", arg)
			failed++
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if s, ok, err := mirror.Get(ctx, id); err == nil && ok {
			log.Printf("[hit] %d: %s - %s", id, s.ArtistName, s.Name)
			cancel()
			hits++
			continue
		}
		s, err := gd.GetSongInfo(ctx, id, nil)
		if err != nil {
			log.Printf("[fail] song %d: %v", id, err)
			cancel()
			failed++
			continue
		}
		if err := mirror.Put(ctx, s); err != nil {
			log.Printf("[fail] mirror %d: %v", id, err)
			cancel()
			failed++
			continue
		}
		cancel()
		log.Printf("[ok] mirrored %d: %s - %s", id, s.ArtistName, s.Name)
		fetched++
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if n, err := mirror.Count(ctx); err == nil {
		log.Printf("done: %d hits, %d fetched, %d failed (%d mirrored total)", hits, fetched, failed, n)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
