// Command archiver downloads levels and stores immutable snapshots of
// them in MySQL, so rated levels survive deletion or updates.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"github.com/DiversenSato/dashtools/client"
)

type Config struct {
	DBHost string
	DBPort int
	DBUser string
	DBPass string
	DBName string

	Server string
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func loadConfig() Config {
	return Config{
		DBHost: getenv("DB_HOST", "127.0.0.1"),
		DBPort: getenvInt("DB_PORT", 3306),
		DBUser: getenv("DB_USER", "root"),
		DBPass: getenv("DB_PASSWORD", ""),
		DBName: getenv("DB_NAME", "gd_archive"),

		Server: getenv("GD_SERVER", ""),
	}
}

func (c Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName,
	)
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(8)
	db.SetConnMaxLifetime(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func main() {
	skipExisting := flag.Bool("skip-existing", false, "skip levels already archived")
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatalf("usage: archiver [-skip-existing] LEVEL_ID...")
	}

	if err := godotenv.Load(); err == nil {
		log.Printf("[env] loaded: .env")
	}
	cfg := loadConfig()

	db, err := openDB(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("ensure schema failed: %v", err)
		}
	}

	var gd *client.Client
	if cfg.Server != "" {
		gd = client.New(client.Account{}, &client.Config{Server: cfg.Server})
	} else {
		gd = client.New(client.Account{}, nil)
	}

	archived, failed := 0, 0
	for _, arg := range flag.Args() {
		id, err := strconv.Atoi(arg)
		if err != nil {
			log.Printf("[skip] not a level ID: %q", arg)
			failed++
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if *skipExisting {
			if has, err := repo.HasLevel(ctx, id); err == nil && has {
				log.Printf("[skip] %d already archived", id)
				cancel()
				continue
			}
		}
		d, err := gd.DownloadLevel(ctx, id, false, nil)
		if err != nil {
			log.Printf("[fail] download %d: %v", id, err)
			cancel()
			failed++
			continue
		}
		if !d.IsHash1Valid || !d.IsHash2Valid {
			log.Printf("[warn] %d: integrity hashes did not verify", id)
		}
		if err := repo.SaveLevel(ctx, d); err != nil {
			log.Printf("[fail] save %d: %v", id, err)
			cancel()
			failed++
			continue
		}
		cancel()
		log.Printf("[ok] archived %d (%s, %d objects)", id, d.Level.Name, d.Level.Objects)
		archived++
	}
	log.Printf("done: %d archived, %d failed", archived, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
