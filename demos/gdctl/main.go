package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/DiversenSato/dashtools/client"
)

var (
	serverFlag   string
	accountFlag  int
	playerFlag   int
	passwordFlag string
	usernameFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gdctl",
	Short: "Query and act on a Geometry Dash server from the terminal",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "Server base URL (default is the official server)")
	rootCmd.PersistentFlags().IntVar(&accountFlag, "account-id", 0, "Account ID for authenticated actions")
	rootCmd.PersistentFlags().IntVar(&playerFlag, "player-id", 0, "Player ID for authenticated actions")
	rootCmd.PersistentFlags().StringVar(&passwordFlag, "password", "", "Account password (or GD_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&usernameFlag, "username", "", "Account username")
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Printf("[env] loaded: .env")
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func errorExit(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	os.Exit(1)
}

func envInt(key string) int {
	n, _ := strconv.Atoi(os.Getenv(key))
	return n
}

// getClient builds a client from flags, falling back to GD_* env vars
// so credentials can live in a .env file.
func getClient() *client.Client {
	accountID := accountFlag
	if accountID == 0 {
		accountID = envInt("GD_ACCOUNT_ID")
	}
	playerID := playerFlag
	if playerID == 0 {
		playerID = envInt("GD_PLAYER_ID")
	}
	password := passwordFlag
	if password == "" {
		password = os.Getenv("GD_PASSWORD")
	}
	username := usernameFlag
	if username == "" {
		username = os.Getenv("GD_USERNAME")
	}
	server := serverFlag
	if server == "" {
		server = os.Getenv("GD_SERVER")
	}

	account := client.NewAccount(playerID, accountID, password, username)
	var cfg *client.Config
	if server != "" {
		cfg = &client.Config{Server: server}
	}
	return client.New(account, cfg)
}

func output(v interface{}) {
	b, err := prettyjson.Marshal(v)
	if err != nil {
		errorExit("Unable to format output: %v\n", err)
	}
	fmt.Println(string(b))
}

func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		errorExit("Not a numeric ID: %q\n", arg)
	}
	return id
}
