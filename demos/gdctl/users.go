package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DiversenSato/dashtools/client"
)

var leaderboardTypeFlag string

func init() {
	rootCmd.AddCommand(userCommand)
	rootCmd.AddCommand(usersCommand)
	rootCmd.AddCommand(leaderboardCommand)
	rootCmd.AddCommand(loginCommand)

	leaderboardCommand.Flags().StringVarP(&leaderboardTypeFlag, "type", "t", "top", "Leaderboard type: top, relative, friends or creators")
}

var userCommand = &cobra.Command{
	Use:   "user ACCOUNT_ID",
	Short: "Show a player profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u, err := getClient().GetUser(context.Background(), parseID(args[0]), false, nil)
		if err != nil {
			errorExit("Profile lookup failed: %v\n", err)
		}
		output(u)
	},
}

var usersCommand = &cobra.Command{
	Use:   "users QUERY",
	Short: "Search players by name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := getClient().SearchUsers(context.Background(), args[0], nil)
		if err != nil {
			errorExit("User search failed: %v\n", err)
		}
		output(res)
	},
}

var leaderboardCommand = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show a global leaderboard",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := getClient().GetLeaderboard(context.Background(), client.LeaderboardType(leaderboardTypeFlag), nil)
		if err != nil {
			errorExit("Leaderboard lookup failed: %v\n", err)
		}
		output(res)
	},
}

var loginCommand = &cobra.Command{
	Use:   "login USERNAME PASSWORD",
	Short: "Validate credentials and print the account and player IDs",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := getClient().Login(context.Background(), args[0], args[1], nil)
		if err != nil {
			errorExit("Login failed: %v\n", err)
		}
		output(session)
	},
}
