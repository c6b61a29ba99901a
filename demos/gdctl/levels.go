package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DiversenSato/dashtools/client"
)

var (
	pageFlag      int
	ratedFlag     bool
	demonFlag     int
	incrementFlag bool
)

func init() {
	rootCmd.AddCommand(levelsCommand)
	levelsCommand.AddCommand(levelsSearchCommand)
	levelsCommand.AddCommand(levelsDownloadCommand)
	levelsCommand.AddCommand(levelsDailyCommand)
	levelsCommand.AddCommand(levelsWeeklyCommand)
	rootCmd.AddCommand(mapPacksCommand)
	rootCmd.AddCommand(gauntletsCommand)

	levelsSearchCommand.Flags().IntVarP(&pageFlag, "page", "p", 0, "Result page")
	levelsSearchCommand.Flags().BoolVar(&ratedFlag, "rated", false, "Only rated levels")
	levelsSearchCommand.Flags().IntVar(&demonFlag, "demon", 0, "Demon tier filter (6-10)")
	levelsDownloadCommand.Flags().BoolVar(&incrementFlag, "increment", false, "Count the download (needs an account)")
	mapPacksCommand.Flags().IntVarP(&pageFlag, "page", "p", 0, "Result page")
}

var levelsCommand = &cobra.Command{
	Use:   "levels",
	Short: "Search and download levels",
}

var levelsSearchCommand = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search levels by name or ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		search := client.LevelSearch{
			Query: args[0],
			Page:  pageFlag,
			Rated: ratedFlag,
		}
		if demonFlag != 0 {
			search.Difficulties = []int{demonFlag}
		}
		res, err := getClient().GetLevels(context.Background(), search, nil)
		if err != nil {
			errorExit("Search failed: %v\n", err)
		}
		if !res.IsHashValid {
			errorExit("Server response failed integrity check\n")
		}
		output(res)
	},
}

var levelsDownloadCommand = &cobra.Command{
	Use:   "download LEVEL_ID",
	Short: "Download a level, including its game data",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := getClient().DownloadLevel(context.Background(), parseID(args[0]), incrementFlag, nil)
		if err != nil {
			errorExit("Download failed: %v\n", err)
		}
		output(res)
	},
}

var levelsDailyCommand = &cobra.Command{
	Use:   "daily",
	Short: "Show the current daily level rotation",
	Run: func(cmd *cobra.Command, args []string) {
		info, err := getClient().GetDailyLevel(context.Background(), nil)
		if err != nil {
			errorExit("Daily lookup failed: %v\n", err)
		}
		output(info)
	},
}

var levelsWeeklyCommand = &cobra.Command{
	Use:   "weekly",
	Short: "Show the current weekly demon rotation",
	Run: func(cmd *cobra.Command, args []string) {
		info, err := getClient().GetWeeklyLevel(context.Background(), nil)
		if err != nil {
			errorExit("Weekly lookup failed: %v\n", err)
		}
		output(info)
	},
}

var mapPacksCommand = &cobra.Command{
	Use:   "mappacks",
	Short: "List map packs",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := getClient().GetMapPacks(context.Background(), pageFlag, nil)
		if err != nil {
			errorExit("Map pack lookup failed: %v\n", err)
		}
		output(res)
	},
}

var gauntletsCommand = &cobra.Command{
	Use:   "gauntlets",
	Short: "List gauntlets",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := getClient().GetGauntlets(context.Background(), nil)
		if err != nil {
			errorExit("Gauntlet lookup failed: %v\n", err)
		}
		output(res)
	},
}
