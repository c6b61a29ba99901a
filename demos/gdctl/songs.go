package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(songCommand)
	rootCmd.AddCommand(artistsCommand)
	rootCmd.AddCommand(libraryCommand)
	libraryCommand.AddCommand(libraryVersionCommand)
	libraryCommand.AddCommand(librarySFXVersionCommand)

	artistsCommand.Flags().IntVarP(&pageFlag, "page", "p", 0, "Result page")
}

var songCommand = &cobra.Command{
	Use:   "song SONG_ID",
	Short: "Show custom song metadata",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		song, err := getClient().GetSongInfo(context.Background(), parseID(args[0]), nil)
		if err != nil {
			errorExit("Song lookup failed: %v\n", err)
		}
		output(song)
	},
}

var artistsCommand = &cobra.Command{
	Use:   "artists",
	Short: "List the top Newgrounds artists",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := getClient().GetTopArtists(context.Background(), pageFlag, nil)
		if err != nil {
			errorExit("Artist lookup failed: %v\n", err)
		}
		output(res)
	},
}

var libraryCommand = &cobra.Command{
	Use:   "library",
	Short: "Inspect the music and SFX libraries",
}

var libraryVersionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show the music library revision",
	Run: func(cmd *cobra.Command, args []string) {
		v, err := getClient().GetMusicLibraryVersion(context.Background())
		if err != nil {
			errorExit("Version lookup failed: %v\n", err)
		}
		fmt.Println(v)
	},
}

var librarySFXVersionCommand = &cobra.Command{
	Use:   "sfx-version",
	Short: "Show the SFX library revision",
	Run: func(cmd *cobra.Command, args []string) {
		v, err := getClient().GetSFXLibraryVersion(context.Background())
		if err != nil {
			errorExit("Version lookup failed: %v\n", err)
		}
		fmt.Println(v)
	},
}
