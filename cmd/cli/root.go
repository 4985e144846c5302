package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "madiao",
	Short: "Super Madiao, a bluffing card game",
	Long: `Super Madiao is a bluffing card game for 2-4 players.

Each turn a player puts one to four cards face down on the pile and
declares a rank for them. Any declaration may be a lie. The next player
either plays on top or challenges: a caught bluffer picks up the whole
pile, a wrong accuser picks it up instead. First empty hand wins.`,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a hot-seat game in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: ignoring config: %v\n", err)
		}

		names, err := cmd.Flags().GetStringSlice("players")
		if err != nil {
			return err
		}
		if len(names) == 0 {
			names = cfg.Players
		}
		if len(names) == 0 {
			names = []string{"Player 1", "Player 2"}
		}

		if cfg.NoColor {
			color.NoColor = true
		}

		return runHotSeat(names)
	},
}

func init() {
	playCmd.Flags().StringSliceP("players", "p", nil, "player names, in seat order (2-4)")
	rootCmd.AddCommand(playCmd)
}
