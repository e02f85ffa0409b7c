package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/termninja/termninja/internal/service/game"
	"github.com/termninja/termninja/pkg/types"
)

var (
	announceCmdPort        int
	announceCmdDescription string
	announceCmdPlayers     int
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Args:  cobra.NoArgs,
	Short: "List the games available in the lobby",
	RunE:  runListGames,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "7",
	},
}

var announceCmd = &cobra.Command{
	Use:   "announce <server name>",
	Args:  cobra.ExactArgs(1),
	Short: "Register a game server with the lobby and keep it listed",
	Long: "Register a game server with the lobby and send a heartbeat every " + game.PingInterval.String() + ".\n" +
		"Run this next to your game server. The game disappears from the lobby's online list " +
		"once this command stops.",
	RunE: runAnnounceGame,
	Annotations: map[string]string{
		"group": string(subCommandGroupAdvanced),
		"order": "9",
	},
}

func init() {
	announceCmd.Flags().IntVar(&announceCmdPort, "port", 0, "TCP port players connect to")
	announceCmd.Flags().StringVar(&announceCmdDescription, "description", "", "short description shown in the lobby")
	announceCmd.Flags().IntVar(&announceCmdPlayers, "players", 0, "number of players per round")
	_ = announceCmd.MarkFlagRequired("port")

	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(announceCmd)
}

func runListGames(cmd *cobra.Command, args []string) error {
	games, err := lobbyClient.ListGames(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list games: %w", err)
	}

	if len(games) == 0 {
		cmd.Println("There are no games in the lobby")
		return nil
	}
	for i, g := range games {
		status := "online"
		if !g.Online {
			status = "offline"
		}
		cmd.Printf("%d. %s [%s] port %d (%s)\n", i+1, g.ServerName, g.Slug, g.Port, status)
		if g.Description != "" {
			cmd.Printf("   %s\n", g.Description)
		}
	}
	return nil
}

func runAnnounceGame(cmd *cobra.Command, args []string) error {
	req := &types.RegisterGameRequest{
		ServerName:  args[0],
		Description: announceCmdDescription,
		Port:        announceCmdPort,
		PlayerCount: announceCmdPlayers,
	}
	cmd.Printf("Announcing %s on port %d, press Ctrl+C to stop\n", req.ServerName, req.Port)

	ctx, stop := notifyContext(cmd)
	defer stop()
	return game.Announce(ctx, lobbyClient, req, game.PingInterval, cliLogger)
}
