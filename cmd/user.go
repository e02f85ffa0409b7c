package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var roundsCmdPage int

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Args:  cobra.ExactArgs(1),
	Short: "Show a player's profile",
	RunE:  runGetUser,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "3",
	},
}

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Args:  cobra.NoArgs,
	Short: "Show the leaderboard",
	RunE:  runGetLeaders,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "4",
	},
}

var roundsCmd = &cobra.Command{
	Use:   "rounds <username>",
	Args:  cobra.ExactArgs(1),
	Short: "List the rounds played by a player",
	Long:  "List the rounds played by a player, one page at a time. Pages start at 0.",
	RunE:  runListRounds,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "5",
	},
}

var refreshTokenCmd = &cobra.Command{
	Use:   "refresh-token",
	Args:  cobra.NoArgs,
	Short: "Get a new play token",
	Long: "Request a new play token for the logged in player.\n" +
		"Game servers ask for the play token when you connect, so refresh it once it expires.",
	RunE: runRefreshPlayToken,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "6",
	},
}

func init() {
	roundsCmd.Flags().IntVar(&roundsCmdPage, "page", 0, "page of rounds to fetch")

	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(roundsCmd)
	rootCmd.AddCommand(refreshTokenCmd)
}

func runGetUser(cmd *cobra.Command, args []string) error {
	u, err := apiClient.GetUser(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get user '%s': %w", args[0], err)
	}

	cmd.Printf("Username: %s\n", u.Username)
	cmd.Printf("Score: %d\n", u.Score)
	if u.PlayTokenExpiresAt != nil {
		cmd.Printf("Play token expires at: %s\n", u.PlayTokenExpiresAt.Format(time.RFC1123))
	}
	return nil
}

func runGetLeaders(cmd *cobra.Command, args []string) error {
	leaders, err := apiClient.GetLeaders(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get leaders: %w", err)
	}

	if len(leaders) == 0 {
		cmd.Println("There are no players on the leaderboard yet")
		return nil
	}
	for i, l := range leaders {
		cmd.Printf("%d. %s (%d)\n", i+1, l.Username, l.Score)
	}
	return nil
}

func runListRounds(cmd *cobra.Command, args []string) error {
	rounds, err := apiClient.ListRounds(cmd.Context(), args[0], roundsCmdPage)
	if err != nil {
		return fmt.Errorf("failed to list rounds of '%s': %w", args[0], err)
	}

	if len(rounds) == 0 {
		cmd.Printf("No rounds found on page %d\n", roundsCmdPage)
		return nil
	}
	for _, r := range rounds {
		cmd.Printf("%s  %-20s %6d", r.PlayedAt.Format(time.DateTime), r.ServerName, r.Score)
		if r.Message != "" {
			cmd.Printf("  %s", r.Message)
		}
		cmd.Println()
	}
	return nil
}

func runRefreshPlayToken(cmd *cobra.Command, args []string) error {
	tok, err := apiClient.RefreshPlayToken(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to refresh play token: %w", err)
	}

	cmd.Printf("Play token: %s\n", tok.PlayToken)
	cmd.Printf("Expires in: %s\n", tok.ExpiresIn(time.Now()).Round(time.Second))
	return nil
}
