package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var loginCmdPassword string

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Args:  cobra.ExactArgs(1),
	Short: "Log in to TermNinja",
	Long: "Log in with your TermNinja username and password.\n" +
		"The password is read from the --password flag, or prompted for on stdin if the flag is omitted.\n" +
		"The session token is stored in ~/" + clientConfigFileName + " and used by the other commands.",
	RunE: runLogin,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "1",
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Args:  cobra.NoArgs,
	Short: "Log out of TermNinja",
	Long:  "End the current session and remove the stored session token.",
	RunE:  runLogout,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "2",
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginCmdPassword, "password", "", "password to log in with (prompted for if omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func readPassword(cmd *cobra.Command) (string, error) {
	if loginCmdPassword != "" {
		return loginCmdPassword, nil
	}

	cmd.Print("Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	resp, err := apiClient.Login(cmd.Context(), username, password)
	if err != nil {
		return fmt.Errorf("failed to log in as %s: %w", username, err)
	}

	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}
	cfg.Username = resp.Username
	cfg.AccessToken = resp.Token
	if err := saveClientConfig(cfg); err != nil {
		return err
	}

	cmd.Printf("Logged in as %s\n", resp.Username)
	if resp.PlayToken != "" {
		cmd.Printf("Play token: %s\n", resp.PlayToken)
		if resp.PlayTokenExpiresAt != nil {
			cmd.Printf("Expires at: %s\n", resp.PlayTokenExpiresAt.Format(time.RFC1123))
		}
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	resp, logoutErr := apiClient.Logout(cmd.Context())

	// the local token is dropped even if the server could not be reached
	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}
	cfg.Username = ""
	cfg.AccessToken = ""
	if err := saveClientConfig(cfg); err != nil {
		return err
	}

	if logoutErr != nil {
		return fmt.Errorf("removed local session, but the server logout failed: %w", logoutErr)
	}
	if resp.Message != "" {
		cmd.Println(resp.Message)
	} else {
		cmd.Println("Logged out")
	}
	return nil
}
