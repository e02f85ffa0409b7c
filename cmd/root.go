// Package cmd implements the termninja command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/termninja/termninja/client"
	"github.com/termninja/termninja/internal/logger"
	"go.uber.org/zap"
)

type subCommandGroup string

const (
	subCommandGroupBasic    subCommandGroup = "basic"
	subCommandGroupAdvanced subCommandGroup = "advanced"
)

const (
	RegistryURLEnvVar  = "TERMNINJA_API_URL"
	RegistryURLDefault = "http://127.0.0.1:8000"

	LobbyURLEnvVar  = "TERMNINJA_LOBBY_URL"
	LobbyURLDefault = "http://127.0.0.1:8080"

	LogLevelEnvVar = "TERMNINJA_LOG_LEVEL"
)

var (
	registryURL string
	lobbyURL    string
	logLevel    string

	// apiClient talks to the TermNinja account API
	apiClient *client.Client
	// lobbyClient talks to the lobby server started by the start command
	lobbyClient *client.Client

	cliLogger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "termninja",
	Short: "Play terminal games and track your score",
	Long: "termninja is the command line companion of the TermNinja game network.\n" +
		"It lets you log in, view scores and rounds, manage your play token and run the game lobby.",
	SilenceUsage:      true,
	PersistentPreRunE: setupClients,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&registryURL,
		"registry",
		"",
		fmt.Sprintf("base URL of the TermNinja API (overrides env var %s)", RegistryURLEnvVar),
	)
	rootCmd.PersistentFlags().StringVar(
		&lobbyURL,
		"lobby",
		"",
		fmt.Sprintf("base URL of the game lobby (overrides env var %s)", LobbyURLEnvVar),
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		"",
		fmt.Sprintf("log level of the client, one of debug, info, warn, error (overrides env var %s)", LogLevelEnvVar),
	)

	rootCmd.AddGroup(
		&cobra.Group{ID: string(subCommandGroupBasic), Title: "Basic Commands:"},
		&cobra.Group{ID: string(subCommandGroupAdvanced), Title: "Advanced Commands:"},
	)
}

// Execute runs the root command.
func Execute() error {
	organizeCommands(rootCmd)
	return rootCmd.ExecuteContext(context.Background())
}

// organizeCommands places every annotated sub-command into its help group
// and re-adds them sorted by their order annotation.
func organizeCommands(root *cobra.Command) {
	cobra.EnableCommandSorting = false

	cmds := append([]*cobra.Command(nil), root.Commands()...)
	sort.SliceStable(cmds, func(i, j int) bool {
		return commandOrder(cmds[i]) < commandOrder(cmds[j])
	})

	root.RemoveCommand(cmds...)
	for _, c := range cmds {
		if g, ok := c.Annotations["group"]; ok && root.ContainsGroup(g) {
			c.GroupID = g
		}
		root.AddCommand(c)
	}
}

func commandOrder(c *cobra.Command) int {
	order, err := strconv.Atoi(c.Annotations["order"])
	if err != nil {
		return 1 << 30
	}
	return order
}

// firstNonEmpty implements the flag > env > config > default precedence used by all settings.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func setupClients(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	level := firstNonEmpty(logLevel, os.Getenv(LogLevelEnvVar), "error")
	l, err := logger.New(level)
	if err != nil {
		return err
	}
	cliLogger = l

	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}

	registry := firstNonEmpty(registryURL, os.Getenv(RegistryURLEnvVar), cfg.RegistryURL, RegistryURLDefault)
	lobby := firstNonEmpty(lobbyURL, os.Getenv(LobbyURLEnvVar), LobbyURLDefault)

	apiClient = client.NewClient(registry, cfg.AccessToken, nil, client.WithLogger(cliLogger))
	lobbyClient = client.NewClient(lobby, "", nil, client.WithLogger(cliLogger))
	return nil
}

// notifyContext returns the command context cancelled on SIGINT or SIGTERM.
func notifyContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

const asciiArt = `
 _____                    _   _ _       _       
|_   _|__ _ __ _ __ ___  | \ | (_)_ __ (_) __ _ 
  | |/ _ \ '__| '_ ' _ \ |  \| | | '_ \| |/ _' |
  | |  __/ |  | | | | | || |\  | | | | | | (_| |
  |_|\___|_|  |_| |_| |_||_| \_|_|_| |_|_|\__,_|
                                     |__/       

`
