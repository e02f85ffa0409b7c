package game

import (
	"context"
	"fmt"
	"time"

	"github.com/termninja/termninja/pkg/types"
	"go.uber.org/zap"
)

// Pinger sends heartbeats for a game to the lobby.
type Pinger interface {
	PingGame(ctx context.Context, slug string) error
}

// Registrar registers a game with the lobby and keeps it alive.
type Registrar interface {
	Pinger
	RegisterGame(ctx context.Context, req *types.RegisterGameRequest) (*types.Game, error)
}

// Heartbeat pings the lobby immediately and then once per interval until ctx is done.
// A failed ping is logged and retried on the next tick.
func Heartbeat(ctx context.Context, p Pinger, slug string, interval time.Duration, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = PingInterval
	}

	ping := func() {
		if err := p.PingGame(ctx, slug); err != nil && ctx.Err() == nil {
			log.Warn("game heartbeat failed", zap.String("slug", slug), zap.Error(err))
		}
	}

	ping()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ping()
		}
	}
}

// Announce registers the game and then runs its heartbeat until ctx is done.
// It only returns early if the registration itself fails.
func Announce(ctx context.Context, r Registrar, req *types.RegisterGameRequest, interval time.Duration, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	game, err := r.RegisterGame(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to register game %q: %w", req.ServerName, err)
	}
	log.Info("game registered", zap.String("slug", game.Slug), zap.Int("port", game.Port))

	Heartbeat(ctx, r, game.Slug, interval, log)
	return nil
}
