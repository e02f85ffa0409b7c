// Package game provides the game registry of the TermNinja lobby.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/termninja/termninja/internal"
	"github.com/termninja/termninja/internal/model"
	"github.com/termninja/termninja/pkg/types"
	"gorm.io/gorm"
)

// PingInterval is how often a game server is expected to send a heartbeat.
const PingInterval = 2 * time.Minute

// ErrGameNotFound is returned when no game is registered under the requested slug.
var ErrGameNotFound = errors.New("game not found")

// ErrInvalidGame is returned when a registration request is rejected.
var ErrInvalidGame = errors.New("invalid game")

// GameService provides methods to manage the game servers listed in the lobby.
type GameService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db, now: time.Now}
}

// CreateOrUpdateGame registers a game server.
// The slug is derived from the server name, so a server that restarts under the same
// name updates its existing entry instead of creating a new one.
func (s *GameService) CreateOrUpdateGame(req *types.RegisterGameRequest) (*model.Game, error) {
	if err := internal.ValidateServerName(req.ServerName); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGame, err)
	}
	if err := internal.ValidatePort(req.Port); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGame, err)
	}

	slug := internal.GameSlug(req.ServerName)

	var game model.Game
	err := s.db.Where("slug = ?", slug).First(&game).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	game.Slug = slug
	game.ServerName = req.ServerName
	game.Description = req.Description
	game.Port = req.Port
	game.LastPing = s.now()
	if err := game.SetAttributes(model.GameAttributes{PlayerCount: req.PlayerCount}); err != nil {
		return nil, fmt.Errorf("failed to encode game attributes: %w", err)
	}

	if err := s.db.Save(&game).Error; err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	return &game, nil
}

// PingGame records a heartbeat for the game with the given slug.
func (s *GameService) PingGame(slug string) error {
	res := s.db.Model(&model.Game{}).Where("slug = ?", slug).Update("last_ping", s.now())
	if res.Error != nil {
		return fmt.Errorf("failed to ping game: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

// GetGame returns the game registered under slug.
func (s *GameService) GetGame(slug string) (*model.Game, error) {
	var game model.Game
	if err := s.db.Where("slug = ?", slug).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return &game, nil
}

// ListGames returns all registered games ordered by server name.
func (s *GameService) ListGames() ([]model.Game, error) {
	var games []model.Game
	if err := s.db.Order("server_name").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// DeleteGame removes a game from the lobby.
func (s *GameService) DeleteGame(slug string) error {
	res := s.db.Unscoped().Where("slug = ?", slug).Delete(&model.Game{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete game: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

// Online reports whether the game has sent a heartbeat recently enough to be listed as playable.
// One missed heartbeat is tolerated.
func Online(g *model.Game, now time.Time) bool {
	return now.Sub(g.LastPing) <= 2*PingInterval
}

// ToAPIGame converts the stored game into its API representation.
func ToAPIGame(g *model.Game, now time.Time) types.Game {
	attrs, _ := g.DecodeAttributes()
	return types.Game{
		Slug:        g.Slug,
		ServerName:  g.ServerName,
		Description: g.Description,
		Port:        g.Port,
		PlayerCount: attrs.PlayerCount,
		LastPing:    g.LastPing,
		Online:      Online(g, now),
	}
}
