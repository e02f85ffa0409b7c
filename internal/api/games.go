package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/termninja/termninja/internal/service/game"
	"github.com/termninja/termninja/pkg/types"
	"go.uber.org/zap"
)

func (s *Server) listGamesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		games, err := s.gameService.ListGames()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		now := s.now()
		resp := make([]types.Game, len(games))
		for i := range games {
			resp[i] = game.ToAPIGame(&games[i], now)
		}
		c.JSON(http.StatusOK, resp)
	}
}

func (s *Server) registerGameHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input types.RegisterGameRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		g, err := s.gameService.CreateOrUpdateGame(&input)
		if err != nil {
			if errors.Is(err, game.ErrInvalidGame) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		s.logger.Info("game registered", zap.String("slug", g.Slug), zap.Int("port", g.Port))
		c.JSON(http.StatusCreated, game.ToAPIGame(g, s.now()))
	}
}

func (s *Server) getGameHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		g, err := s.gameService.GetGame(c.Param("slug"))
		if err != nil {
			writeGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, game.ToAPIGame(g, s.now()))
	}
}

func (s *Server) deregisterGameHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if err := s.gameService.DeleteGame(slug); err != nil {
			writeGameError(c, err)
			return
		}
		s.logger.Info("game deregistered", zap.String("slug", slug))
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) pingGameHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if err := s.gameService.PingGame(slug); err != nil {
			writeGameError(c, err)
			return
		}
		s.metrics.RecordGamePing(c.Request.Context(), slug)
		c.Status(http.StatusNoContent)
	}
}

func writeGameError(c *gin.Context, err error) {
	if errors.Is(err, game.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
