package api

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/termninja/termninja/internal/model"
	"github.com/termninja/termninja/internal/service/game"
	"github.com/termninja/termninja/internal/ui/jumbo"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// banner is one rendered game entry of a page.
type banner struct {
	Slug   string
	Port   int
	Online bool
	Jumbo  template.HTML
}

type pageData struct {
	Title   string
	Banners []banner
}

func (s *Server) lobbyPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		games, err := s.gameService.ListGames()
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		data := pageData{Title: "TermNinja", Banners: make([]banner, 0, len(games))}
		for i := range games {
			b, err := s.renderBanner(c, &games[i])
			if err != nil {
				c.String(http.StatusInternalServerError, err.Error())
				return
			}
			data.Banners = append(data.Banners, b)
		}
		c.HTML(http.StatusOK, "lobby", data)
	}
}

func (s *Server) gamePageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		g, err := s.gameService.GetGame(c.Param("slug"))
		if err != nil {
			if errors.Is(err, game.ErrGameNotFound) {
				c.String(http.StatusNotFound, err.Error())
				return
			}
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		b, err := s.renderBanner(c, g)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.HTML(http.StatusOK, "lobby", pageData{Title: g.ServerName, Banners: []banner{b}})
	}
}

func (s *Server) renderBanner(c *gin.Context, g *model.Game) (banner, error) {
	html, err := jumbo.New(jumbo.Props{
		ServerName:  g.ServerName,
		Description: g.Description,
	}).HTML(c.Request.Context())
	if err != nil {
		return banner{}, err
	}
	return banner{
		Slug:   g.Slug,
		Port:   g.Port,
		Online: game.Online(g, s.now()),
		Jumbo:  html,
	}, nil
}
