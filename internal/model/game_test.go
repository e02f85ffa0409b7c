package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameAttributesRoundTrip(t *testing.T) {
	g := &Game{Slug: "snake", ServerName: "Snake", Port: 3000}

	attrs, err := g.DecodeAttributes()
	require.NoError(t, err)
	assert.Equal(t, 0, attrs.PlayerCount)

	require.NoError(t, g.SetAttributes(GameAttributes{PlayerCount: 2}))
	assert.JSONEq(t, `{"player_count":2}`, string(g.Attributes))

	attrs, err = g.DecodeAttributes()
	require.NoError(t, err)
	assert.Equal(t, 2, attrs.PlayerCount)
}

func TestGameAttributesInvalidJSON(t *testing.T) {
	g := &Game{Attributes: []byte("{not json")}
	_, err := g.DecodeAttributes()
	assert.Error(t, err)
}
