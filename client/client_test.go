package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termninja/termninja/pkg/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordedCall struct {
	method string
	path   string
	body   any
	ctx    context.Context
}

// fakeTransport records every call and answers with a canned JSON payload.
type fakeTransport struct {
	mu       sync.Mutex
	calls    []recordedCall
	response string
	err      error
}

func (f *fakeTransport) record(ctx context.Context, method, path string, body, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{method: method, path: path, body: body, ctx: ctx})
	f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	if out != nil && f.response != "" {
		return json.Unmarshal([]byte(f.response), out)
	}
	return nil
}

func (f *fakeTransport) Get(ctx context.Context, path string, out any) error {
	return f.record(ctx, "GET", path, nil, out)
}

func (f *fakeTransport) Post(ctx context.Context, path string, body, out any) error {
	return f.record(ctx, "POST", path, body, out)
}

func (f *fakeTransport) only(t *testing.T) recordedCall {
	t.Helper()
	require.Len(t, f.calls, 1, "expected exactly one transport call")
	return f.calls[0]
}

type ctxKey struct{}

func TestOperationsBuildPaths(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		response string
		call     func(c *Client, ctx context.Context) error
		method   string
		path     string
	}{
		{
			name:     "login",
			response: `{"username":"bob"}`,
			call: func(c *Client, ctx context.Context) error {
				_, err := c.Login(ctx, "bob", "secret")
				return err
			},
			method: "POST",
			path:   "/auth",
		},
		{
			name:     "logout",
			response: `{"message":"bye"}`,
			call: func(c *Client, ctx context.Context) error {
				_, err := c.Logout(ctx)
				return err
			},
			method: "GET",
			path:   "/auth/logout",
		},
		{
			name:     "get user",
			response: `{"username":"alice"}`,
			call: func(c *Client, ctx context.Context) error {
				_, err := c.GetUser(ctx, "alice")
				return err
			},
			method: "GET",
			path:   "/user/alice",
		},
		{
			name:     "get leaders",
			response: `[]`,
			call: func(c *Client, ctx context.Context) error {
				_, err := c.GetLeaders(ctx)
				return err
			},
			method: "GET",
			path:   "/user",
		},
		{
			name:     "list rounds default page",
			response: `[]`,
			call: func(c *Client, ctx context.Context) error {
				_, err := c.ListRounds(ctx, "alice")
				return err
			},
			method: "GET",
			path:   "/user/alice/rounds?page=0",
		},
		{
			name:     "list rounds explicit page",
			response: `[]`,
			call: func(c *Client, ctx context.Context) error {
				_, err := c.ListRounds(ctx, "alice", 2)
				return err
			},
			method: "GET",
			path:   "/user/alice/rounds?page=2",
		},
		{
			name:     "list rounds negative page is passed through",
			response: `[]`,
			call: func(c *Client, ctx context.Context) error {
				_, err := c.ListRounds(ctx, "alice", -1)
				return err
			},
			method: "GET",
			path:   "/user/alice/rounds?page=-1",
		},
		{
			name:     "refresh play token",
			response: `{"play_token":"t","play_token_expires_at":"2024-05-01T12:00:00Z"}`,
			call: func(c *Client, ctx context.Context) error {
				_, err := c.RefreshPlayToken(ctx)
				return err
			},
			method: "POST",
			path:   "/user/refresh_play_token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ft := &fakeTransport{response: tc.response}
			c := New(ft)

			ctx := context.WithValue(context.Background(), ctxKey{}, tc.name)
			require.NoError(t, tc.call(c, ctx))

			call := ft.only(t)
			assert.Equal(t, tc.method, call.method)
			assert.Equal(t, tc.path, call.path)
			assert.Equal(t, tc.name, call.ctx.Value(ctxKey{}), "context must reach the transport unchanged")
		})
	}
}

func TestLoginBody(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{response: `{"username":"bob","token":"abc"}`}
	c := New(ft)

	resp, err := c.Login(context.Background(), "bob", "secret")
	require.NoError(t, err)
	assert.Equal(t, "bob", resp.Username)
	assert.Equal(t, "abc", resp.Token)

	call := ft.only(t)
	body, err := json.Marshal(call.body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"bob","password":"secret"}`, string(body))
}

func TestRefreshPlayTokenSendsNoBody(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{response: `{"play_token":"t","play_token_expires_at":"2024-05-01T12:00:00Z"}`}
	c := New(ft)

	tok, err := c.RefreshPlayToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t", tok.PlayToken)
	assert.Nil(t, ft.only(t).body)
}

func TestGetUserForwardsContext(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{response: `{"username":"alice"}`}
	c := New(ft)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := c.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, ctx, ft.only(t).ctx)
}

func TestUsernamesArePathEscaped(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		username string
		expected string
	}{
		{"alice", "/user/alice"},
		{"test_user", "/user/test_user"},
		{"user123", "/user/user123"},
		{"a b", "/user/a%20b"},
		{"../admin", "/user/..%2Fadmin"},
		{"x?page=9", "/user/x%3Fpage=9"},
	}

	for _, tc := range testCases {
		t.Run(tc.username, func(t *testing.T) {
			ft := &fakeTransport{response: `{}`}
			_, err := New(ft).GetUser(context.Background(), tc.username)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ft.only(t).path)
		})
	}
}

func TestTransportErrorsAreReturnedUnchanged(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("connection reset")
	apiErr := &APIError{StatusCode: 404, Message: "User not found"}

	for _, transportErr := range []error{sentinel, apiErr} {
		ft := &fakeTransport{err: transportErr}
		c := New(ft)
		ctx := context.Background()

		_, err := c.Login(ctx, "bob", "secret")
		assert.Same(t, transportErr, err)
		_, err = c.Logout(ctx)
		assert.Same(t, transportErr, err)
		user, err := c.GetUser(ctx, "bob")
		assert.Same(t, transportErr, err)
		assert.Nil(t, user)
		leaders, err := c.GetLeaders(ctx)
		assert.Same(t, transportErr, err)
		assert.Nil(t, leaders)
		rounds, err := c.ListRounds(ctx, "bob")
		assert.Same(t, transportErr, err)
		assert.Nil(t, rounds)
		_, err = c.RefreshPlayToken(ctx)
		assert.Same(t, transportErr, err)

		// one transport call per operation, no retries
		assert.Len(t, ft.calls, 6)
	}
}

type recordingMetrics struct {
	mu    sync.Mutex
	ops   []string
	fails int
}

func (m *recordingMetrics) RecordAPICall(_ context.Context, op string, err error, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, op)
	if err != nil {
		m.fails++
	}
}

func TestMetricsAndLogging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	metrics := &recordingMetrics{}
	ft := &fakeTransport{response: `[]`}
	c := New(ft, WithLogger(zap.New(core)), WithMetrics(metrics))

	_, err := c.GetLeaders(context.Background())
	require.NoError(t, err)
	_, err = c.ListRounds(context.Background(), "alice", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"get_leaders", "list_rounds"}, metrics.ops)
	assert.Equal(t, 0, metrics.fails)

	entries := logs.FilterMessage("api call").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "/user/alice/rounds?page=1", entries[1].ContextMap()["path"])
}

func TestNilOptionsKeepDefaults(t *testing.T) {
	t.Parallel()

	c := New(&fakeTransport{response: `[]`}, WithLogger(nil), WithMetrics(nil))
	assert.NotNil(t, c.logger)
	assert.NotNil(t, c.metrics)

	_, err := c.GetLeaders(context.Background())
	assert.NoError(t, err)
}

func TestLeadersDecoded(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{response: `[{"username":"alice","score":30},{"username":"bob","score":12}]`}
	leaders, err := New(ft).GetLeaders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []types.Leader{{Username: "alice", Score: 30}, {Username: "bob", Score: 12}}, leaders)
}
