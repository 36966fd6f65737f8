package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-nest/internal/config"
	"github.com/jonathan/resume-nest/internal/server"
	"github.com/jonathan/resume-nest/internal/types"
)

func newAPI(t *testing.T) *Client {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20, CORSOrigins: "*"},
		Auth: config.AuthConfig{
			JWTSecret:  "client-test-secret-with-at-least-32-bytes",
			JWTIssuer:  "resume-nest",
			TokenTTL:   time.Hour,
			BcryptCost: config.MinBcryptCost,
		},
	}
	srv, err := server.New(cfg, server.Deps{Store: server.NewMemoryStore()}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return New(ts.URL+"/", ts.Client())
}

func resume(name string) types.ResumeData {
	data := types.Empty()
	data.PersonalInfo.FullName = name
	return data
}

func TestSignupAndLogin(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()

	session, err := api.Signup(ctx, "Ada Lovelace", "ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.True(t, session.Authenticated())
	assert.Equal(t, "ada@example.com", session.User().Email)

	_, err = api.Signup(ctx, "Impostor", "ada@example.com", "other-password")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsConflict())
	assert.Equal(t, "email already registered", apiErr.Message)

	_, err = api.Login(ctx, "ada@example.com", "wrong-password")
	apiErr, ok = AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, "invalid email or password", apiErr.Message)

	login, err := api.Login(ctx, "ada@example.com", "correct-horse")
	require.NoError(t, err)
	me, err := api.Me(ctx, login)
	require.NoError(t, err)
	assert.Equal(t, session.User().ID, me.ID)

	login.Logout()
	assert.False(t, login.Authenticated())
	_, err = api.Me(ctx, login)
	apiErr, ok = AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsUnauthorized())
}

// Two accounts each save a resume; each list shows only its own.
func TestResumeIsolation(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()

	alice, err := api.Signup(ctx, "Alice", "alice@example.com", "password-a")
	require.NoError(t, err)
	bob, err := api.Signup(ctx, "Bob", "bob@example.com", "password-b")
	require.NoError(t, err)

	aliceResume, err := api.SaveResume(ctx, alice, "", resume("Alice A."))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultResumeTitle, aliceResume.Title)
	_, err = api.SaveResume(ctx, bob, "Bob's CV", resume("Bob B."))
	require.NoError(t, err)

	aliceList, err := api.ListResumes(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceList, 1)
	assert.Equal(t, "Alice A.", aliceList[0].FullName)

	bobList, err := api.ListResumes(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobList, 1)
	assert.Equal(t, "Bob's CV", bobList[0].Title)

	_, err = api.GetResume(ctx, bob, aliceResume.ID)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())

	err = api.DeleteResume(ctx, bob, aliceResume.ID)
	apiErr, ok = AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())

	updated, err := api.UpdateResume(ctx, alice, aliceResume.ID, "Renamed", resume("Alice A."))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	got, err := api.GetResume(ctx, alice, aliceResume.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	require.NoError(t, api.DeleteResume(ctx, alice, aliceResume.ID))
	aliceList, err = api.ListResumes(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, aliceList)
}

func TestRenderAndExport(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()

	page, err := api.Render(ctx, types.TemplateCreative, resume("Ada"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Ada")

	session, err := api.Signup(ctx, "Ada", "ada@example.com", "correct-horse")
	require.NoError(t, err)
	saved, err := api.SaveResume(ctx, session, "t", resume("Ada"))
	require.NoError(t, err)
	page, err = api.RenderResume(ctx, session, saved.ID, types.TemplateMinimal)
	require.NoError(t, err)
	assert.Contains(t, string(page), "ADA")

	_, err = api.RenderResume(ctx, session, uuid.New(), types.TemplateMinimal)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())

	_, err = api.Export(ctx, types.TemplateMinimal, resume("Ada"))
	apiErr, ok = AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
}

func TestTransform_ReturnsOriginalOnError(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()

	out, err := api.Transform(ctx, NewSession("", nil), "keep me", types.ActionFixSpelling, "")
	require.Error(t, err)
	assert.Equal(t, "keep me", out)

	session, err := api.Signup(ctx, "Ada", "ada@example.com", "correct-horse")
	require.NoError(t, err)

	// No provider is configured on this server, so the text comes back unchanged.
	out, err = api.Transform(ctx, session, "teh text", types.ActionFixSpelling, "")
	require.NoError(t, err)
	assert.Equal(t, "teh text", out)
}

func TestInFlightActionsAreCollapsed(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"`+uuid.NewString()+`","title":"saved","data":{}}`)
	}))
	defer ts.Close()

	api := New(ts.URL, ts.Client())
	session := NewSession("token", nil)

	var wg sync.WaitGroup
	results := make([]*types.Resume, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := api.SaveResume(context.Background(), session, "t", types.Empty())
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	// Give the other callers time to join the in-flight request.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, results[0].ID, r.ID)
	}
}

func TestInFlightActionsWithDifferentBodiesAreNotCollapsed(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req types.TransformRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		<-release
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.TransformResponse{Text: strings.ToUpper(req.Text)})
	}))
	defer ts.Close()

	api := New(ts.URL, ts.Client())
	session := NewSession("token", nil)

	inputs := []string{"first bullet", "second bullet"}
	results := make([]string, len(inputs))
	var wg sync.WaitGroup
	for i, text := range inputs {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			out, err := api.Transform(context.Background(), session, text, types.ActionFixSpelling, "")
			assert.NoError(t, err)
			results[i] = out
		}(i, text)
	}

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, []string{"FIRST BULLET", "SECOND BULLET"}, results)
}

func TestFlightKey(t *testing.T) {
	a := flightKey("token", "save", types.SaveResumeRequest{Title: "a"})
	assert.Equal(t, a, flightKey("token", "save", types.SaveResumeRequest{Title: "a"}))
	assert.NotEqual(t, a, flightKey("token", "save", types.SaveResumeRequest{Title: "b"}))
	assert.NotEqual(t, a, flightKey("other", "save", types.SaveResumeRequest{Title: "a"}))
	assert.NotEqual(t, a, flightKey("token", "update:x", types.SaveResumeRequest{Title: "a"}))
}

func TestDecodeAPIError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "json error", status: 404, body: `{"error":"resume not found"}`, want: "resume not found"},
		{name: "error and message", status: 409, body: `{"error":"email already registered","message":"email already registered"}`, want: "email already registered"},
		{name: "rate limit", status: 429, body: `{"error":"rate_limit_exceeded","message":"Rate limit exceeded. Please try again later."}`, want: "Rate limit exceeded. Please try again later."},
		{name: "plain text", status: 502, body: "bad gateway\n", want: "bad gateway"},
		{name: "empty", status: 500, body: "", want: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decodeAPIError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.status, err.Status)
			assert.Equal(t, tt.want, err.Message)
		})
	}
}
