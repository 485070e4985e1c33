package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/smartscrabble/internal/api"
	"github.com/mcoot/smartscrabble/internal/api/middleware"
	"github.com/mcoot/smartscrabble/internal/api/response"
	"github.com/mcoot/smartscrabble/internal/factory"
	"github.com/mcoot/smartscrabble/internal/model"
)

const e2eToken = "e2e-token"

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	tokenFile   string
	projectRoot string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "smartscrabble-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/smartscrabble")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		tokenFile:   tokenFile,
		projectRoot: projectRoot,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Dir = r.projectRoot
	cmd.Env = append(os.Environ(),
		"SMARTSCRABBLE_DICTIONARY_PATH="+filepath.Join(r.projectRoot, "data/words.txt"),
	)
	// Logs go to stderr, so only keep them when the command fails
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.String() + stderr.String(), err
	}
	return stdout.String(), nil
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	return r.run(append([]string{"--token", token}, args...)...)
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application; the word list is loaded here
	projectRoot := findProjectRoot(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(context.Background(), factory.Config{
		DictionaryPath: filepath.Join(projectRoot, "data/words.txt"),
		Logger:         logger,
	})
	require.NoError(t, err)

	tokenHash, err := middleware.HashToken(e2eToken)
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		APITokenHash:      tokenHash,
		DictionaryService: app.DictionaryService,
		BoardService:      app.BoardService,
		BotService:        app.BotService,
		GameController:    app.GameController,
		TournamentService: app.TournamentService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

func parseJSON[T any](t *testing.T, output string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(output), &v), "output: %s", output)
	return v
}

func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	t.Run("health", func(t *testing.T) {
		output, err := cli.run("health")
		require.NoError(t, err, output)

		resp := parseJSON[response.Health](t, output)
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("dictionary", func(t *testing.T) {
		output, err := cli.run("dictionary")
		require.NoError(t, err, output)

		resp := parseJSON[response.Dictionary](t, output)
		assert.True(t, resp.Loaded)
		assert.Positive(t, resp.Words)
		assert.Equal(t, 7, resp.MaxWordLength)
	})

	t.Run("move on an empty board", func(t *testing.T) {
		output, err := cli.run("move", "retains")
		require.NoError(t, err, output)

		resp := parseJSON[response.Move](t, output)
		assert.Equal(t, model.BotStrategySmart, resp.Strategy)
		assert.Equal(t, string(model.ActionPlaceWord), resp.Action.Type)
		assert.Len(t, resp.Action.Word, 7)
		assert.Positive(t, resp.Score)
	})

	t.Run("move with a board file", func(t *testing.T) {
		rows := make([]string, 15)
		for i := range rows {
			rows[i] = strings.Repeat(".", 15)
		}
		rows[7] = "......CAT......"
		boardFile := filepath.Join(t.TempDir(), "board.txt")
		require.NoError(t, os.WriteFile(boardFile, []byte(strings.Join(rows, "\n")+"\n"), 0600))

		output, err := cli.run("move", "--strategy", "longest", "--board", boardFile, "SQQQQQQ")
		require.NoError(t, err, output)

		resp := parseJSON[response.Move](t, output)
		assert.Equal(t, model.BotStrategyLongest, resp.Strategy)
		assert.NotEqual(t, string(model.ActionExchangeAll), resp.Action.Type)
	})

	t.Run("move rejects a bad rack", func(t *testing.T) {
		output, err := cli.run("move", "AB1")
		require.Error(t, err)
		assert.Contains(t, output, "INVALID_RACK")
	})

	t.Run("game play needs the token", func(t *testing.T) {
		output, err := cli.run("game", "play")
		require.Error(t, err)
		assert.Contains(t, output, "UNAUTHORIZED")
	})

	var gameID string
	t.Run("game play", func(t *testing.T) {
		output, err := cli.runWithToken(e2eToken, "game", "play", "--first", "smart", "--second", "random")
		require.NoError(t, err, output)

		resp := parseJSON[response.Game](t, output)
		assert.Equal(t, string(model.GameStateComplete), resp.State)
		assert.NotEmpty(t, resp.Turns)
		gameID = resp.ID
	})

	t.Run("game get", func(t *testing.T) {
		require.NotEmpty(t, gameID)

		output, err := cli.run("game", "get", gameID)
		require.NoError(t, err, output)

		resp := parseJSON[response.Game](t, output)
		assert.Equal(t, gameID, resp.ID)
		assert.Equal(t, string(model.GameStateComplete), resp.State)
	})

	t.Run("game step and turn", func(t *testing.T) {
		// The saved token file is used when no --token is given
		output, err := cli.run("token", "save", e2eToken)
		require.NoError(t, err, output)

		output, err = cli.run("game", "play", "--step")
		require.NoError(t, err, output)
		game := parseJSON[response.Game](t, output)
		assert.Equal(t, string(model.GameStateInProgress), game.State)

		output, err = cli.run("game", "turn", game.ID)
		require.NoError(t, err, output)
		result := parseJSON[response.TurnResult](t, output)
		assert.Equal(t, 0, result.Turn.Seat)
		assert.Len(t, result.Game.Turns, 1)
	})

	t.Run("game get unknown", func(t *testing.T) {
		output, err := cli.run("game", "get", "NOSUCHGAME")
		require.Error(t, err)
		assert.Contains(t, output, "GAME_NOT_FOUND")
	})

	t.Run("game delete", func(t *testing.T) {
		require.NotEmpty(t, gameID)

		output, err := cli.run("game", "delete", gameID)
		require.NoError(t, err, output)

		output, err = cli.run("game", "get", gameID)
		require.Error(t, err)
		assert.Contains(t, output, "GAME_NOT_FOUND")
	})

	var tournamentID string
	t.Run("tournament run", func(t *testing.T) {
		output, err := cli.runWithToken(e2eToken, "tournament", "run", "-e", "smart", "-e", "longest", "--rounds", "1")
		require.NoError(t, err, output)

		resp := parseJSON[response.Tournament](t, output)
		assert.Len(t, resp.Results, 2)
		require.Len(t, resp.Standings, 2)
		assert.InDelta(t, 2.0, resp.Standings[0].Points+resp.Standings[1].Points, 1e-9)
		tournamentID = resp.ID
	})

	t.Run("tournament get", func(t *testing.T) {
		require.NotEmpty(t, tournamentID)

		output, err := cli.run("tournament", "get", tournamentID)
		require.NoError(t, err, output)

		resp := parseJSON[response.Tournament](t, output)
		assert.Equal(t, tournamentID, resp.ID)
	})

	t.Run("tournament run local", func(t *testing.T) {
		output, err := cli.run("tournament", "run", "--local", "-e", "longest", "-e", "random")
		require.NoError(t, err, output)

		resp := parseJSON[response.Tournament](t, output)
		assert.Len(t, resp.Results, 2)
		assert.Equal(t, []string{model.BotStrategyLongest, model.BotStrategyRandom}, resp.Entrants)
	})

	t.Run("token hash", func(t *testing.T) {
		output, err := cli.run("token", "hash", "secret")
		require.NoError(t, err, output)

		resp := parseJSON[map[string]string](t, output)
		assert.True(t, strings.HasPrefix(resp["message"], "$2"))
	})
}
