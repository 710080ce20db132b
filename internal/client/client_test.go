package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/charon/internal/config"
	"github.com/jask/charon/internal/models"
)

// fakeServer is an in-memory control server on a gin router.
type fakeServer struct {
	mu      sync.Mutex
	tasks   []models.TaskRequest
	configs map[string]models.GhostConfigUpdate
	killed  []string
}

func newFakeServer(t *testing.T, configSubpath string) (*fakeServer, *Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs := &fakeServer{configs: map[string]models.GhostConfigUpdate{}}
	r := gin.New()
	api := r.Group("/api/v1/charon")
	api.GET("/ghosts", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Ghost{
			{ID: "g1", Hostname: "web-01", OS: "linux", LastSeen: 1700000000},
			{ID: "g2", Hostname: "db-01", OS: "freebsd", LastSeen: 1700000100},
		})
	})
	api.GET("/ghosts/:id/tasks", func(c *gin.Context) {
		if c.Param("id") == "missing" {
			c.String(http.StatusNotFound, "no such ghost")
			return
		}
		out := "uid=0(root)"
		c.JSON(http.StatusOK, []gin.H{
			{"id": "t1", "command": "EXEC", "args": "id", "status": "success", "result": out},
			{"id": "t2", "command": "EXEC", "args": "ls", "status": "queued_for_later", "result": nil},
		})
	})
	api.POST("/ghosts/:id/task", func(c *gin.Context) {
		var req models.TaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		fs.tasks = append(fs.tasks, req)
		fs.mu.Unlock()
		c.Status(http.StatusCreated)
	})
	updateConfig := func(c *gin.Context) {
		var cfg models.GhostConfigUpdate
		if err := c.ShouldBindJSON(&cfg); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		fs.configs[c.Param("id")] = cfg
		fs.mu.Unlock()
		c.Status(http.StatusOK)
	}
	if configSubpath == "" {
		api.POST("/ghosts/:id", updateConfig)
	} else {
		api.POST("/ghosts/:id/"+configSubpath, updateConfig)
	}
	api.POST("/ghosts/:id/kill", func(c *gin.Context) {
		fs.mu.Lock()
		fs.killed = append(fs.killed, c.Param("id"))
		fs.mu.Unlock()
		c.Status(http.StatusAccepted)
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	cl := New(config.APIConfig{
		URL:           ts.URL,
		Path:          "/api/v1/charon",
		ConfigSubpath: configSubpath,
		Timeout:       2 * time.Second,
	}, nil, zerolog.Nop())
	return fs, cl
}

func TestFetchGhosts(t *testing.T) {
	_, cl := newFakeServer(t, "")

	ghosts, err := cl.FetchGhosts(context.Background())
	require.NoError(t, err)
	require.Len(t, ghosts, 2)
	require.Equal(t, "web-01", ghosts[0].Hostname)
	require.EqualValues(t, 1700000100, ghosts[1].LastSeen)
}

func TestFetchTasksDecodesUnknownStatus(t *testing.T) {
	_, cl := newFakeServer(t, "")

	tasks, err := cl.FetchTasks(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, models.TaskSuccess, tasks[0].Status)
	require.NotNil(t, tasks[0].Result)
	require.Equal(t, "uid=0(root)", *tasks[0].Result)
	require.Equal(t, models.TaskUnknown, tasks[1].Status)
	require.Nil(t, tasks[1].Result)
}

func TestFetchTasksStatusError(t *testing.T) {
	_, cl := newFakeServer(t, "")

	_, err := cl.FetchTasks(context.Background(), "missing")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusNotFound, se.Code)
	require.Contains(t, err.Error(), "404")
	require.Contains(t, err.Error(), "no such ghost")
}

func TestSendTask(t *testing.T) {
	fs, cl := newFakeServer(t, "")

	msg, err := cl.SendTask(context.Background(), "g1", models.TaskRequest{Command: "EXEC", Args: "whoami"})
	require.NoError(t, err)
	require.Equal(t, MsgTaskQueued, msg)
	require.Equal(t, []models.TaskRequest{{Command: "EXEC", Args: "whoami"}}, fs.tasks)
}

func TestUpdateConfig(t *testing.T) {
	for _, sub := range []string{"", "config"} {
		t.Run("subpath="+sub, func(t *testing.T) {
			fs, cl := newFakeServer(t, sub)

			msg, err := cl.UpdateConfig(context.Background(), "g2", models.GhostConfigUpdate{SleepInterval: 30, JitterPercent: 10})
			require.NoError(t, err)
			require.Equal(t, MsgConfigUpdated, msg)
			require.Equal(t, models.GhostConfigUpdate{SleepInterval: 30, JitterPercent: 10}, fs.configs["g2"])
		})
	}
}

func TestKillGhost(t *testing.T) {
	fs, cl := newFakeServer(t, "")

	msg, err := cl.KillGhost(context.Background(), "g1")
	require.NoError(t, err)
	require.Equal(t, MsgKillSent, msg)
	require.Equal(t, []string{"g1"}, fs.killed)
}

func TestDecodeError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ghosts", func(c *gin.Context) { c.String(http.StatusOK, "<html>not json</html>") })
	ts := httptest.NewServer(r)
	defer ts.Close()

	cl := New(config.APIConfig{URL: ts.URL}, nil, zerolog.Nop())
	_, err := cl.FetchGhosts(context.Background())
	require.ErrorIs(t, err, ErrDecode)
}

func TestConnectionError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.URL
	ts.Close()

	cl := New(config.APIConfig{URL: addr, Path: "/api"}, nil, zerolog.Nop())
	_, err := cl.FetchGhosts(context.Background())
	require.ErrorIs(t, err, ErrConnection)
	require.False(t, errors.Is(err, ErrDecode))
}

func TestContextCancel(t *testing.T) {
	_, cl := newFakeServer(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cl.KillGhost(ctx, "g1")
	require.ErrorIs(t, err, ErrConnection)
}

func TestGhostIDIsEscaped(t *testing.T) {
	require.Equal(t, "/ghosts/a%2Fb/kill", ghostPath("a/b", "kill"))
	require.Equal(t, "/ghosts/g1", ghostPath("g1"))
}
