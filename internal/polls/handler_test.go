package polls

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/event-booster/backend/internal/realtime"
	"github.com/event-booster/backend/internal/session"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := session.NewEngine()
	hub := realtime.NewHub(zap.NewNop())
	h := NewHandler(engine, hub, "test")

	router := gin.New()
	router.POST("/session/polls", h.Create)
	router.POST("/polls/:id/response", h.Respond)
	router.POST("/polls/:id/close", h.Close)
	router.GET("/polls/:id/results", h.Results)
	return router, engine
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndVoteOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/session/polls",
		`{"question":"Pick one","options":["A","B"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	w = doJSON(t, router, http.MethodPost, "/polls/"+created.Data.ID+"/response",
		`{"user":"alice","option":"A"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"accepted":true`)

	w = doJSON(t, router, http.MethodGet, "/polls/"+created.Data.ID+"/results", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total_responses":1`)
}

func TestCreatePollTooFewOptionsOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/session/polls",
		`{"question":"Pick one","options":["A"]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoteClosedPollOverHTTP(t *testing.T) {
	router, engine := newTestRouter(t)
	id, err := engine.CreatePoll("Pick one", []string{"A", "B"}, "multiple_choice")
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/polls/"+id+"/close", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/polls/"+id+"/response",
		`{"user":"alice","option":"A"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"accepted":false`)
}

func TestResultsUnknownPollOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/polls/poll_missing/results", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
