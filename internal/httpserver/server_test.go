package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/advent-server/inputs"
	"github.com/robalobadob/advent-server/internal/store"
)

// newTestServer spins up the full router against an in-memory SQLite DB
// with the real schema applied.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile("../../sql/0001_init.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	srv := New(store.NewMemoryStore(), db)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar}, db
}

// postJSON posts v as JSON and decodes the response body into out (if non-nil).
func postJSON(t *testing.T, c *http.Client, url string, v any, out any) *http.Response {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	res, err := c.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res
}

func getJSON(t *testing.T, c *http.Client, url string, out any) *http.Response {
	t.Helper()
	res, err := c.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res
}

func TestHealth(t *testing.T) {
	ts, c, _ := newTestServer(t)

	var body map[string]bool
	res := getJSON(t, c, ts.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, body["ok"])
}

func TestListPuzzles(t *testing.T) {
	ts, c, _ := newTestServer(t)

	var catalog []struct {
		Day  int    `json:"day"`
		Part int    `json:"part"`
		Name string `json:"name"`
	}
	res := getJSON(t, c, ts.URL+"/puzzles", &catalog)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, catalog, 12)
	assert.Equal(t, "giant squid bingo", catalog[6].Name)
}

func TestExample(t *testing.T) {
	ts, c, _ := newTestServer(t)

	var body struct {
		Day   int    `json:"day"`
		Input string `json:"input"`
	}
	res := getJSON(t, c, ts.URL+"/puzzles/4/example", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 4, body.Day)
	assert.Contains(t, body.Input, "7,4,9,5,11,17,23")

	res = getJSON(t, c, ts.URL+"/puzzles/9/example", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSolveBingo(t *testing.T) {
	ts, c, db := newTestServer(t)

	input, err := inputs.Example(4)
	require.NoError(t, err)

	var res solveRes
	r := postJSON(t, c, ts.URL+"/puzzles/4/1", solveReq{Input: input}, &res)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "4512", res.Answer)

	r = postJSON(t, c, ts.URL+"/puzzles/4/2", solveReq{Input: input}, &res)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "1924", res.Answer)

	// Both solves were recorded for the anon cookie owner.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM solves WHERE anonymous_id IS NOT NULL`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestSolveByInputID(t *testing.T) {
	ts, c, _ := newTestServer(t)

	input, err := inputs.Example(6)
	require.NoError(t, err)

	var up submitInputRes
	r := postJSON(t, c, ts.URL+"/inputs", submitInputReq{Input: input}, &up)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	require.NotEmpty(t, up.InputID)

	var res solveRes
	r = postJSON(t, c, ts.URL+"/puzzles/6/2", solveReq{InputID: up.InputID}, &res)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "26984457539", res.Answer)
}

func TestSolveErrors(t *testing.T) {
	ts, c, _ := newTestServer(t)

	// Unknown puzzle.
	r := postJSON(t, c, ts.URL+"/puzzles/4/3", solveReq{Input: "whatever"}, nil)
	assert.Equal(t, http.StatusNotFound, r.StatusCode)

	// Missing input.
	r = postJSON(t, c, ts.URL+"/puzzles/4/1", solveReq{}, nil)
	assert.Equal(t, http.StatusBadRequest, r.StatusCode)

	// Unknown input ID.
	r = postJSON(t, c, ts.URL+"/puzzles/4/1", solveReq{InputID: "nope"}, nil)
	assert.Equal(t, http.StatusNotFound, r.StatusCode)

	// Unparsable input surfaces the solver error.
	r = postJSON(t, c, ts.URL+"/puzzles/4/1", solveReq{Input: "7,x,9"}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, r.StatusCode)
}

func TestAuthFlow(t *testing.T) {
	ts, c, _ := newTestServer(t)

	// Gated route without a token.
	r := getJSON(t, c, ts.URL+"/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, r.StatusCode)

	// Signup sets the auth cookie on the jar.
	var signup map[string]any
	r = postJSON(t, c, ts.URL+"/auth/signup", signupReq{Username: "squid", Password: "deepwater21"}, &signup)
	require.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "squid", signup["username"])

	var me authUser
	r = getJSON(t, c, ts.URL+"/auth/me", &me)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "squid", me.Username)

	// A solve as the signed-in user bumps the counter.
	input, err := inputs.Example(1)
	require.NoError(t, err)
	r = postJSON(t, c, ts.URL+"/puzzles/1/1", solveReq{Input: input}, nil)
	require.Equal(t, http.StatusOK, r.StatusCode)

	var stats struct {
		Solves int `json:"solves"`
	}
	r = getJSON(t, c, ts.URL+"/stats/me", &stats)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, 1, stats.Solves)

	var mine []struct {
		Day    int    `json:"day"`
		Part   int    `json:"part"`
		Answer string `json:"answer"`
	}
	r = getJSON(t, c, ts.URL+"/solves/mine", &mine)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	require.Len(t, mine, 1)
	assert.Equal(t, "7", mine[0].Answer)

	// Bad credentials.
	r = postJSON(t, c, ts.URL+"/auth/login", loginReq{Username: "squid", Password: "wrongwrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, r.StatusCode)
}

func TestDailyChallenge(t *testing.T) {
	ts, c, _ := newTestServer(t)

	var featured featuredRes
	r := getJSON(t, c, ts.URL+"/daily", &featured)
	require.Equal(t, http.StatusOK, r.StatusCode)
	assert.NotEmpty(t, featured.Date)

	input, err := inputs.Example(featured.Day)
	require.NoError(t, err)

	var solve dailySolveRes
	r = postJSON(t, c, ts.URL+"/daily/solve", solveReq{Input: input}, &solve)
	require.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, featured.Day, solve.Day)
	assert.NotEmpty(t, solve.Answer)
	assert.True(t, solve.Recorded)

	// A second solve still answers but is not recorded again.
	r = postJSON(t, c, ts.URL+"/daily/solve", solveReq{Input: input}, &solve)
	require.Equal(t, http.StatusOK, r.StatusCode)
	assert.False(t, solve.Recorded)

	var lb lbRes
	r = getJSON(t, c, ts.URL+"/daily/leaderboard", &lb)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, featured.Date, lb.Date)
	require.Len(t, lb.Top, 1)
}
