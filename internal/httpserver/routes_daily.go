// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily challenge.
// Exposes three endpoints under /daily:
//   - GET  /daily             → today's featured puzzle (deterministic per date)
//   - POST /daily/solve       → solve today's featured puzzle with your own input
//   - GET  /daily/leaderboard → fastest solvers for today (or a given date)
//
// Each user can record one result per day (enforced by DB unique index).
// Featured puzzle selection is based on date + salt.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/advent-server/internal/daily"
	"github.com/robalobadob/advent-server/internal/puzzle"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv   *Server
	store *daily.Store
	salt  string
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:   s,
		store: daily.NewStore(s.db),
		salt:  getEnv("DAILY_SALT", "local_dev_salt"),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", dd.handleFeatured)
		r.Post("/solve", dd.handleSolve)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// featuredNow returns today's date key and featured puzzle.
func (d *dailyServer) featuredNow() (string, puzzle.Puzzle) {
	now := time.Now().UTC()
	catalog := puzzle.All()
	idx := daily.FeaturedIndex(now, d.salt, len(catalog))
	return daily.DateKey(now), catalog[idx]
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// GET /daily

// featuredRes describes today's featured puzzle.
type featuredRes struct {
	Date string `json:"date"`
	Day  int    `json:"day"`
	Part int    `json:"part"`
	Name string `json:"name"`
}

func (d *dailyServer) handleFeatured(w http.ResponseWriter, r *http.Request) {
	date, p := d.featuredNow()
	_ = json.NewEncoder(w).Encode(featuredRes{Date: date, Day: p.Day, Part: p.Part, Name: p.Name})
}

// -----------------------------------------------------------------------------
// POST /daily/solve

// dailySolveRes is the response payload for /daily/solve.
type dailySolveRes struct {
	Date      string `json:"date"`
	Day       int    `json:"day"`
	Part      int    `json:"part"`
	Answer    string `json:"answer"`
	ElapsedMs int    `json:"elapsedMs"`
	Recorded  bool   `json:"recorded"` // false when the user already played today
}

// handleSolve runs today's featured puzzle against the caller's input and
// records the elapsed time on the leaderboard, once per user per day.
func (d *dailyServer) handleSolve(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	input := req.Input
	if input == "" && req.InputID != "" {
		sub, err := d.srv.store.Get(r.Context(), req.InputID)
		if err != nil {
			http.Error(w, `{"error":"input_not_found"}`, http.StatusNotFound)
			return
		}
		input = sub.Input
	}
	if input == "" {
		http.Error(w, `{"error":"empty_input"}`, http.StatusBadRequest)
		return
	}

	date, p := d.featuredNow()

	played, err := d.store.AlreadyPlayed(r.Context(), uid, date)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}

	started := time.Now()
	answer, err := p.Solve(input)
	if err != nil {
		http.Error(w, `{"error":"unsolvable_input"}`, http.StatusUnprocessableEntity)
		return
	}
	elapsed := int(time.Since(started).Milliseconds())

	if !played {
		if err := d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: date, Day: p.Day, Part: p.Part, ElapsedMs: elapsed,
		}); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("insert daily result")
		}
	}

	_ = json.NewEncoder(w).Encode(dailySolveRes{
		Date: date, Day: p.Day, Part: p.Part, Answer: answer, ElapsedMs: elapsed, Recorded: !played,
	})
}

// -----------------------------------------------------------------------------
// GET /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _ = d.featuredNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
