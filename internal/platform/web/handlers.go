package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/wildfire/internal/registry"
	"github.com/vovakirdan/wildfire/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type handler struct {
	store ScoreStore
}

type gameJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type scoreJSON struct {
	ID        int64     `json:"id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type statsJSON struct {
	GameID     string     `json:"game_id"`
	GamesCount int        `json:"games_count"`
	HighScore  int        `json:"high_score"`
	AvgScore   float64    `json:"avg_score"`
	TotalScore int64      `json:"total_score"`
	RunsCount  int        `json:"runs_count"`
	SavedCount int        `json:"saved_count"`
	LastPlayed *time.Time `json:"last_played,omitempty"`
}

type runJSON struct {
	ID            int64     `json:"id"`
	GameID        string    `json:"game_id"`
	Outcome       string    `json:"outcome"`
	SavedPercent  int       `json:"saved_percent"`
	Generations   int       `json:"generations"`
	Extinguished  int       `json:"extinguished"`
	Firebreaks    int       `json:"firebreaks"`
	Seed          int64     `json:"seed"`
	DurationTicks uint64    `json:"duration_ticks"`
	CreatedAt     time.Time `json:"created_at"`
}

// listGames handles GET /api/games
func (h *handler) listGames(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	out := make([]gameJSON, 0, len(games))
	for _, g := range games {
		out = append(out, gameJSON{ID: g.ID, Title: g.Title})
	}
	respondJSON(w, http.StatusOK, out)
}

// requireGame rejects unknown game IDs.
func (h *handler) requireGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !registry.Exists(chi.URLParam(r, "id")) {
			respondError(w, http.StatusNotFound, "unknown game")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// gameScores handles GET /api/games/{id}/scores
func (h *handler) gameScores(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.TopScores(chi.URLParam(r, "id"), parseLimit(r))
	if err != nil {
		respondInternal(w, r, err)
		return
	}
	out := make([]scoreJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, scoreJSON{ID: e.ID, Score: e.Score, CreatedAt: e.CreatedAt})
	}
	respondJSON(w, http.StatusOK, out)
}

// gameStats handles GET /api/games/{id}/stats
func (h *handler) gameStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetGameStats(chi.URLParam(r, "id"))
	if err != nil {
		respondInternal(w, r, err)
		return
	}
	out := statsJSON{
		GameID:     stats.GameID,
		GamesCount: stats.GamesCount,
		HighScore:  stats.HighScore,
		AvgScore:   stats.AvgScore,
		TotalScore: stats.TotalScore,
		RunsCount:  stats.RunsCount,
		SavedCount: stats.SavedCount,
	}
	if !stats.LastPlayed.IsZero() {
		out.LastPlayed = &stats.LastPlayed
	}
	respondJSON(w, http.StatusOK, out)
}

// gameRuns handles GET /api/games/{id}/runs
func (h *handler) gameRuns(w http.ResponseWriter, r *http.Request) {
	h.writeRuns(w, r, chi.URLParam(r, "id"))
}

// recentRuns handles GET /api/runs
func (h *handler) recentRuns(w http.ResponseWriter, r *http.Request) {
	h.writeRuns(w, r, "")
}

func (h *handler) writeRuns(w http.ResponseWriter, r *http.Request, gameID string) {
	runs, err := h.store.RecentRuns(gameID, parseLimit(r))
	if err != nil {
		respondInternal(w, r, err)
		return
	}
	out := make([]runJSON, 0, len(runs))
	for _, run := range runs {
		out = append(out, toRunJSON(run))
	}
	respondJSON(w, http.StatusOK, out)
}

func toRunJSON(r storage.RunRecord) runJSON {
	return runJSON{
		ID:            r.ID,
		GameID:        r.GameID,
		Outcome:       r.Outcome,
		SavedPercent:  r.SavedPercent,
		Generations:   r.Generations,
		Extinguished:  r.Extinguished,
		Firebreaks:    r.Firebreaks,
		Seed:          r.Seed,
		DurationTicks: r.DurationTicks,
		CreatedAt:     r.CreatedAt,
	}
}

// parseLimit reads the limit query parameter, clamped to 1..maxLimit.
func parseLimit(r *http.Request) int {
	val := r.URL.Query().Get("limit")
	if val == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultLimit
	}
	return min(max(n, 1), maxLimit)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client went away
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondInternal(w http.ResponseWriter, r *http.Request, err error) {
	if l, ok := r.Context().Value(loggerKey{}).(*log.Logger); ok {
		l.Error("request failed", "path", r.URL.Path, "error", err)
	}
	respondError(w, http.StatusInternalServerError, "internal error")
}
