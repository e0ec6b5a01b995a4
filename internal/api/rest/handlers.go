package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/service"
	"github.com/fortuna/gridiron/internal/store"
)

// pbpDefaultLimit is the page size when the client sends none.
const pbpDefaultLimit = 100

// Handler contains dependencies for HTTP handlers
type Handler struct {
	cache            *cache.Cache
	gameService      *service.GameService
	teamService      *service.TeamService
	playerService    *service.PlayerService
	statsService     *service.StatsService
	inventoryService *service.InventoryService

	currentSeason int
	environment   string
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, c *cache.Cache, currentSeason int, environment string) *Handler {
	return &Handler{
		cache:            c,
		gameService:      service.NewGameService(db),
		teamService:      service.NewTeamService(db),
		playerService:    service.NewPlayerService(db),
		statsService:     service.NewStatsService(db),
		inventoryService: service.NewInventoryService(db),
		currentSeason:    currentSeason,
		environment:      environment,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"service":     serviceName,
		"version":     serviceVersion,
		"environment": h.environment,
	})
}

// GetTeams returns all teams.
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	h.respondCached(w, r, "teams", cache.TeamsKey(), cache.TTLTeams, func(ctx context.Context) (interface{}, error) {
		return h.teamService.Teams(ctx)
	})
}

// GetTeamStats returns the stats row for a team+season, latest week when the
// week filter is omitted. No stats row renders an empty object, not an error.
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]

	season, err := h.querySeason(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	week, err := queryIntPtr(r, "week")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	key := cache.Key("team_stats", team, season, week)
	h.respondCached(w, r, "team_stats", key, cache.TTLTeamStats, func(ctx context.Context) (interface{}, error) {
		stats, err := h.teamService.TeamStats(ctx, team, season, week)
		if errors.Is(err, store.ErrNotFound) {
			return map[string]interface{}{}, nil
		}
		if err != nil {
			return nil, err
		}
		return stats, nil
	})
}

// GetTeamProfile returns team info composed with stats, power rating and
// schedule. An unknown team is 404.
func (h *Handler) GetTeamProfile(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]

	season, err := h.querySeason(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	key := cache.Key("team", team, "profile", season)
	h.respondCached(w, r, "team_profile", key, cache.TTLTeamStats, func(ctx context.Context) (interface{}, error) {
		return h.teamService.Profile(ctx, team, season)
	})
}

// GetSchedules returns games for a season with optional week/team filters.
func (h *Handler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	season, err := h.querySeason(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	week, err := queryIntPtr(r, "week")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	team := r.URL.Query().Get("team")

	key := cache.Key("schedules", season, week, optionalStr(team))
	h.respondCached(w, r, "schedules", key, cache.TTLSchedules, func(ctx context.Context) (interface{}, error) {
		return h.gameService.Schedules(ctx, season, week, team)
	})
}

// GetGame returns the schedule row plus a bounded play-by-play sample.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameID"]

	key := cache.Key("game", gameID)
	h.respondCached(w, r, "game", key, cache.TTLGameDetail, func(ctx context.Context) (interface{}, error) {
		return h.gameService.Game(ctx, gameID)
	})
}

// GetScoreboard returns all games on a date.
func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		respondError(w, http.StatusBadRequest, "date is required (YYYY-MM-DD)", nil)
		return
	}

	key := cache.Key("scoreboard", date)
	h.respondCached(w, r, "scoreboard", key, cache.TTLScoreboard, func(ctx context.Context) (interface{}, error) {
		return h.gameService.Scoreboard(ctx, date)
	})
}

// GetPBP returns one page of play-by-play for a game.
func (h *Handler) GetPBP(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")

	limit, err := queryIntDefault(r, "limit", pbpDefaultLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	offset, err := queryIntDefault(r, "offset", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	key := cache.Key("pbp", gameID, limit, offset)
	h.respondCached(w, r, "pbp", key, cache.TTLPlayByPlay, func(ctx context.Context) (interface{}, error) {
		return h.gameService.PlayByPlay(ctx, gameID, limit, offset)
	})
}

// GetPlayer returns a single player profile.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]

	key := cache.Key("player", playerID)
	h.respondCached(w, r, "player", key, cache.TTLPlayerProfile, func(ctx context.Context) (interface{}, error) {
		return h.playerService.Player(ctx, playerID)
	})
}

// GetPlayerStats returns player season stats with optional filters.
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	season, err := h.querySeason(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	team := r.URL.Query().Get("team")
	position := r.URL.Query().Get("position")

	key := cache.Key("player_stats", season, optionalStr(team), optionalStr(position))
	h.respondCached(w, r, "player_stats", key, cache.TTLPlayerStats, func(ctx context.Context) (interface{}, error) {
		return h.playerService.PlayerStats(ctx, season, team, position)
	})
}

// GetPowerRatings returns a season's ELO ratings ordered by rank.
func (h *Handler) GetPowerRatings(w http.ResponseWriter, r *http.Request) {
	season, err := h.querySeason(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	key := cache.Key("power_ratings", season)
	h.respondCached(w, r, "power_ratings", key, cache.TTLPowerRatings, func(ctx context.Context) (interface{}, error) {
		return h.statsService.PowerRatings(ctx, season)
	})
}

// GetInjuries returns injury reports with optional week/team filters.
func (h *Handler) GetInjuries(w http.ResponseWriter, r *http.Request) {
	season, err := h.querySeason(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	week, err := queryIntPtr(r, "week")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	team := r.URL.Query().Get("team")

	key := cache.Key("injuries", season, week, optionalStr(team))
	h.respondCached(w, r, "injuries", key, cache.TTLInjuries, func(ctx context.Context) (interface{}, error) {
		return h.statsService.Injuries(ctx, season, week, team)
	})
}

// GetDepthCharts returns depth chart entries for a team.
func (h *Handler) GetDepthCharts(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")

	season, err := h.querySeason(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	week, err := queryIntPtr(r, "week")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	key := cache.Key("depth_charts", team, season, week)
	h.respondCached(w, r, "depth_charts", key, cache.TTLDepthCharts, func(ctx context.Context) (interface{}, error) {
		return h.statsService.DepthCharts(ctx, team, season, week)
	})
}

// GetInventory returns the data availability document.
func (h *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	h.respondCached(w, r, "inventory", cache.InventoryKey(), cache.TTLInventory, func(ctx context.Context) (interface{}, error) {
		return h.inventoryService.Inventory(ctx)
	})
}

// respondCached implements the cache-aside read path: serve the cached body
// when present, otherwise fetch, respond and populate the cache. Cache
// failures are treated as misses; a fetch error is never cached.
func (h *Handler) respondCached(w http.ResponseWriter, r *http.Request, resource, key string, ttl time.Duration, fetch func(context.Context) (interface{}, error)) {
	if body, ok := h.cache.Get(r.Context(), key); ok {
		cacheHits.WithLabelValues(resource).Inc()
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
		return
	}
	cacheMisses.WithLabelValues(resource).Inc()

	data, err := fetch(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to encode response", err)
		return
	}

	h.cache.Set(r.Context(), key, string(body), ttl)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// respondServiceError maps service-layer errors onto HTTP status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case service.IsValidation(err):
		respondError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found", nil)
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error", err)
	}
}

func (h *Handler) querySeason(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("season")
	if raw == "" {
		return h.currentSeason, nil
	}

	season, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid season %q", raw)
	}
	return season, nil
}

// optionalStr maps an empty query parameter to the absent-filter marker so
// cache keys distinguish "not filtered" from a literal empty value.
func optionalStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func queryIntPtr(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &n, nil
}

func queryIntDefault(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
