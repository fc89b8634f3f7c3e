package handler

import (
	"context"
	"math"
	"net/http"

	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/event"
	"github.com/osse101/MartianPotato_Go/internal/logger"
)

// Game is the slice of the game the HTTP API drives
type Game interface {
	State() domain.GameState
	Explore(ctx context.Context) (domain.ExploreResult, error)
	Plant(ctx context.Context) (domain.PlantResult, error)
	Purchase(ctx context.Context, index int) (domain.PurchaseResult, error)
	AvailableUpgrades() []domain.UpgradeOffer
	Upgrades() []domain.Upgrade
	SetExplorationRate(ctx context.Context, rate float64) error
	Settings() domain.Settings
	UpdateSettings(ctx context.Context, s domain.Settings) domain.Settings
	Save(ctx context.Context, source string) error
}

// PurchaseRequest buys the upgrade at Index
type PurchaseRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

// RateRequest sets the autonomous exploration rate
type RateRequest struct {
	Rate *float64 `json:"rate" validate:"required,min=0"`
}

// SettingsRequest replaces the player preferences
type SettingsRequest struct {
	SoundMuted *bool `json:"sound_muted" validate:"required"`
	AdsOptIn   *bool `json:"ads_opt_in" validate:"required"`
}

// ActionResponse wraps a policy outcome with the seconds left on a refused action
type ActionResponse struct {
	Result      interface{} `json:"result"`
	WaitSeconds int64       `json:"wait_seconds,omitempty"`
}

// UpgradesResponse lists offered upgrades and the full catalogue
type UpgradesResponse struct {
	Available []domain.UpgradeOffer `json:"available"`
	All       []domain.Upgrade      `json:"all"`
}

// GameHandler serves the game API
type GameHandler struct {
	game Game
}

// NewGameHandler creates a new game handler
func NewGameHandler(game Game) *GameHandler {
	return &GameHandler{game: game}
}

// State returns the full game state
func (h *GameHandler) State(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.State())
}

// Explore runs one manual exploration
func (h *GameHandler) Explore(w http.ResponseWriter, r *http.Request) {
	res, err := h.game.Explore(r.Context())
	if err != nil {
		respondServiceError(w, r, "Explore", err)
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgExplore, "allowed", res.Allowed)
	respondJSON(w, http.StatusOK, ActionResponse{Result: res, WaitSeconds: ceilSeconds(res.Remaining.Seconds())})
}

// Plant runs one manual planting
func (h *GameHandler) Plant(w http.ResponseWriter, r *http.Request) {
	res, err := h.game.Plant(r.Context())
	if err != nil {
		respondServiceError(w, r, "Plant", err)
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgPlant, "allowed", res.Allowed, "planted", res.Planted)
	respondJSON(w, http.StatusOK, ActionResponse{Result: res, WaitSeconds: ceilSeconds(res.Remaining.Seconds())})
}

// Upgrades lists the upgrades
func (h *GameHandler) Upgrades(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, UpgradesResponse{
		Available: h.game.AvailableUpgrades(),
		All:       h.game.Upgrades(),
	})
}

// Purchase buys an upgrade. An unaffordable upgrade is a normal 200 with purchased=false.
func (h *GameHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
		return
	}

	res, err := h.game.Purchase(r.Context(), *req.Index)
	if err != nil {
		respondServiceError(w, r, "Purchase", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgPurchase,
		"index", *req.Index, "purchased", res.Purchased, "price", res.Price)
	respondJSON(w, http.StatusOK, res)
}

// SetRate changes the autonomous exploration rate
func (h *GameHandler) SetRate(w http.ResponseWriter, r *http.Request) {
	var req RateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set rate"); err != nil {
		return
	}

	if err := h.game.SetExplorationRate(r.Context(), *req.Rate); err != nil {
		respondServiceError(w, r, "Set rate", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgRateSet, "rate", *req.Rate)
	respondJSON(w, http.StatusOK, h.game.State().Exploration)
}

// GetSettings returns the player preferences
func (h *GameHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.Settings())
}

// UpdateSettings replaces the player preferences
func (h *GameHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update settings"); err != nil {
		return
	}

	updated := h.game.UpdateSettings(r.Context(), domain.Settings{
		SoundMuted: *req.SoundMuted,
		AdsOptIn:   *req.AdsOptIn,
	})
	respondJSON(w, http.StatusOK, updated)
}

// Save writes a snapshot now
func (h *GameHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.game.Save(r.Context(), event.SaveSourceManual); err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgSaveFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameSaved})
}

func ceilSeconds(s float64) int64 {
	if s <= 0 {
		return 0
	}
	return int64(math.Ceil(s))
}
