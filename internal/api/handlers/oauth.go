package handlers

import (
	"net/http"
	"strconv"

	"recommender/internal/config"
	"recommender/internal/events"
	"recommender/internal/logger"
	"recommender/internal/models"
	"recommender/internal/repository"
	"recommender/internal/services/ecwid"

	"github.com/gin-gonic/gin"
)

type OAuthHandler struct {
	stores       *repository.StoreRepository
	oauthService *ecwid.OAuthService
	publisher    *events.Publisher
	logger       *logger.Logger
	config       *config.Config
}

func NewOAuthHandler(stores *repository.StoreRepository, publisher *events.Publisher, logger *logger.Logger, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{
		stores:       stores,
		oauthService: ecwid.NewOAuthService(cfg, logger),
		publisher:    publisher,
		logger:       logger,
		config:       cfg,
	}
}

// Install initiates the Ecwid OAuth flow
func (h *OAuthHandler) Install(c *gin.Context) {
	var request struct {
		RedirectURI string `json:"redirect_uri" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authURL, state, err := h.oauthService.GenerateAuthURL(request.RedirectURI)
	if err != nil {
		h.logger.Error("Failed to generate auth URL: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"auth_url": authURL,
		"state":    state,
		"message":  "Redirect the merchant to the auth_url to complete the OAuth flow",
	})
}

// Callback handles the OAuth callback
func (h *OAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	redirectURI := c.Query("redirect_uri")

	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	tokenResp, err := h.oauthService.ExchangeCodeForToken(code, redirectURI)
	if err != nil {
		h.logger.Error("Failed to exchange code for token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to exchange authorization code"})
		return
	}

	storeID := strconv.FormatInt(tokenResp.StoreID, 10)

	// Fetch the store profile for display data
	client := ecwid.NewClient(h.config.EcwidAPIBase, storeID, tokenResp.AccessToken, h.logger)
	storeURL := ""
	if profile, err := client.GetProfile(); err != nil {
		h.logger.Warn("Failed to fetch store profile for %s: %v", storeID, err)
	} else {
		storeURL = profile.GeneralInfo.StoreURL
	}

	store := &models.Store{
		StoreID:     storeID,
		AccessToken: tokenResp.AccessToken,
		StoreURL:    storeURL,
		Scope:       tokenResp.Scope,
	}

	if err := h.stores.Upsert(c.Request.Context(), store); err != nil {
		h.logger.Error("Failed to save store: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save store"})
		return
	}

	// Kick off the initial cache sync in the worker
	if err := h.publisher.Publish(c.Request.Context(), events.TypeStoreConnected, storeID); err != nil {
		h.logger.Error("Failed to publish store.connected for %s: %v", storeID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Store connected successfully",
		"store_id": storeID,
	})
}
