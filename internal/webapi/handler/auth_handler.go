package handler

import (
	"net/http"

	"mangarate/internal/config"
	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/middleware"
	"mangarate/internal/webapi/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// stateCookieName holds the OAuth state nonce between redirect and callback.
const stateCookieName = "mangarate_oauth_state"

type AuthHandler struct {
	authService service.AuthService
	oidcService *service.OIDCService
	cfg         *config.Config
}

func NewAuthHandler(authService service.AuthService, oidcService *service.OIDCService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		oidcService: oidcService,
		cfg:         cfg,
	}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.GET("/me", h.Me)
	rg.POST("/logout", h.Logout)
}

// Login starts the OAuth flow by redirecting to the provider
// GET /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.oidcService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "login is not configured"})
		return
	}

	state := uuid.New().String()
	c.SetCookie(stateCookieName, state, 600, "/", "", h.cfg.IsProduction(), true)
	c.Redirect(http.StatusFound, h.oidcService.AuthCodeURL(state))
}

// Callback finishes the OAuth flow: verifies state, exchanges the code,
// upserts the user and sets the session cookie
// GET /api/auth/callback
func (h *AuthHandler) Callback(c *gin.Context) {
	if !h.oidcService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "login is not configured"})
		return
	}

	wantState, err := c.Cookie(stateCookieName)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state mismatch"})
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", h.cfg.IsProduction(), true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	identity, err := h.oidcService.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.LoginUpsert(c.Request.Context(), *identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record login"})
		return
	}

	token, err := h.authService.IssueSession(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.SetCookie(h.cfg.CookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.IsProduction(), true)
	c.Redirect(http.StatusFound, "/")
}

// Me returns the logged-in user, or null when the caller is anonymous
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie. The JWT itself simply ages out.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
	c.JSON(http.StatusOK, dto.LogoutResponse{Success: true})
}
