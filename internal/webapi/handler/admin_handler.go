package handler

import (
	"errors"
	"net/http"

	"mangarate/internal/config"
	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/service"

	"github.com/gin-gonic/gin"
)

// gateCookieName carries the admin-panel gate session token. Separate from
// the login session cookie so closing the gate never logs the user out.
const gateCookieName = "mangarate_admin_gate"

type AdminHandler struct {
	gateService service.AdminGateService
	cfg         *config.Config
}

func NewAdminHandler(gateService service.AdminGateService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{gateService: gateService, cfg: cfg}
}

// RegisterRoutes registers admin-panel gate routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.GET("/session", h.Session)
	rg.POST("/logout", h.Logout)
}

// Login checks the gate password and opens a gate session
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminGateLoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.gateService.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrGateRejected) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open admin session"})
		return
	}

	c.SetCookie(gateCookieName, token, int(h.cfg.AdminGateTTL.Seconds()), "/", "", h.cfg.IsProduction(), true)
	c.JSON(http.StatusOK, dto.AdminGateSessionResponse{Active: true})
}

// Session reports whether the caller's gate session is still open
// GET /api/admin/session
func (h *AdminHandler) Session(c *gin.Context) {
	token, _ := c.Cookie(gateCookieName)

	active, err := h.gateService.Active(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check admin session"})
		return
	}

	c.JSON(http.StatusOK, dto.AdminGateSessionResponse{Active: active})
}

// Logout closes the gate session and clears its cookie
// POST /api/admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(gateCookieName)

	if err := h.gateService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to close admin session"})
		return
	}

	c.SetCookie(gateCookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
	c.JSON(http.StatusOK, dto.AdminGateSessionResponse{Active: false})
}
