package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swim-schedule-manager/pkg/response"
)

// Login godoc
// @Summary     Start Microsoft sign-in
// @Description Redirects the browser to the Microsoft consent page.
// @Tags        Auth
// @Success     302
// @Router      /auth/login [GET]
func (h *handler) Login(c *gin.Context) {
	c.Redirect(http.StatusFound, h.store.AuthURL())
}

// Callback godoc
// @Summary     Complete Microsoft sign-in
// @Description Exchanges the authorization code for a token and returns to the app.
// @Tags        Auth
// @Success     302
// @Failure     400 {object} response.Detail "Missing code or state mismatch"
// @Router      /auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if errParam := c.Query("error"); errParam != "" {
		h.l.Warnf(ctx, "Callback: consent denied: %s", c.Query("error_description"))
		c.Redirect(http.StatusFound, "/")
		return
	}

	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "missing authorization code")
		return
	}

	if err := h.store.Exchange(ctx, c.Query("state"), code); err != nil {
		h.l.Errorf(ctx, "Callback: exchange failed: %v", err)
		response.BadRequest(c, "sign-in failed, please try again")
		return
	}

	h.l.Infof(ctx, "Callback: sign-in completed")
	c.Redirect(http.StatusFound, "/")
}

// Logout godoc
// @Summary     Sign out
// @Description Discards the stored token and returns to the app.
// @Tags        Auth
// @Success     302
// @Router      /auth/logout [GET]
func (h *handler) Logout(c *gin.Context) {
	h.store.Logout()
	c.Redirect(http.StatusFound, "/")
}

// Status godoc
// @Summary     Sign-in status
// @Tags        Auth
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/auth/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, statusResp{SignedIn: h.store.SignedIn()})
}

type statusResp struct {
	SignedIn bool `json:"signedIn"`
}
