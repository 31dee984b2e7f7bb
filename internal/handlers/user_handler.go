package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mirado/doctors-portal-api/internal/middleware"
	"github.com/mirado/doctors-portal-api/internal/models"
	"github.com/mirado/doctors-portal-api/internal/utils"
)

// PutUser resolves the two PUT surfaces sharing the /user prefix. gin's
// route tree cannot hold the static /user/admin segment next to the :email
// parameter, so the split happens here: /user/admin/:email goes through the
// auth guard to the admin grant, anything else is the plain upsert.
func (h *Handler) PutUser(authGuard gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		rest := strings.TrimPrefix(c.Param("rest"), "/")
		if target, ok := strings.CutPrefix(rest, "admin/"); ok {
			c.Params = append(c.Params, gin.Param{Key: "email", Value: target})
			authGuard(c)
			if c.IsAborted() {
				return
			}
			h.GrantAdmin(c)
			return
		}
		c.Params = append(c.Params, gin.Param{Key: "email", Value: rest})
		h.UpsertUser(c)
	}
}

// ListUsers returns every user document. Token required.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.Users(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}

	c.JSON(http.StatusOK, users)
}

// UpsertUser writes the user document keyed by the email path parameter and
// mints a fresh one-hour token for that email. There is no credential check
// here; this endpoint is the portal's only token mint.
func (h *Handler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Store.UpsertUser(c.Request.Context(), email, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	token, err := utils.GenerateToken(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "token": token})
}

// CheckAdmin reports whether the user holds the admin role. A lookup on an
// unknown email fails the request, matching the portal's historical behavior
// rather than defaulting to admin:false.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	user, err := h.Store.UserByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// GrantAdmin elevates the target email to admin, provided the requester's
// stored role is already admin. The target is not upserted: granting to an
// unknown email matches zero documents and the counts say so.
func (h *Handler) GrantAdmin(c *gin.Context) {
	email := c.Param("email")
	requester := c.GetString(middleware.EmailKey)
	ctx := c.Request.Context()

	account, err := h.Store.UserByEmail(ctx, requester)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up requester"})
		return
	}
	if !account.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	result, err := h.Store.GrantAdmin(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user role"})
		return
	}

	c.JSON(http.StatusOK, result)
}
