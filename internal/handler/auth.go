package handler

import (
	"net/http"

	"github.com/Sumit10612/wealth-manager/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler checks the shared password and hands it back as the
// bearer token. There is no per-user identity behind this.
type AuthHandler struct {
	Password string
}

func NewAuthHandler(password string) *AuthHandler {
	return &AuthHandler{Password: password}
}

type loginReq struct {
	Password string `json:"password" binding:"required"`
}

// Login accepts the shared password and, on exact match, returns it as
// the token the client must present on every protected request.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	if req.Password != h.Password {
		util.Error(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	util.Success(c, util.Response{
		"success": true,
		"token":   h.Password,
	})
}
