package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/dto"
	"github.com/SscSPs/construction_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users and their roles.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/me", h.getMe)
		users.GET("/:userID", h.getUser)
		users.PUT("/:userID", h.upsertUser)
		users.DELETE("/:userID", h.deleteUser)
	}
}

// meResponse describes the caller together with the role used for authorization.
type meResponse struct {
	UserID string `json:"userID"`
	Role   string `json:"role"`
}

// getMe godoc
// @Summary Get the effective role of the caller
// @Tags users
// @Produce  json
// @Success 200 {object} handlers.meResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	role, err := h.userService.RoleOf(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to resolve role")
		return
	}
	c.JSON(http.StatusOK, meResponse{UserID: userID, Role: string(role)})
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce  json
// @Success 200 {array} domain.User
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{userID} [get]
func (h *userHandler) getUser(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// upsertUser godoc
// @Summary Create or update a user and assign its role
// @Tags users
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID (JWT subject)"
// @Param   user body dto.UpsertUserRequest true "Role assignment"
// @Success 200 {object} domain.User
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Role may not manage users"
// @Security BearerAuth
// @Router /users/{userID} [put]
func (h *userHandler) upsertUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	user, err := h.userService.UpsertUser(c.Request.Context(), c.Param("userID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to save user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// deleteUser godoc
// @Summary Delete a user
// @Tags users
// @Param   userID path string true "User ID"
// @Param   X-Deletion-Secret header string true "Shared deletion secret"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse "Wrong deletion secret"
// @Failure 403 {object} dto.ErrorResponse "Role may not delete"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{userID} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("userID"), c.GetHeader(deletionSecretHeader), userID); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}
