package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/akhilvb87/community-kitchen-app/internal/constants"
	"github.com/akhilvb87/community-kitchen-app/internal/dto"
	apierrors "github.com/akhilvb87/community-kitchen-app/internal/errors"
	"github.com/akhilvb87/community-kitchen-app/internal/middleware"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/services"
)

// UserHandler coordinates user-directory HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// Get returns one user by id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Create adds a user with a name, one phone and an optional role.
func (h *UserHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Name  string      `json:"name"`
		Phone string      `json:"phone"`
		Role  models.Role `json:"role"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Create(services.CreateInput{
		Name:  req.Name,
		Phone: req.Phone,
		Role:  req.Role,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Login finds the user owning the submitted phone, registering a new member
// when the phone is unknown and a name was supplied. The user id is kept in
// the cookie session.
func (h *UserHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Phone string `json:"phone"`
		Name  string `json:"name"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.LoginOrRegister(req.Phone, req.Name)
	if err != nil {
		respondUserError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout clears the session.
func (h *UserHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the logged-in user.
func (h *UserHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// AddPhone appends an alternate phone to a user.
func (h *UserHandler) AddPhone(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	type PhoneRequest struct {
		Phone string `json:"phone"`
	}
	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" {
		apierrors.BadRequest(c, "Phone number is required")
		return
	}

	user, err := h.userService.AddPhone(id, req.Phone)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// RemovePhone drops one of a user's phones.
func (h *UserHandler) RemovePhone(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.RemovePhone(id, c.Param("phone"))
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ChangeRole updates a user's role.
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	type RoleRequest struct {
		Role models.Role `json:"role"`
	}
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" {
		apierrors.BadRequest(c, "Role is required")
		return
	}

	user, err := h.userService.ChangeRole(id, req.Role)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Delete removes a user, unless it is the super admin.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrPhoneRequired),
		errors.Is(err, services.ErrNameAndPhoneEmpty),
		errors.Is(err, services.ErrPhoneInUse),
		errors.Is(err, services.ErrTooManyPhones),
		errors.Is(err, services.ErrLastPhone),
		errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSuperAdminDelete):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
