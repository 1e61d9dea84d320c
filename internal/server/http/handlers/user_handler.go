package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userservice/internal/domain/model"
	"github.com/polkiloo/userservice/internal/server/http/dto"
)

// UserHandler manages user CRUD endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /users with optional ?role= filter.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context(), model.Role(c.Query("role")))
	if err != nil {
		writeError(c, 0, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModels(users))
}

// Important handles GET /users/important.
func (h *UserHandler) Important(c *gin.Context) {
	users, err := h.facade.ImportantUsers(c.Request.Context())
	if err != nil {
		writeError(c, 0, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModels(users))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	user, err := h.facade.User(c.Request.Context(), id)
	if err != nil {
		writeError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModel(*user))
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, bindError(err))
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), req.ToModel())
	if err != nil {
		writeError(c, req.ID, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModel(*user))
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, bindError(err))
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), id, req.ToModel())
	if err != nil {
		writeError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModel(*user))
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "User deleted successfully", UserID: id})
}
