package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/micromart/internal/domain/errors"
	"github.com/polkiloo/micromart/internal/domain/model"
	"github.com/polkiloo/micromart/internal/server/http/dto"
)

// UserHandler manages directory endpoints.
type UserHandler struct {
	facade DirectoryFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade DirectoryFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		return
	}
	user, err := h.facade.User(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}

// List handles GET /users with an optional active filter.
func (h *UserHandler) List(c *gin.Context) {
	var active *bool
	if raw, ok := c.GetQuery("active"); ok {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid active filter"})
			return
		}
		active = &parsed
	}

	users, err := h.facade.Users(c.Request.Context(), active)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user payload"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	user, err := h.facade.CreateUser(c.Request.Context(), req.Name, req.Email, active)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(*user))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		return
	}
	user, err := h.facade.DeleteUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteUserResponse{Message: "User deleted", User: toUserResponse(*user)})
}

func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Active: u.Active}
}
