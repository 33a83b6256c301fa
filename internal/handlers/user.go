package handlers

import (
	"net/http"

	"stackoverfaux/internal/services"
	"stackoverfaux/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List - GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		respondError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Detail - GET /users/:id
func (h *UserHandler) Detail(c *gin.Context) {
	user, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Questions - GET /users/:id/questions
func (h *UserHandler) Questions(c *gin.Context) {
	questions, err := h.svc.QuestionsForUser(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch user questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create - POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	user, err := h.svc.Create(req.Name, req.Email)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Update - PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == nil && req.Email == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updates provided"})
		return
	}

	user, err := h.svc.Update(c.Param("id"), req.Name, req.Email)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete - DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}

	utils.GetCache().Purge()
	c.Status(http.StatusNoContent)
}
