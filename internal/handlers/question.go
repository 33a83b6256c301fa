package handlers

import (
	"fmt"
	"net/http"
	"time"

	"stackoverfaux/internal/models"
	"stackoverfaux/internal/services"
	"stackoverfaux/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	svc *services.QuestionService
}

func NewQuestionHandler(svc *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// questionDetail decorates a question with its rendered body for detail
// reads. The raw content stays untouched in the store.
type questionDetail struct {
	models.Question
	ContentHTML string `json:"contentHtml"`
}

// List - GET /questions
func (h *QuestionHandler) List(c *gin.Context) {
	limit, offset := utils.ParseLimitOffset(c.Query("limit"), c.Query("offset"))

	cacheKey := fmt.Sprintf("questions:list:%d:%d", limit, offset)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if questions, ok := cached.([]models.Question); ok {
			c.JSON(http.StatusOK, questions)
			return
		}
	}

	questions, err := h.svc.List(limit, offset)
	if err != nil {
		respondError(c, err, "Failed to fetch questions")
		return
	}

	utils.GetCache().Set(cacheKey, questions, 1*time.Minute)
	c.JSON(http.StatusOK, questions)
}

// Detail - GET /questions/:id
func (h *QuestionHandler) Detail(c *gin.Context) {
	question, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch question")
		return
	}

	c.JSON(http.StatusOK, questionDetail{
		Question:    *question,
		ContentHTML: utils.RenderMarkdown(question.Content),
	})
}

// ListByUser - GET /questions/user/:userId
func (h *QuestionHandler) ListByUser(c *gin.Context) {
	questions, err := h.svc.ListByUser(c.Param("userId"))
	if err != nil {
		respondError(c, err, "Failed to fetch user questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

type createQuestionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// Create - POST /questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	question, err := h.svc.Create(req.Title, req.Content, req.UserID)
	if err != nil {
		respondError(c, err, "Failed to create question")
		return
	}

	utils.GetCache().Purge()
	c.JSON(http.StatusCreated, question)
}

type updateQuestionRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Update - PUT /questions/:id
func (h *QuestionHandler) Update(c *gin.Context) {
	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Title == nil && req.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updates provided"})
		return
	}

	question, err := h.svc.Update(c.Param("id"), req.Title, req.Content)
	if err != nil {
		respondError(c, err, "Failed to update question")
		return
	}

	utils.GetCache().Purge()
	c.JSON(http.StatusOK, question)
}

// Delete - DELETE /questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete question")
		return
	}

	utils.GetCache().Purge()
	c.Status(http.StatusNoContent)
}

type createAnswerRequest struct {
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// AddAnswer - POST /questions/:id/answers
func (h *QuestionHandler) AddAnswer(c *gin.Context) {
	var req createAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Content == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content and userId are required"})
		return
	}

	answer, err := h.svc.AddAnswer(c.Param("id"), req.Content, req.UserID)
	if err != nil {
		respondError(c, err, "Failed to add answer")
		return
	}

	utils.GetCache().Purge()
	c.JSON(http.StatusCreated, answer)
}

// ListAnswers - GET /questions/:id/answers
func (h *QuestionHandler) ListAnswers(c *gin.Context) {
	answers, err := h.svc.AnswersForQuestion(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch answers")
		return
	}
	c.JSON(http.StatusOK, answers)
}

// ListAnswersByUser - GET /questions/user/:userId/answers
func (h *QuestionHandler) ListAnswersByUser(c *gin.Context) {
	answers, err := h.svc.AnswersByUser(c.Param("userId"))
	if err != nil {
		respondError(c, err, "Failed to fetch user answers")
		return
	}
	c.JSON(http.StatusOK, answers)
}
