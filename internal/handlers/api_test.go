package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stackoverfaux/internal/db"
	"stackoverfaux/internal/handlers"
	"stackoverfaux/internal/middleware"
	"stackoverfaux/internal/models"
	"stackoverfaux/internal/router"
	"stackoverfaux/internal/services"
	"stackoverfaux/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	// The list cache is process-wide; drop anything earlier tests left.
	utils.GetCache().Purge()

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	questionHandler := handlers.NewQuestionHandler(services.NewQuestionService(gdb))
	userHandler := handlers.NewUserHandler(services.NewUserService(gdb))
	router.RegisterRoutes(r, questionHandler, userHandler)
	return r, gdb
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestUserLifecycle(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{"name": "Ada", "email": "ada@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.User
	decode(t, w, &created)
	assert.NotEmpty(t, created.ID)

	// Duplicate email
	w = doJSON(t, r, http.MethodPost, "/users", gin.H{"name": "X", "email": "ada@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Bad email
	w = doJSON(t, r, http.MethodPost, "/users", gin.H{"name": "X", "email": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing fields
	w = doJSON(t, r, http.MethodPost, "/users", gin.H{"name": "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "user not found", body["error"])

	w = doJSON(t, r, http.MethodPut, "/users/"+created.ID, gin.H{"name": "Ada L"})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.User
	decode(t, w, &updated)
	assert.Equal(t, "Ada L", updated.Name)

	w = doJSON(t, r, http.MethodPut, "/users/"+created.ID, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/users/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuestionLifecycle(t *testing.T) {
	r, gdb := setupAPI(t)
	require.NoError(t, gdb.Create(&models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}).Error)

	// userId missing
	w := doJSON(t, r, http.MethodPost, "/questions", gin.H{"title": "T", "content": "C"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown user
	w = doJSON(t, r, http.MethodPost, "/questions", gin.H{"title": "T", "content": "C", "userId": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/questions", gin.H{"title": "How?", "content": "**bold** body", "userId": "u1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Question
	decode(t, w, &created)

	// List includes it, with the author attached
	w = doJSON(t, r, http.MethodGet, "/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Question
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0].User.Name)

	// Detail carries the rendered body
	w = doJSON(t, r, http.MethodGet, "/questions/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail map[string]interface{}
	decode(t, w, &detail)
	html, _ := detail["contentHtml"].(string)
	assert.Contains(t, html, "<strong>bold</strong>")

	w = doJSON(t, r, http.MethodGet, "/questions/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/questions/"+created.ID, gin.H{"title": "Updated"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Question
	decode(t, w, &updated)
	assert.Equal(t, "Updated", updated.Title)

	// Questions by author
	w = doJSON(t, r, http.MethodGet, "/questions/user/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Len(t, list, 1)

	w = doJSON(t, r, http.MethodDelete, "/questions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/questions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnswerEndpoints(t *testing.T) {
	r, gdb := setupAPI(t)
	require.NoError(t, gdb.Create(&models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}).Error)
	require.NoError(t, gdb.Create(&models.User{ID: "u2", Name: "Grace", Email: "grace@example.com"}).Error)

	w := doJSON(t, r, http.MethodPost, "/questions", gin.H{"title": "How?", "content": "body", "userId": "u1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var question models.Question
	decode(t, w, &question)

	// Validation first, then the happy path
	w = doJSON(t, r, http.MethodPost, "/questions/"+question.ID+"/answers", gin.H{"content": "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/questions/ghost/answers", gin.H{"content": "hi", "userId": "u2"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/questions/"+question.ID+"/answers", gin.H{"content": "Like this", "userId": "u2"})
	require.Equal(t, http.StatusCreated, w.Code)
	var answer models.Answer
	decode(t, w, &answer)
	assert.Equal(t, question.ID, answer.QuestionID)

	w = doJSON(t, r, http.MethodGet, "/questions/"+question.ID+"/answers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var answers []models.Answer
	decode(t, w, &answers)
	require.Len(t, answers, 1)
	assert.Equal(t, "Grace", answers[0].User.Name)

	w = doJSON(t, r, http.MethodGet, "/questions/user/u2/answers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &answers)
	assert.Len(t, answers, 1)

	w = doJSON(t, r, http.MethodGet, "/questions/user/u1/answers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &answers)
	assert.Empty(t, answers)
}

func TestUserQuestionsRoute(t *testing.T) {
	r, gdb := setupAPI(t)
	require.NoError(t, gdb.Create(&models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}).Error)

	w := doJSON(t, r, http.MethodGet, "/users/u1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var questions []models.Question
	decode(t, w, &questions)
	assert.Empty(t, questions)

	w = doJSON(t, r, http.MethodGet, "/users/ghost/questions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
