package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartbrief/internal/auth"
	"smartbrief/internal/model"
	"smartbrief/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeUserStore struct {
	user *model.User
	err  error
}

func (f *fakeUserStore) Create(user *model.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = 1
	user.CreatedAt = time.Now()
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	return f.user, f.err
}

func (f *fakeUserStore) GetByID(id int64) (*model.User, error) {
	return f.user, f.err
}

func newAuthRouter(users UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens, _ := auth.NewManager("test-secret", time.Hour)
	h := NewAuthHandler(users, tokens)

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/user", h.GetUser)
	return r
}

func TestRegister_CreatesUserAndToken(t *testing.T) {
	r := newAuthRouter(&fakeUserStore{})

	w := postJSON(r, "/register", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "correct horse",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var res AuthResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res.Token)
	assert.Equal(t, "ada@example.com", res.User.Email)
}

func TestRegister_MissingFields(t *testing.T) {
	r := newAuthRouter(&fakeUserStore{})

	w := postJSON(r, "/register", map[string]string{"email": "ada@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := newAuthRouter(&fakeUserStore{err: repository.ErrEmailTaken})

	w := postJSON(r, "/register", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "correct horse",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "User already exists", res["error"])
}

func TestLogin_Success(t *testing.T) {
	hash, _ := auth.HashPassword("correct horse")
	store := &fakeUserStore{user: &model.User{ID: 3, Name: "Ada", Email: "ada@example.com", PasswordHash: hash}}
	r := newAuthRouter(store)

	w := postJSON(r, "/login", map[string]string{
		"email":    "ada@example.com",
		"password": "correct horse",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var res AuthResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res.Token)
	assert.Equal(t, int64(3), res.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := auth.HashPassword("correct horse")
	store := &fakeUserStore{user: &model.User{ID: 3, Email: "ada@example.com", PasswordHash: hash}}
	r := newAuthRouter(store)

	w := postJSON(r, "/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong horse",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	r := newAuthRouter(&fakeUserStore{})

	w := postJSON(r, "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	r := newAuthRouter(&fakeUserStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/user", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
