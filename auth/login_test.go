package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/thejos/taco-cloud-v2/models"
)

func TestBcryptHasher(t *testing.T) {
	hasher := BcryptHasher{}

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Verify("secret1", hash))
	assert.False(t, hasher.Verify("secret2", hash))

	// Bcrypt salts internally, so hashing twice differs but both verify.
	other, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
	assert.True(t, hasher.Verify("secret1", other))
}

func newLoginRouter(findUser UserFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", LoginHandler(findUser, BcryptHasher{}))
	return r
}

func postLogin(t *testing.T, r *gin.Engine, req LoginRequest) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(req))
	httpReq := httptest.NewRequest(http.MethodPost, "/auth/login", &buf)
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func TestLoginHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := BcryptHasher{}.Hash("secret1")
	require.NoError(t, err)

	findUser := func(username string) (*models.User, error) {
		if username == "jane" {
			return &models.User{ID: 7, Username: "jane", PasswordHash: hash}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	r := newLoginRouter(findUser)

	t.Run("valid credentials", func(t *testing.T) {
		w := postLogin(t, r, LoginRequest{Username: "jane", Password: "secret1"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "jane", resp["username"])
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postLogin(t, r, LoginRequest{Username: "jane", Password: "secret2"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := postLogin(t, r, LoginRequest{Username: "nobody", Password: "secret1"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postLogin(t, r, LoginRequest{Username: "jane"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
