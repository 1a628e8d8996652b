package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorKinds(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", BadRequest("Country %s already exists", "Peru"))

	assert.True(t, errors.Is(err, ErrBadRequest))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Country Peru already exists", MessageOf(err))
	assert.Equal(t, "", MessageOf(errors.New("plain")))
	assert.Equal(t, "An unexpected error occurred while creating tags", MessageOf(Unexpected("creating tags")))
}

func TestHandleServiceErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"bad request", BadRequest("Missing fields: name"), http.StatusBadRequest, "Missing fields: name"},
		{"conflict", Conflict("Database integrity error"), http.StatusBadRequest, "Database integrity error"},
		{"not found", NotFound("Tag not found"), http.StatusNotFound, "Tag not found"},
		{"auth", AuthenticationFailed("Authentication failed"), http.StatusUnauthorized, "Authentication failed"},
		{"unexpected", Unexpected("deleting POI"), http.StatusInternalServerError, "An unexpected error occurred while deleting POI"},
		{"foreign", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			require.Equal(t, tt.code, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, "trace-1", body["trace_id"])
			assert.Equal(t, "error", body["status"])
		})
	}
}

func TestRespondSuccessPayloadKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, http.StatusCreated, "Tags created successfully", "created", []string{"hiking"})

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Tags created successfully", body["message"])
	assert.Equal(t, []interface{}{"hiking"}, body["created"])
	assert.NotContains(t, body, "trace_id")
}

func TestTokenRoundTrip(t *testing.T) {
	tm, err := NewTokenManager("secret", time.Minute)
	require.NoError(t, err)

	id := uuid.New()
	token, err := tm.CreateToken(id)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, id.String(), claims.Subject)

	other, err := NewTokenManager("other-secret", time.Minute)
	require.NoError(t, err)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm, err := NewTokenManager("secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := tm.CreateToken(uuid.New())
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = tm.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewTokenManagerRejectsEmptySecret(t *testing.T) {
	_, err := NewTokenManager("", time.Minute)
	assert.Error(t, err)
}

func TestParseBirthDate(t *testing.T) {
	d, err := ParseBirthDate("05/17/1990")
	require.NoError(t, err)
	assert.Equal(t, "1990-05-17T00:00:00", FormatISODateTime(d))

	_, err = ParseBirthDate("1990-05-17")
	assert.Error(t, err)
	assert.Equal(t, "", FormatISODateTime(time.Time{}))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NoError(t, ComparePasswords(hash, "s3cret!"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}
