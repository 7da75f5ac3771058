package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gilang657/track-my-money/utils"
)

func performRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured string
	router := gin.New()
	router.Use(AuthMiddleware())
	router.GET("/protected", func(c *gin.Context) {
		captured = GetUserID(c)
		c.Status(http.StatusOK)
	})

	req, err := http.NewRequest(http.MethodGet, "/protected", nil)
	if err != nil {
		t.Fatal(err)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, captured
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-do-not-use-in-prod")

	token, err := utils.GenerateAccessToken("user-42", "someone@example.com")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("valid token passes and exposes user id", func(t *testing.T) {
		w, userID := performRequest(t, "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if userID != "user-42" {
			t.Errorf("user id = %q, want user-42", userID)
		}
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w, _ := performRequest(t, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w, _ := performRequest(t, "Token "+token)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w, _ := performRequest(t, "Bearer not.a.token")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}
