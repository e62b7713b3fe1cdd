package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mindwell/config"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
)

func triggerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/regenerate", TriggerAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("triggerSubject")})
	})
	return r
}

func TestTriggerAuthMiddleware(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	triggerToken, err := utils.GenerateToken("nightly-cron", "trigger", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	sessionToken, err := utils.GenerateToken("user-1", "session", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	expiredToken, err := utils.GenerateToken("nightly-cron", "trigger", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"trigger scope accepted", "Bearer " + triggerToken, http.StatusOK},
		{"session scope rejected", "Bearer " + sessionToken, http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	router := triggerRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/regenerate", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestTriggerAuthMiddlewareExposesSubject(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("nightly-cron", "trigger", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/regenerate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	triggerRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "nightly-cron") {
		t.Errorf("handler did not see the trigger subject: %s", w.Body.String())
	}
}
