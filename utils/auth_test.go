package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicpro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("gizli-sifre-123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "gizli-sifre-123" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPasswordHash("gizli-sifre-123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("yanlis-sifre", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{
		ID:    uuid.New(),
		Name:  "Test Admin",
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.Subject != user.ID.String() {
		t.Errorf("subject = %q, want %q", claims.Subject, user.ID.String())
	}
	if claims.Email != user.Email {
		t.Errorf("email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", claims.Role, models.RoleAdmin)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")

	user := &models.User{ID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	user := &models.User{ID: uuid.New()}
	if _, err := GenerateToken(user); err == nil {
		t.Error("expected an error with no JWT_SECRET configured")
	}
}

func authTestRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userId")})
	})
	return router
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authTestRouter(models.RoleAdmin)

	user := &models.User{ID: uuid.New(), Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestAuthMiddlewareAcceptsCookieToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authTestRouter()

	user := &models.User{ID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestAuthMiddlewareEnforcesRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authTestRouter(models.RoleAdmin)

	user := &models.User{ID: uuid.New(), Email: "user@example.com", Role: models.RoleUser}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
