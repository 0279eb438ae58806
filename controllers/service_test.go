package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicpro-backend/models"
	"clinicpro-backend/repositories"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// stubServiceRepo is an in-memory ServiceRepository that counts every call,
// so tests can assert that rejected requests never reach persistence.
type stubServiceRepo struct {
	services map[uuid.UUID]*models.Service
	calls    int
}

func newStubServiceRepo(seed ...models.Service) *stubServiceRepo {
	repo := &stubServiceRepo{services: make(map[uuid.UUID]*models.Service)}
	for i := range seed {
		service := seed[i]
		repo.services[service.ID] = &service
	}
	return repo
}

func (r *stubServiceRepo) List(filter repositories.ServiceFilter) ([]models.Service, error) {
	r.calls++
	var out []models.Service
	for _, service := range r.services {
		if filter.Category != "" && service.Category != filter.Category {
			continue
		}
		if filter.Active != nil && service.IsActive != *filter.Active {
			continue
		}
		out = append(out, *service)
	}
	return out, nil
}

func (r *stubServiceRepo) FindByID(id uuid.UUID) (*models.Service, error) {
	r.calls++
	service, ok := r.services[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *service
	return &clone, nil
}

func (r *stubServiceRepo) FindBySlug(slug string) (*models.Service, error) {
	r.calls++
	for _, service := range r.services {
		if service.Slug == slug {
			clone := *service
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubServiceRepo) Create(service *models.Service) error {
	r.calls++
	for _, existing := range r.services {
		if existing.Slug == service.Slug {
			return repositories.ErrDuplicate
		}
	}
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	clone := *service
	r.services[service.ID] = &clone
	return nil
}

func (r *stubServiceRepo) Update(service *models.Service) error {
	r.calls++
	for id, existing := range r.services {
		if id != service.ID && existing.Slug == service.Slug {
			return repositories.ErrDuplicate
		}
	}
	clone := *service
	r.services[service.ID] = &clone
	return nil
}

func (r *stubServiceRepo) Delete(id uuid.UUID) error {
	r.calls++
	if _, ok := r.services[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

var _ repositories.ServiceRepository = (*stubServiceRepo)(nil)

func serviceTestRouter(repo repositories.ServiceRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewServiceController(repo)

	router := gin.New()
	router.GET("/api/services", controller.GetServices)
	router.GET("/api/services/:id", controller.GetService)
	admin := router.Group("", utils.AuthMiddleware(models.RoleAdmin))
	admin.POST("/api/services", controller.CreateService)
	admin.PUT("/api/services/:id", controller.UpdateService)
	admin.DELETE("/api/services/:id", controller.DeleteService)
	return router
}

func adminToken(t *testing.T) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken(&models.User{
		ID:    uuid.New(),
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return env
}

func validServiceInput() map[string]any {
	return map[string]any{
		"slug":             "lazer-epilasyon",
		"title":            "Lazer Epilasyon",
		"category":         "epilasyon",
		"shortDescription": "Kalıcı tüy azaltma",
		"description":      "Son teknoloji cihazlarla lazer epilasyon uygulaması.",
		"price":            "1500 TL",
		"duration":         "45 dk",
		"benefits":         []string{"Kalıcı sonuç", "Hızlı uygulama"},
	}
}

func TestCreateServiceSucceeds(t *testing.T) {
	repo := newStubServiceRepo()
	router := serviceTestRouter(repo)
	token := adminToken(t)

	w := doJSON(router, http.MethodPost, "/api/services", token, validServiceInput())

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("success = false, error %q", env.Error)
	}

	var created models.Service
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("data is not a service: %v", err)
	}
	if created.Slug != "lazer-epilasyon" {
		t.Errorf("slug = %q", created.Slug)
	}
	if !created.IsActive {
		t.Error("isActive should default to true")
	}
}

func TestCreateServiceRejectsBadSlug(t *testing.T) {
	repo := newStubServiceRepo()
	router := serviceTestRouter(repo)
	token := adminToken(t)

	input := validServiceInput()
	input["slug"] = "Lazer Epilasyon"

	w := doJSON(router, http.MethodPost, "/api/services", token, input)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if env := decodeEnvelope(t, w); env.Success || env.Error == "" {
		t.Errorf("expected an error envelope, got %s", w.Body.String())
	}
}

func TestCreateServiceDuplicateSlugConflicts(t *testing.T) {
	existing := models.Service{ID: uuid.New(), Slug: "botoks", Title: "Botoks", Category: "enjeksiyon"}
	repo := newStubServiceRepo(existing)
	router := serviceTestRouter(repo)
	token := adminToken(t)

	input := validServiceInput()
	input["slug"] = "botoks"

	w := doJSON(router, http.MethodPost, "/api/services", token, input)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusConflict, w.Body.String())
	}
	if env := decodeEnvelope(t, w); env.Success {
		t.Error("conflict response claims success")
	}
	if len(repo.services) != 1 {
		t.Errorf("repo holds %d services after rejected create, want 1", len(repo.services))
	}
}

func TestUpdateServicePartialPatch(t *testing.T) {
	id := uuid.New()
	repo := newStubServiceRepo(models.Service{
		ID:       id,
		Slug:     "cilt-bakimi",
		Title:    "Cilt Bakımı",
		Category: "bakim",
		Price:    "800 TL",
		IsActive: true,
		Order:    3,
	})
	router := serviceTestRouter(repo)
	token := adminToken(t)

	patch := map[string]any{"price": "950 TL"}

	for i := 0; i < 2; i++ {
		w := doJSON(router, http.MethodPut, "/api/services/"+id.String(), token, patch)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}
	}

	stored := repo.services[id]
	if stored.Price != "950 TL" {
		t.Errorf("price = %q, want patched value", stored.Price)
	}
	if stored.Title != "Cilt Bakımı" || stored.Slug != "cilt-bakimi" || stored.Order != 3 || !stored.IsActive {
		t.Errorf("untouched fields changed: %+v", stored)
	}
}

func TestGetServiceNotFound(t *testing.T) {
	repo := newStubServiceRepo()
	router := serviceTestRouter(repo)

	w := doJSON(router, http.MethodGet, "/api/services/"+uuid.NewString(), "", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetServiceRejectsMalformedID(t *testing.T) {
	repo := newStubServiceRepo()
	router := serviceTestRouter(repo)

	w := doJSON(router, http.MethodGet, "/api/services/not-a-uuid", "", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if repo.calls != 0 {
		t.Errorf("repository reached %d times for a malformed id, want 0", repo.calls)
	}
}

func TestMutationsRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newStubServiceRepo()
	router := serviceTestRouter(repo)

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/api/services", validServiceInput()},
		{http.MethodPut, "/api/services/" + uuid.NewString(), map[string]any{"title": "X"}},
		{http.MethodDelete, "/api/services/" + uuid.NewString(), nil},
	}

	for _, tc := range cases {
		w := doJSON(router, tc.method, tc.path, "", tc.body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want %d", tc.method, tc.path, w.Code, http.StatusUnauthorized)
		}
	}

	if repo.calls != 0 {
		t.Errorf("repository reached %d times by unauthenticated requests, want 0", repo.calls)
	}
}

func TestDeleteService(t *testing.T) {
	id := uuid.New()
	repo := newStubServiceRepo(models.Service{ID: id, Slug: "botoks"})
	router := serviceTestRouter(repo)
	token := adminToken(t)

	w := doJSON(router, http.MethodDelete, "/api/services/"+id.String(), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	w = doJSON(router, http.MethodDelete, "/api/services/"+id.String(), token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetServicesAppliesFilters(t *testing.T) {
	repo := newStubServiceRepo(
		models.Service{ID: uuid.New(), Slug: "a", Category: "epilasyon", IsActive: true},
		models.Service{ID: uuid.New(), Slug: "b", Category: "epilasyon", IsActive: false},
		models.Service{ID: uuid.New(), Slug: "c", Category: "bakim", IsActive: true},
	)
	router := serviceTestRouter(repo)

	w := doJSON(router, http.MethodGet, "/api/services?category=epilasyon&active=true", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	env := decodeEnvelope(t, w)
	var services []models.Service
	if err := json.Unmarshal(env.Data, &services); err != nil {
		t.Fatalf("data is not a service list: %v", err)
	}
	if len(services) != 1 || services[0].Slug != "a" {
		t.Errorf("filtered list = %+v, want only slug a", services)
	}
}
