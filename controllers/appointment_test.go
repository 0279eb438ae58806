package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"clinicpro-backend/models"
	"clinicpro-backend/repositories"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubAppointmentRepo struct {
	appointments map[uuid.UUID]*models.Appointment
	calls        int
}

func newStubAppointmentRepo(seed ...models.Appointment) *stubAppointmentRepo {
	repo := &stubAppointmentRepo{appointments: make(map[uuid.UUID]*models.Appointment)}
	for i := range seed {
		appointment := seed[i]
		repo.appointments[appointment.ID] = &appointment
	}
	return repo
}

func (r *stubAppointmentRepo) List(filter repositories.AppointmentFilter) ([]models.Appointment, error) {
	r.calls++
	var out []models.Appointment
	for _, appointment := range r.appointments {
		if filter.Status != "" && appointment.Status != filter.Status {
			continue
		}
		out = append(out, *appointment)
	}
	return out, nil
}

func (r *stubAppointmentRepo) FindByID(id uuid.UUID) (*models.Appointment, error) {
	r.calls++
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *appointment
	return &clone, nil
}

func (r *stubAppointmentRepo) FindConfirmedBetween(start, end time.Time) ([]models.Appointment, error) {
	r.calls++
	var out []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.Status != models.AppointmentStatusConfirmed {
			continue
		}
		if appointment.Date.Before(start) || !appointment.Date.Before(end) {
			continue
		}
		out = append(out, *appointment)
	}
	return out, nil
}

func (r *stubAppointmentRepo) Create(appointment *models.Appointment) error {
	r.calls++
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	if appointment.Status == "" {
		appointment.Status = models.AppointmentStatusPending
	}
	clone := *appointment
	r.appointments[appointment.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) Update(appointment *models.Appointment) error {
	r.calls++
	clone := *appointment
	r.appointments[appointment.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) Delete(id uuid.UUID) error {
	r.calls++
	if _, ok := r.appointments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

var _ repositories.AppointmentRepository = (*stubAppointmentRepo)(nil)

func appointmentRouter(repo repositories.AppointmentRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAppointmentController(repo)

	router := gin.New()
	router.POST("/api/appointments", controller.CreateAppointment)
	admin := router.Group("", utils.AuthMiddleware(models.RoleAdmin))
	admin.GET("/api/appointments", controller.GetAppointments)
	admin.GET("/api/appointments/:id", controller.GetAppointment)
	admin.PUT("/api/appointments/:id", controller.UpdateAppointment)
	admin.DELETE("/api/appointments/:id", controller.DeleteAppointment)
	return router
}

func TestCreateAppointmentPublic(t *testing.T) {
	repo := newStubAppointmentRepo()
	router := appointmentRouter(repo)

	w := doJSON(router, http.MethodPost, "/api/appointments", "", map[string]any{
		"name":    "Ayşe Yılmaz",
		"email":   "ayse@example.com",
		"phone":   "05551234567",
		"service": "Lazer Epilasyon",
		"date":    "2026-09-15",
		"time":    "14:30",
		"message": "Öğleden sonra uygun",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	var created models.Appointment
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("data is not an appointment: %v", err)
	}
	if created.Status != models.AppointmentStatusPending {
		t.Errorf("status = %q, want %q", created.Status, models.AppointmentStatusPending)
	}
}

func TestCreateAppointmentRejectsBadPhone(t *testing.T) {
	repo := newStubAppointmentRepo()
	router := appointmentRouter(repo)

	w := doJSON(router, http.MethodPost, "/api/appointments", "", map[string]any{
		"name":    "Ayşe Yılmaz",
		"email":   "ayse@example.com",
		"phone":   "telefon-yok-123",
		"service": "Botoks",
		"date":    "2026-09-15",
		"time":    "14:30",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
	if len(repo.appointments) != 0 {
		t.Error("appointment persisted despite invalid phone")
	}
}

func TestCreateAppointmentRejectsBadDate(t *testing.T) {
	repo := newStubAppointmentRepo()
	router := appointmentRouter(repo)

	w := doJSON(router, http.MethodPost, "/api/appointments", "", map[string]any{
		"name":    "Ayşe Yılmaz",
		"email":   "ayse@example.com",
		"phone":   "05551234567",
		"service": "Botoks",
		"date":    "15/09/2026",
		"time":    "14:30",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
	if len(repo.appointments) != 0 {
		t.Error("appointment persisted despite invalid date")
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	id := uuid.New()
	repo := newStubAppointmentRepo(models.Appointment{
		ID:     id,
		Name:   "Ayşe Yılmaz",
		Status: models.AppointmentStatusPending,
	})
	router := appointmentRouter(repo)
	token := adminToken(t)

	w := doJSON(router, http.MethodPut, "/api/appointments/"+id.String(), token, map[string]any{
		"status": "CONFIRMED",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if repo.appointments[id].Status != models.AppointmentStatusConfirmed {
		t.Errorf("stored status = %q, want CONFIRMED", repo.appointments[id].Status)
	}
}

func TestUpdateAppointmentRejectsUnknownStatus(t *testing.T) {
	id := uuid.New()
	repo := newStubAppointmentRepo(models.Appointment{ID: id, Status: models.AppointmentStatusPending})
	router := appointmentRouter(repo)
	token := adminToken(t)

	w := doJSON(router, http.MethodPut, "/api/appointments/"+id.String(), token, map[string]any{
		"status": "MAYBE",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if repo.appointments[id].Status != models.AppointmentStatusPending {
		t.Error("status changed despite invalid transition value")
	}
}

func TestListAppointmentsRequiresAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newStubAppointmentRepo(models.Appointment{ID: uuid.New()})
	router := appointmentRouter(repo)

	w := doJSON(router, http.MethodGet, "/api/appointments", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if repo.calls != 0 {
		t.Errorf("repository reached %d times by an unauthenticated list, want 0", repo.calls)
	}
}

func TestListAppointmentsFiltersByStatus(t *testing.T) {
	repo := newStubAppointmentRepo(
		models.Appointment{ID: uuid.New(), Status: models.AppointmentStatusPending},
		models.Appointment{ID: uuid.New(), Status: models.AppointmentStatusConfirmed},
	)
	router := appointmentRouter(repo)
	token := adminToken(t)

	w := doJSON(router, http.MethodGet, "/api/appointments?status=CONFIRMED", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	env := decodeEnvelope(t, w)
	var appointments []models.Appointment
	if err := json.Unmarshal(env.Data, &appointments); err != nil {
		t.Fatalf("data is not an appointment list: %v", err)
	}
	if len(appointments) != 1 || appointments[0].Status != models.AppointmentStatusConfirmed {
		t.Errorf("filtered list = %+v", appointments)
	}

	w = doJSON(router, http.MethodGet, "/api/appointments?status=BOGUS", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bogus status filter = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
