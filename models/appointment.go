package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentStatusPending   = "PENDING"
	AppointmentStatusConfirmed = "CONFIRMED"
	AppointmentStatusCancelled = "CANCELLED"
	AppointmentStatusCompleted = "COMPLETED"
)

// Appointment is created by the public booking form; only admins move its
// status afterwards.
type Appointment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Email   string    `gorm:"not null" json:"email"`
	Phone   string    `gorm:"not null" json:"phone"`
	Service string    `gorm:"not null" json:"service"`
	Date    time.Time `gorm:"not null" json:"date"`
	Time    string    `gorm:"not null" json:"time"`
	Status  string    `gorm:"type:varchar(20);index;not null;default:'PENDING'" json:"status"`
	Message string    `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = AppointmentStatusPending
	}
	return
}

func IsValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}
