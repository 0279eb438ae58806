package models

import "time"

// SiteSettingsID is the fixed key of the singleton row.
const SiteSettingsID = "main"

type SiteSettings struct {
	ID          string `gorm:"primaryKey;type:varchar(32)" json:"id"`
	SiteName    string `json:"siteName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Whatsapp    string `json:"whatsapp"`
	Instagram   string `json:"instagram"`
	Facebook    string `json:"facebook"`
	Twitter     string `json:"twitter"`
	Youtube     string `json:"youtube"`
	MapEmbedUrl string `json:"mapEmbedUrl"`
	WorkingHours JSONB `gorm:"type:jsonb;default:'{}'" json:"workingHours"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSiteSettings returns the row created on first boot, before the admin
// has saved anything.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:       SiteSettingsID,
		SiteName: "Aesthetic Clinic",
		Phone:    "+905551234567",
		Email:    "info@aestheticclinic.com",
		Address:  "Bağdat Caddesi No: 123, Kadıköy, İstanbul",
		Whatsapp: "+905551234567",
		WorkingHours: JSONB{
			"Pazartesi - Cuma": "09:00 - 19:00",
			"Cumartesi":        "10:00 - 17:00",
			"Pazar":            "Kapalı",
		},
	}
}
