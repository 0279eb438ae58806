// Package repositories is the single chokepoint for durable state. Each
// entity gets an interface plus a GORM implementation so handlers can be
// tested against in-memory stubs and the storage technology stays swappable.
package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("kayıt bulunamadı")
	ErrDuplicate = errors.New("kayıt zaten mevcut")
)

// translate maps GORM errors onto the package sentinels. Relies on
// gorm.Config{TranslateError: true} for unique-constraint violations.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
