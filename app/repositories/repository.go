// Package repositories is the data-access layer of the catalogue. Each
// repository owns its table's allow-list schema and translates store errors
// into the apperr taxonomy, so services and controllers never see GORM
// errors.
package repositories

import (
	"errors"

	"github.com/shashiranjanraj/vitrine/pkg/apperr"
	"gorm.io/gorm"
)

// translate maps a store error to the application taxonomy. what names the
// entity for client-facing NotFound messages ("energy drink not found").
func translate(what string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what)
	}
	return apperr.Unavailable(err)
}
