package session

import (
	"unicode"

	"github.com/caucamais/MAIS-Platform/internal/domain"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 8

// ValidatePassword aplica la política de contraseñas ANTES de intentar
// cualquier escritura: mínimo 8 caracteres, con mayúscula, minúscula y dígito.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return domain.ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return domain.ErrWeakPassword
	}
	return nil
}
