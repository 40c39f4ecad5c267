package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrProfileNotFound    = errors.New("perfil de usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrWeakPassword       = errors.New("la contraseña no cumple la política de seguridad")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNoSession          = errors.New("no hay sesión activa")
	ErrDataLoad           = errors.New("error cargando datos de la aplicación")
)
