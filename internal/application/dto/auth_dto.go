package dto

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT y el perfil de la sesión.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	// LoadError mensaje genérico si alguna carga inicial falló; la sesión sigue viva.
	LoadError string `json:"load_error,omitempty"`
}

// ChangePasswordRequest entrada para cambiar la contraseña de la sesión.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
