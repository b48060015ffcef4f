package dto

type RegistroRequest struct {
	NombreUsuario string `json:"nombreUsuario" validate:"required,min=3,max=60"`
	Password      string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	NombreUsuario string `json:"nombreUsuario" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	UsuarioID string `json:"usuarioId"`
	Nombre    string `json:"nombreUsuario"`
}
