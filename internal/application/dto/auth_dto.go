package dto

// LoginRequest credenciales del login de demostración. No hay verificación
// real: solo se exige que ambos campos no estén vacíos.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido para la sesión.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
