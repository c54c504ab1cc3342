package dto

// LoginRequest body de POST /auth/login.
type LoginRequest struct {
	Matricula string `json:"matricula"`
	Senha     string `json:"senha"`
}

// LoginResponse respuesta de POST /auth/login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Rejected ver Envelope.Rejected.
func (r LoginResponse) Rejected() (string, bool) {
	return r.Message, !r.Success
}
