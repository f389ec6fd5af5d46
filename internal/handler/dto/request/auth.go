package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type TerminalSessionRequest struct {
	PIN string `json:"pin" binding:"required,len=6,numeric"`
}
