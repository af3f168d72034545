package handler

type registerRequest struct {
	FullName string `json:"fullName" validate:"required,min=5,max=50"`
	Email    string `json:"email"    validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse is returned by both register and login. The password and its
// hash are never echoed back.
type authResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
