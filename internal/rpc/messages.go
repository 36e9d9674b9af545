package rpc

// Requests. The validate tags are the rules of the corresponding
// validation rule-sets.

type ForgotPasswordRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
}

type ResetPasswordRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,bcryptmax"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,bcryptmax,nefield=OldPassword"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the envelope result of a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
}
