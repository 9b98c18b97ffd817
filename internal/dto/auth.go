package dto

// SignupRequest is the self-registration payload. Role may be "admin" only
// when VerifyCode matches the server-held secret.
type SignupRequest struct {
	Username    string `json:"username"    binding:"required"`
	Email       string `json:"email"       binding:"required"`
	Password    string `json:"password"    binding:"required"`
	DisplayName string `json:"displayName"`
	Faculty     string `json:"faculty"`
	Gender      string `json:"gender"`
	StudentID   string `json:"studentId"`
	Role        string `json:"role"`
	VerifyCode  string `json:"verifyCode"`
}

// LoginRequest is the credential check payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login. The client caches role and
// userId locally; the token authorizes subsequent mutating requests.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
	UserID  string `json:"userId"`
}
