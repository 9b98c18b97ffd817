package dto

// CreateUserRequest is the admin user-creation payload.
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email"    binding:"required"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role"     binding:"required,oneof=user admin"`
	DisplayName string `json:"displayName"`
	Faculty     string `json:"faculty"`
	Gender      string `json:"gender"`
	StudentID   string `json:"studentId"`
}

// UpdateUserRequest is the profile-update payload. Password is rehashed only
// when supplied.
type UpdateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email"    binding:"required"`
	Role        string `json:"role"     binding:"required,oneof=user admin"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Faculty     string `json:"faculty"`
	Gender      string `json:"gender"`
	StudentID   string `json:"studentId"`
}

// UserResponse is the sanitized account view. The password hash never
// appears here.
type UserResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	DisplayName string  `json:"displayName"`
	Faculty     string  `json:"faculty"`
	Gender      string  `json:"gender"`
	StudentID   *string `json:"studentId"`
	Role        string  `json:"role"`
	CreatedAt   string  `json:"createdAt"`
}
