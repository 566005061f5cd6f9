package auth

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3"`
	Password string `json:"password" form:"password" binding:"required,min=4"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Type     string   `json:"type,omitempty"`
	Username string   `json:"username,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Role     string `json:"role" form:"role" binding:"required"`
}

type RegisterResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

type RoleDTO struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}
