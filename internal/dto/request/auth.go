package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=20"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
	Fullname string `json:"fullname,omitempty" validate:"required_if=Role customer,max=50"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
