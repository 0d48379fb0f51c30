package dto

// RegisterCustomerRequest entrada para registrar un cliente (password en texto, se ofusca en use case).
type RegisterCustomerRequest struct {
	Username string `json:"user_name" validate:"required,username"`
	Password string `json:"user_password" validate:"required,password"`
	Email    string `json:"user_email" validate:"required,email_simple"`
	Mobile   string `json:"user_mobile" validate:"required,mobile"`
}

// UpdateProfileRequest cambio de un campo del perfil. Field: password, email o mobile.
type UpdateProfileRequest struct {
	CustomerID string `json:"user_id" validate:"required"`
	Field      string `json:"field" validate:"required"`
	Value      string `json:"value"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string `json:"user_id"`
	Name         string `json:"user_name"`
	Role         string `json:"user_role"`
	RegisterTime string `json:"user_register_time"`
	Email        string `json:"user_email,omitempty"`
	Mobile       string `json:"user_mobile,omitempty"`
}
