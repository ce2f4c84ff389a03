package model

type Account struct {
	DTO
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `gorm:"default:'ORGANIZADOR';not null" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=4"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN ORGANIZADOR OPERADOR_CHECKIN"`
}
