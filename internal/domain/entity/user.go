package entity

import (
	"fmt"
	"time"
)

// TimestampLayout formato de fechas persistidas (DD-MM-YYYY_HH:MM:SS).
const TimestampLayout = "02-01-2006_15:04:05"

// FormatTimestamp serializa t con TimestampLayout.
func FormatTimestamp(t time.Time) string { return t.Format(TimestampLayout) }

// ParseTimestamp interpreta una fecha persistida en hora local.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.Local)
}

// Role discrimina la variante de User. Es inmutable tras la creación.
type Role string

// Roles válidos para User.
const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Nombres de campo de un registro de usuario.
const (
	FieldUserID       = "user_id"
	FieldUserName     = "user_name"
	FieldUserPassword = "user_password"
	FieldRegisterTime = "user_register_time"
	FieldUserRole     = "user_role"
	FieldUserEmail    = "user_email"
	FieldUserMobile   = "user_mobile"
)

var (
	adminFields    = []string{FieldUserID, FieldUserName, FieldUserPassword, FieldRegisterTime, FieldUserRole}
	customerFields = []string{FieldUserID, FieldUserName, FieldUserPassword, FieldRegisterTime, FieldUserRole, FieldUserEmail, FieldUserMobile}
)

// ParseRole valida el discriminante leído de almacenamiento.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer:
		return Role(s), nil
	}
	return "", fmt.Errorf("rol desconocido %q", s)
}

// Fields devuelve la lista explícita de campos permitidos para el rol, en el orden en que se persisten.
func (r Role) Fields() []string {
	switch r {
	case RoleAdmin:
		return append([]string(nil), adminFields...)
	case RoleCustomer:
		return append([]string(nil), customerFields...)
	}
	return nil
}

// User representa un usuario del sistema. Email y Mobile solo aplican a RoleCustomer.
type User struct {
	ID           string
	Name         string
	Password     string // forma ofuscada, nunca texto plano en reposo
	RegisterTime string // TimestampLayout
	Role         Role
	Email        string
	Mobile       string
}

// IsAdmin indica si el usuario es administrador.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// IsCustomer indica si el usuario es cliente.
func (u *User) IsCustomer() bool { return u.Role == RoleCustomer }

// NewAdmin construye la variante administrador.
func NewAdmin(id, name, obfuscatedPassword, registerTime string) *User {
	return &User{ID: id, Name: name, Password: obfuscatedPassword, RegisterTime: registerTime, Role: RoleAdmin}
}

// NewCustomer construye la variante cliente.
func NewCustomer(id, name, obfuscatedPassword, registerTime, email, mobile string) *User {
	return &User{
		ID:           id,
		Name:         name,
		Password:     obfuscatedPassword,
		RegisterTime: registerTime,
		Role:         RoleCustomer,
		Email:        email,
		Mobile:       mobile,
	}
}
