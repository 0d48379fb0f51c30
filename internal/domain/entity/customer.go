package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/tienda-cli/internal/domain"
)

// ProfileField enumera los atributos que un cliente puede modificar de su perfil.
type ProfileField string

const (
	ProfilePassword ProfileField = FieldUserPassword
	ProfileEmail    ProfileField = FieldUserEmail
	ProfileMobile   ProfileField = FieldUserMobile
)

// ProfileFields lista los campos actualizables.
var ProfileFields = []ProfileField{ProfilePassword, ProfileEmail, ProfileMobile}

// ParseProfileField acepta el nombre de campo persistido (user_email) o su forma corta (email).
// Cualquier otro nombre se rechaza.
func ParseProfileField(s string) (ProfileField, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case string(ProfilePassword), "password":
		return ProfilePassword, nil
	case string(ProfileEmail), "email":
		return ProfileEmail, nil
	case string(ProfileMobile), "mobile":
		return ProfileMobile, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownProfileField, s)
}

// Apply asigna value al campo correspondiente del usuario. El valor debe venir validado
// (y ofuscado en el caso de la contraseña).
func (f ProfileField) Apply(u *User, value string) {
	switch f {
	case ProfilePassword:
		u.Password = value
	case ProfileEmail:
		u.Email = value
	case ProfileMobile:
		u.Mobile = value
	}
}
