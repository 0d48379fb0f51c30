package identity

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/tienda-cli/internal/domain"
)

// StructValidator valida DTOs con etiquetas `validate`, incluidas las reglas propias
// username, password, email_simple y mobile.
type StructValidator struct {
	v *validator.Validate
}

// NewStructValidator registra las reglas de identidad sobre un validator nuevo.
func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "username", ValidUsername)
	mustRegister(v, "password", ValidPassword)
	mustRegister(v, "email_simple", ValidEmail)
	mustRegister(v, "mobile", ValidMobile)
	return &StructValidator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn func(string) bool) {
	if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Validate devuelve *domain.ValidationError con el primer campo inválido.
func (s *StructValidator) Validate(i any) error {
	err := s.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.NewValidationError(fe.Field(), fe.Tag())
	}
	return err
}
