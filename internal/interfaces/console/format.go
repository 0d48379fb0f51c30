package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
)

func formatUser(u *dto.UserResponse) string {
	parts := []string{
		"user_id: " + u.ID,
		"user_name: " + u.Name,
		"user_role: " + u.Role,
		"user_register_time: " + u.RegisterTime,
	}
	if u.Email != "" || u.Mobile != "" {
		parts = append(parts, "user_email: "+u.Email, "user_mobile: "+u.Mobile)
	}
	return strings.Join(parts, ", ")
}

func formatProduct(p *dto.ProductResponse) string {
	return fmt.Sprintf("pro_id: %s, pro_model: %s, pro_category: %s, pro_name: %s, pro_current_price: %s, pro_raw_price: %s, pro_discount: %s, pro_likes_count: %d",
		p.ID, p.Model, p.Category, p.Name, priceText(p.CurrentPrice), p.RawPrice.String(), p.Discount.String(), p.LikesCount)
}

func priceText(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func formatOrder(o *dto.OrderResponse) string {
	return fmt.Sprintf("order_id: %s, user_id: %s, pro_id: %s, order_time: %s", o.ID, o.UserID, o.ProductID, o.OrderTime)
}

// errorMessage traduce errores de dominio a un mensaje para el usuario.
func errorMessage(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return fmt.Sprintf("valor inválido para %s", verr.Field)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "usuario o contraseña inválidos"
	case errors.Is(err, domain.ErrDuplicate):
		return "el nombre de usuario ya existe"
	case errors.Is(err, domain.ErrUnknownProfileField):
		return "solo se puede actualizar password, email o mobile"
	case errors.Is(err, domain.ErrNotFound):
		return "no encontrado"
	case errors.Is(err, domain.ErrNoProducts):
		return "no hay productos en el catálogo"
	}
	return "error inesperado: " + err.Error()
}
