package dto

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// FromUser convierte la entidad a salida, sin password.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Role:         string(u.Role),
		RegisterTime: u.RegisterTime,
		Email:        u.Email,
		Mobile:       u.Mobile,
	}
}

// FromProduct convierte la entidad a salida.
func FromProduct(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:           p.ID,
		Model:        p.Model,
		Category:     p.Category,
		Name:         p.Name,
		CurrentPrice: p.CurrentPrice,
		RawPrice:     p.RawPrice,
		Discount:     p.Discount,
		LikesCount:   p.LikesCount,
	}
}

// FromOrder convierte la entidad a salida.
func FromOrder(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{ID: o.ID, UserID: o.UserID, ProductID: o.ProductID, OrderTime: o.OrderTime}
}

// MapSlice aplica fn a cada elemento.
func MapSlice[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
