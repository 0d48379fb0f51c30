package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID y GetByName devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByName(name string) (*entity.User, error)
	List() ([]*entity.User, error)
	ListCustomers(page, size int) (Page[*entity.User], error)
	// Update reemplaza el registro con el mismo ID; domain.ErrNotFound si no existe.
	Update(user *entity.User) error
	Delete(id string) error
	// DeleteCustomers borra todos los clientes y conserva los administradores. Devuelve cuántos borró.
	DeleteCustomers() (int, error)
	IDs() (map[string]struct{}, error)
}
