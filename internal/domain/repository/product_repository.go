package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListPage(page, size int) (Page[*entity.Product], error)
	// ReplaceAll reescribe el catálogo completo con products, en ese orden.
	ReplaceAll(products []*entity.Product) error
	Delete(id string) error
	DeleteAll() error
}
