package flatfile

import (
	"fmt"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre archivo plano.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(path string, log *logger.Logger) *ProductRepo {
	return &ProductRepo{store: NewStore(path, NewCodec(entity.ProductFields), log)}
}

func productToRecord(p *entity.Product) Record {
	return Record{
		entity.FieldProID:           p.ID,
		entity.FieldProModel:        p.Model,
		entity.FieldProCategory:     p.Category,
		entity.FieldProName:         p.Name,
		entity.FieldProCurrentPrice: nullable(p.CurrentPrice),
		entity.FieldProRawPrice:     p.RawPrice.InexactFloat64(),
		entity.FieldProDiscount:     p.Discount.InexactFloat64(),
		entity.FieldProLikesCount:   p.LikesCount,
	}
}

func recordToProduct(r Record) *entity.Product {
	return &entity.Product{
		ID:           str(r, entity.FieldProID),
		Model:        str(r, entity.FieldProModel),
		Category:     str(r, entity.FieldProCategory),
		Name:         str(r, entity.FieldProName),
		CurrentPrice: nullDec(r, entity.FieldProCurrentPrice),
		RawPrice:     dec(r, entity.FieldProRawPrice),
		Discount:     dec(r, entity.FieldProDiscount),
		LikesCount:   integer(r, entity.FieldProLikesCount),
	}
}

// List devuelve el catálogo completo en orden de archivo.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	recs, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recordToProduct(rec))
	}
	return out, nil
}

// GetByID obtiene el primer producto con ese ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	products, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// ListPage página del catálogo.
func (r *ProductRepo) ListPage(page, size int) (repository.Page[*entity.Product], error) {
	products, err := r.List()
	if err != nil {
		return repository.Page[*entity.Product]{}, err
	}
	return Paginate(products, page, size), nil
}

// ReplaceAll reescribe el catálogo.
func (r *ProductRepo) ReplaceAll(products []*entity.Product) error {
	recs := make([]Record, 0, len(products))
	for _, p := range products {
		recs = append(recs, productToRecord(p))
	}
	if err := r.store.Rewrite(recs); err != nil {
		return fmt.Errorf("replace products: %w", err)
	}
	return nil
}

// Delete elimina el producto con ese ID.
func (r *ProductRepo) Delete(id string) error {
	recs, err := r.store.LoadAll()
	if err != nil {
		return err
	}
	keep := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if str(rec, entity.FieldProID) != id {
			keep = append(keep, rec)
		}
	}
	if len(keep) == len(recs) {
		return domain.ErrNotFound
	}
	if err := r.store.Rewrite(keep); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DeleteAll vacía el catálogo.
func (r *ProductRepo) DeleteAll() error {
	if err := r.store.Truncate(); err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	return nil
}
