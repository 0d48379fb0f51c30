package product

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// ProductUseCase consultas y borrados sobre el catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, log: log}
}

// List página del catálogo.
func (uc *ProductUseCase) List(page, size int) (*dto.PageResponse[*dto.ProductResponse], error) {
	p, err := uc.repo.ListPage(page, size)
	if err != nil {
		return nil, err
	}
	return &dto.PageResponse[*dto.ProductResponse]{
		Items:      dto.MapSlice(p.Items, dto.FromProduct),
		Page:       p.Number,
		TotalPages: p.TotalPages,
	}, nil
}

// Search productos cuyo nombre contiene keyword, sin distinguir mayúsculas (plegado Unicode).
func (uc *ProductUseCase) Search(keyword string) ([]*dto.ProductResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	fold := cases.Fold()
	needle := fold.String(keyword)
	out := make([]*dto.ProductResponse, 0)
	for _, p := range all {
		if strings.Contains(fold.String(p.Name), needle) {
			out = append(out, dto.FromProduct(p))
		}
	}
	return out, nil
}

// Get obtiene un producto por ID.
func (uc *ProductUseCase) Get(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return dto.FromProduct(p), nil
}

// Delete elimina un producto. Los pedidos que lo referencian quedan huérfanos.
func (uc *ProductUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("producto %s: %w", id, err)
	}
	uc.log.Info().Str("pro_id", id).Msg("producto eliminado")
	return nil
}

// DeleteAll vacía el catálogo.
func (uc *ProductUseCase) DeleteAll() error {
	if err := uc.repo.DeleteAll(); err != nil {
		return err
	}
	uc.log.Info().Msg("catálogo vaciado")
	return nil
}
