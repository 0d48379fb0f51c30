package catalog

import (
	"fmt"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// CatalogUseCase ingesta del catálogo desde las fuentes CSV.
type CatalogUseCase struct {
	source      ProductSource
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(source ProductSource, productRepo repository.ProductRepository, log *logger.Logger) *CatalogUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogUseCase{source: source, productRepo: productRepo, log: log}
}

// Ingest lee todas las fuentes, deduplica por pro_id (gana la primera aparición) y
// reescribe el catálogo completo. Sin archivos fuente no toca el catálogo.
func (uc *CatalogUseCase) Ingest() (*dto.IngestReport, error) {
	batches, err := uc.source.Load()
	if err != nil {
		return nil, fmt.Errorf("leer fuentes de catálogo: %w", err)
	}
	report := &dto.IngestReport{Files: len(batches)}
	if len(batches) == 0 {
		uc.log.Warn().Msg("no hay archivos fuente de productos")
		return report, nil
	}

	seen := make(map[string]struct{})
	var products []*entity.Product
	for _, b := range batches {
		report.Rows += b.Rows
		report.Skipped += b.Skipped
		for _, p := range b.Products {
			if _, dup := seen[p.ID]; dup {
				report.Duplicates++
				continue
			}
			seen[p.ID] = struct{}{}
			products = append(products, p)
		}
	}
	if err := uc.productRepo.ReplaceAll(products); err != nil {
		return nil, err
	}
	report.Stored = len(products)
	uc.log.Info().
		Int("files", report.Files).
		Int("rows", report.Rows).
		Int("stored", report.Stored).
		Int("duplicates", report.Duplicates).
		Int("skipped", report.Skipped).
		Msg("catálogo ingerido")
	return report, nil
}

// EnsureCatalog ingiere solo si el catálogo está vacío. Devuelve nil si no hizo nada.
func (uc *CatalogUseCase) EnsureCatalog() (*dto.IngestReport, error) {
	existing, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, nil
	}
	return uc.Ingest()
}
