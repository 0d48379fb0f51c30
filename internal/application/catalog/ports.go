package catalog

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// SourceBatch productos leídos de un archivo fuente, en orden de fila.
type SourceBatch struct {
	File     string
	Rows     int // filas de datos leídas
	Skipped  int // filas sin id
	Products []*entity.Product
}

// ProductSource puerto de lectura de las fuentes del catálogo. Devuelve un lote por archivo,
// en orden lexicográfico de ruta.
type ProductSource interface {
	Load() ([]SourceBatch, error)
}
