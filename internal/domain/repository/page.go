package repository

// DefaultPageSize tamaño de página cuando el llamador no indica uno válido.
const DefaultPageSize = 10

// Page resultado de un listado paginado. Number es la página pedida (base 1) y
// TotalPages el total real, aunque Items venga vacío por estar fuera de rango.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
}

// Empty indica si la página no trae elementos.
func (p Page[T]) Empty() bool { return len(p.Items) == 0 }
