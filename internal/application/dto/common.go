package dto

// PageResponse página de resultados con la numeración de la capa de persistencia.
type PageResponse[T any] struct {
	Items      []T
	Page       int
	TotalPages int
}
