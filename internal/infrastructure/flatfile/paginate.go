package flatfile

import "github.com/jhoicas/tienda-cli/internal/domain/repository"

// Paginate corta items en páginas de size (base 1). Fuera de rango devuelve Items vacío
// conservando el número pedido y el total real.
func Paginate[T any](items []T, page, size int) repository.Page[T] {
	if size <= 0 {
		size = repository.DefaultPageSize
	}
	total := (len(items) + size - 1) / size
	res := repository.Page[T]{Items: []T{}, Number: page, TotalPages: total}
	if page < 1 || (page > total && total > 0) || len(items) == 0 {
		return res
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	res.Items = append(res.Items, items[start:end]...)
	return res
}
