package identity

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefijos y anchos de los identificadores persistidos.
const (
	UserIDPrefix  = "u_"
	UserIDWidth   = 10
	OrderIDPrefix = "o_"
	OrderIDWidth  = 5
)

// IDGenerator genera identificadores aleatorios de ancho fijo.
type IDGenerator struct {
	rnd RandSource
}

// NewIDGenerator crea un generador. Si rnd es nil usa DefaultRand.
func NewIDGenerator(rnd RandSource) *IDGenerator {
	if rnd == nil {
		rnd = DefaultRand()
	}
	return &IDGenerator{rnd: rnd}
}

// Unique devuelve prefix + número de width dígitos que no está en existing.
// Falla si el espacio de ids está agotado.
func (g *IDGenerator) Unique(prefix string, width int, existing map[string]struct{}) (string, error) {
	if width <= 0 || width > 18 {
		return "", fmt.Errorf("ancho de id inválido: %d", width)
	}
	space := 1
	for i := 0; i < width; i++ {
		space *= 10
	}
	taken := 0
	for id := range existing {
		if strings.HasPrefix(id, prefix) && len(id) == len(prefix)+width {
			taken++
		}
	}
	if taken >= space {
		return "", fmt.Errorf("espacio de ids %s agotado", prefix)
	}
	for {
		id := prefix + pad(g.rnd.IntN(space), width)
		if _, ok := existing[id]; !ok {
			return id, nil
		}
	}
}

// UserID genera un id de usuario libre.
func (g *IDGenerator) UserID(existing map[string]struct{}) (string, error) {
	return g.Unique(UserIDPrefix, UserIDWidth, existing)
}

// OrderID genera un id de pedido libre.
func (g *IDGenerator) OrderID(existing map[string]struct{}) (string, error) {
	return g.Unique(OrderIDPrefix, OrderIDWidth, existing)
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
