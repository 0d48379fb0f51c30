package flatfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-cli/internal/domain"
)

// Record mapa campo -> valor escalar (string, int64 o float64).
type Record map[string]any

// Codec serializa un Record como una línea JSON con las claves en orden fijo.
// Los enteros se escriben sin parte decimal y los flotantes siempre con ella (o con exponente),
// de modo que int64 y float64 sobreviven al viaje de ida y vuelta.
type Codec struct {
	order []string
	rank  map[string]int
}

// NewCodec crea un codec con el orden de campos del tipo de entidad.
func NewCodec(order []string) *Codec {
	rank := make(map[string]int, len(order))
	for i, k := range order {
		rank[k] = i
	}
	return &Codec{order: append([]string(nil), order...), rank: rank}
}

// Encode devuelve la línea sin salto final. Falla con domain.ErrUnsupportedValue ante
// flotantes no finitos o tipos no escalares.
func (c *Codec) Encode(r Record) (string, error) {
	keys := c.sortedKeys(r)
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		b.Write(kb)
		b.WriteByte(':')
		v, err := encodeValue(r[k])
		if err != nil {
			return "", fmt.Errorf("campo %s: %w", k, err)
		}
		b.WriteString(v)
	}
	b.WriteByte('}')
	return b.String(), nil
}

func (c *Codec) sortedKeys(r Record) []string {
	keys := make([]string, 0, len(r))
	var extra []string
	for _, k := range c.order {
		if _, ok := r[k]; ok {
			keys = append(keys, k)
		}
	}
	for k := range r {
		if _, ok := c.rank[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

func encodeValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		b, err := json.Marshal(x)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrUnsupportedValue, err)
		}
		return string(b), nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint:
		return encodeUint(uint64(x))
	case uint64:
		return encodeUint(x)
	case float32:
		return encodeFloat(float64(x))
	case float64:
		return encodeFloat(x)
	}
	return "", fmt.Errorf("%w: tipo %T", domain.ErrUnsupportedValue, v)
}

func encodeUint(u uint64) (string, error) {
	if u > math.MaxInt64 {
		return "", fmt.Errorf("%w: entero %d fuera de rango", domain.ErrUnsupportedValue, u)
	}
	return strconv.FormatUint(u, 10), nil
}

func encodeFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: flotante no finito", domain.ErrUnsupportedValue)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

// Decode interpreta una línea. Cualquier forma no válida devuelve un error que envuelve
// domain.ErrMalformedRecord.
func (c *Codec) Decode(line string) (Record, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, malformed("línea vacía")
	}
	if trimmed[0] != '{' {
		return nil, malformed("no es un objeto")
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, malformed(err.Error())
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, malformed("datos tras el objeto")
	}

	out := make(Record, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case string:
			out[k] = x
		case json.Number:
			n, err := decodeNumber(x)
			if err != nil {
				return nil, malformed(fmt.Sprintf("campo %s: %v", k, err))
			}
			out[k] = n
		default:
			return nil, malformed(fmt.Sprintf("campo %s: valor %T no escalar", k, v))
		}
	}
	return out, nil
}

func decodeNumber(n json.Number) (any, error) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return n.Float64()
	}
	return n.Int64()
}

func malformed(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrMalformedRecord, reason)
}
