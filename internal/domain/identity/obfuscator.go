package identity

import "strings"

const fillerAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Obfuscator transforma contraseñas de forma reversible para guardarlas en disco.
// No es criptografía: cualquiera con el formato puede revertirlo.
type Obfuscator struct {
	rnd RandSource
}

// NewObfuscator crea un Obfuscator. Si rnd es nil usa DefaultRand.
func NewObfuscator(rnd RandSource) *Obfuscator {
	if rnd == nil {
		rnd = DefaultRand()
	}
	return &Obfuscator{rnd: rnd}
}

// Obfuscate intercala dos caracteres de relleno antes de cada carácter de p y
// envuelve el resultado como "^...^$$". El relleno se consume entero, así que el
// segmento entre "^$" y "$" queda siempre vacío.
func (o *Obfuscator) Obfuscate(p string) string {
	plain := []rune(p)
	filler := make([]byte, 2*len(plain))
	for i := range filler {
		filler[i] = fillerAlphabet[o.rnd.IntN(len(fillerAlphabet))]
	}

	var b strings.Builder
	b.Grow(3*len(plain) + 4)
	b.WriteByte('^')
	for i, r := range plain {
		b.WriteByte(filler[2*i])
		b.WriteByte(filler[2*i+1])
		b.WriteRune(r)
	}
	b.WriteString("^$")
	b.WriteString(string(filler[2*len(plain):]))
	b.WriteByte('$')
	return b.String()
}

// Deobfuscate recupera el texto plano. Devuelve "" si el token no empieza por "^"
// o no termina en "$".
func (o *Obfuscator) Deobfuscate(token string) string {
	return Deobfuscate(token)
}

// Deobfuscate no depende de la fuente aleatoria; se expone también como función.
func Deobfuscate(token string) string {
	if !strings.HasPrefix(token, "^") || !strings.HasSuffix(token, "$") {
		return ""
	}
	body := []rune(token[1 : len(token)-1])
	out := make([]rune, 0, len(body)/3)
	for i := 0; i+2 < len(body); i += 3 {
		out = append(out, body[i+2])
	}
	return string(out)
}
