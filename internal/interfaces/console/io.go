package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const rule = "========================================"

// IO concentra toda la lectura y escritura de la consola.
type IO struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewIO crea la interfaz sobre in/out.
func NewIO(in io.Reader, out io.Writer) *IO {
	return &IO{in: bufio.NewScanner(in), out: out}
}

// ReadArgs muestra prompt y devuelve exactamente n palabras (las que falten quedan vacías;
// las que sobren se descartan). ok es false al agotarse la entrada.
func (c *IO) ReadArgs(prompt string, n int) (args []string, ok bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return make([]string, n), false
	}
	fields := strings.Fields(c.in.Text())
	args = make([]string, n)
	copy(args, fields)
	return args, true
}

// MainMenu menú sin sesión.
func (c *IO) MainMenu() {
	c.menu("Bienvenido a la tienda",
		"1. Iniciar sesión",
		"2. Registrarse",
		"3. Salir",
	)
}

// AdminMenu menú del administrador.
func (c *IO) AdminMenu() {
	c.menu("Panel de administración",
		"1. Ver productos (ej. '1' o '1 2' para la página 2)",
		"2. Ver clientes (ej. '2' o '2 3' para la página 3)",
		"3. Ver pedidos (ej. '3' o '3 4' para la página 4)",
		"4. Generar datos de prueba",
		"5. Generar todas las figuras estadísticas",
		"6. Borrar todos los datos",
		"7. Borrar cliente (ej. '7 u_0123456789')",
		"8. Borrar producto (ej. '8 <pro_id>')",
		"9. Borrar pedido (ej. '9 o_01234')",
		"10. Reimportar catálogo desde CSV",
		"11. Cerrar sesión",
	)
}

// CustomerMenu menú del cliente.
func (c *IO) CustomerMenu() {
	c.menu("Panel de cliente",
		"1. Ver perfil",
		"2. Actualizar perfil (ej. '2 email nuevo@correo.com')",
		"3. Ver productos (ej. '3', '3 2' para la página 2 o '3 palabra' para buscar)",
		"4. Ver producto (ej. '4 <pro_id>')",
		"5. Comprar producto (ej. '5 <pro_id>')",
		"6. Ver historial de pedidos (ej. '6' o '6 2')",
		"7. Generar mi figura de consumo",
		"8. Cerrar sesión",
	)
}

func (c *IO) menu(title string, options ...string) {
	fmt.Fprintf(c.out, "\n%s\n    %s\n%s\n", rule, title, rule)
	for _, o := range options {
		fmt.Fprintln(c.out, o)
	}
	fmt.Fprintln(c.out, strings.Repeat("-", len(rule)))
}

// ShowList imprime una página numerada de elementos.
func (c *IO) ShowList(kind string, items []string, page, totalPages int) {
	if len(items) == 0 {
		fmt.Fprintf(c.out, "\nNo se encontraron %s.\n", kind)
		return
	}
	fmt.Fprintf(c.out, "\n--- %s ---\n", kind)
	fmt.Fprintf(c.out, "Página: %d/%d\n\n", page, totalPages)
	for i, it := range items {
		fmt.Fprintf(c.out, "[%d] %s\n", i+1, it)
	}
	fmt.Fprintf(c.out, "\n--- Fin de %s ---\n", kind)
}

// PrintError mensaje de error con su origen.
func (c *IO) PrintError(source, msg string) {
	fmt.Fprintf(c.out, "\n[ERROR] en %s: %s\n", source, msg)
}

// PrintMessage mensaje informativo.
func (c *IO) PrintMessage(msg string) {
	fmt.Fprintf(c.out, "\n[INFO] %s\n", msg)
}

// PrintObject imprime un objeto ya formateado.
func (c *IO) PrintObject(s string) {
	fmt.Fprintf(c.out, "\n%s\n", s)
}
