package flatfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jhoicas/tienda-cli/pkg/logger"
)

const maxLineBytes = 1 << 20

// Store persiste registros de un único tipo de entidad, uno por línea, en un archivo propio.
// No guarda nada en memoria entre llamadas: cada operación relee el archivo.
type Store struct {
	path  string
	codec *Codec
	log   *logger.Logger
}

// NewStore crea un Store sobre path. No toca el disco hasta la primera operación.
func NewStore(path string, codec *Codec, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{path: path, codec: codec, log: log}
}

// Path ruta del archivo gestionado.
func (s *Store) Path() string { return s.path }

// LoadAll devuelve todos los registros válidos en orden de archivo. Las líneas mal formadas
// se registran y se omiten. Si el archivo no existe lo crea vacío.
func (s *Store) LoadAll() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.ensureFile(); err != nil {
			return nil, err
		}
		return []Record{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "abrir %s", s.path)
	}
	defer f.Close()

	out := []Record{}
	rd := bufio.NewReaderSize(f, 64*1024)
	lineNo := 0
	for {
		line, oversized, err := readLine(rd, maxLineBytes)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "leer %s", s.path)
		}
		lineNo++
		if oversized {
			s.log.Warn().Str("file", s.path).Int("line", lineNo).Int("limit", maxLineBytes).Msg("registro omitido: línea demasiado larga")
			continue
		}
		rec, err := s.codec.Decode(string(line))
		if err != nil {
			s.log.Warn().Str("file", s.path).Int("line", lineNo).Err(err).Msg("registro omitido")
			continue
		}
		out = append(out, rec)
	}
	s.log.Trace().Str("file", s.path).Int("lines", lineNo).Int("records", len(out)).Msg("tabla cargada")
	return out, nil
}

// readLine devuelve la siguiente línea sin el salto. Si supera limit se descarta el
// resto de la línea y oversized es true. io.EOF solo cuando no quedan líneas.
func readLine(rd *bufio.Reader, limit int) (line []byte, oversized bool, err error) {
	for {
		chunk, isPrefix, rerr := rd.ReadLine()
		if rerr != nil {
			if errors.Is(rerr, io.EOF) && (len(line) > 0 || oversized) {
				return line, oversized, nil
			}
			return nil, false, rerr
		}
		if !oversized {
			if len(line)+len(chunk) > limit {
				oversized = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, oversized, nil
		}
	}
}

// Filter carga todo y conserva los registros que cumplen pred.
func (s *Store) Filter(pred func(Record) bool) ([]Record, error) {
	all, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(all))
	for _, r := range all {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Append agrega registros al final sin comprobar unicidad.
func (s *Store) Append(records ...Record) error {
	if len(records) == 0 {
		return nil
	}
	lines := make([]byte, 0, 128*len(records))
	for _, r := range records {
		line, err := s.codec.Encode(r)
		if err != nil {
			return err
		}
		lines = append(lines, line...)
		lines = append(lines, '\n')
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "abrir %s para agregar", s.path)
	}
	if _, err := f.Write(lines); err != nil {
		f.Close()
		return errors.Wrapf(err, "escribir %s", s.path)
	}
	return errors.Wrapf(f.Close(), "cerrar %s", s.path)
}

// Rewrite reemplaza el contenido completo por records, en ese orden. Escribe un temporal
// en el mismo directorio y lo renombra sobre el destino.
func (s *Store) Rewrite(records []Record) error {
	var buf []byte
	for _, r := range records {
		line, err := s.codec.Encode(r)
		if err != nil {
			return err
		}
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	if err := s.ensureDir(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "crear temporal para %s", s.path)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		cleanup()
		return errors.Wrapf(err, "escribir temporal %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return errors.Wrapf(err, "sincronizar temporal %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrapf(err, "cerrar temporal %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return errors.Wrapf(err, "permisos de %s", tmpName)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		cleanup()
		return errors.Wrapf(err, "reemplazar %s", s.path)
	}
	return nil
}

// Truncate borra todos los registros.
func (s *Store) Truncate() error { return s.Rewrite(nil) }

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	return errors.Wrapf(os.MkdirAll(dir, 0o755), "crear directorio %s", dir)
}

func (s *Store) ensureFile() error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "crear %s", s.path)
	}
	return errors.Wrapf(f.Close(), "cerrar %s", s.path)
}
