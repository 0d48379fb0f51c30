package flatfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "sub", "items.txt"), NewCodec([]string{"id", "n"}), logger.Nop())
}

func TestStore_LoadAllCreaArchivo(t *testing.T) {
	s := newTestStore(t)

	recs, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestStore_AppendYLoad(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(Record{"id": "a", "n": int64(1)}))
	require.NoError(t, s.Append(Record{"id": "b", "n": int64(2)}, Record{"id": "c", "n": int64(3)}))

	recs, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "a", recs[0]["id"])
	assert.Equal(t, "c", recs[2]["id"])
}

func TestStore_OmiteLineasMalFormadas(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "items.txt")
	content := strings.Join([]string{
		`{"id":"a","n":1}`,
		`basura`,
		``,
		`{"id":"b","n":2}`,
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	s := NewStore(path, NewCodec([]string{"id", "n"}), logger.NewWithWriter(&buf, "warn"))

	recs, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[1]["id"])
	assert.Contains(t, buf.String(), `"line":2`)
	assert.Contains(t, buf.String(), `"line":3`)
}

func TestStore_RewriteReemplazaYNoDejaTemporales(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(Record{"id": "a"}, Record{"id": "b"}))

	require.NoError(t, s.Rewrite([]Record{{"id": "z"}}))

	recs, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "z", recs[0]["id"])

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_RewriteConValorInvalidoNoTocaArchivo(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(Record{"id": "a"}))

	err := s.Rewrite([]Record{{"id": true}})
	require.Error(t, err)

	recs, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "a", recs[0]["id"])
}

func TestStore_FilterYTruncate(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(Record{"id": "a", "n": int64(1)}, Record{"id": "b", "n": int64(2)}))

	recs, err := s.Filter(func(r Record) bool { return r["n"] == int64(2) })
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "b", recs[0]["id"])

	require.NoError(t, s.Truncate())
	recs, err = s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestStore_OmiteLineaDemasiadoLarga(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "items.txt")
	content := `{"id":"a"}` + "\n" + strings.Repeat("x", 2*maxLineBytes) + "\n" + `{"id":"b"}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	s := NewStore(path, NewCodec([]string{"id", "n"}), logger.NewWithWriter(&buf, "warn"))

	recs, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0]["id"])
	assert.Equal(t, "b", recs[1]["id"])
	assert.Contains(t, buf.String(), `"line":2`)
}

func TestStore_UltimaLineaSinSalto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"a"}`+"\n"+`{"id":"b"}`), 0o644))
	s := NewStore(path, NewCodec([]string{"id", "n"}), logger.Nop())

	recs, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[1]["id"])
}

func TestStore_TrazaDeCarga(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"a"}`+"\n"), 0o644))
	s := NewStore(path, NewCodec([]string{"id", "n"}), logger.NewWithWriter(&buf, "trace"))

	_, err := s.LoadAll()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "tabla cargada")
	assert.Contains(t, buf.String(), `"records":1`)
}
