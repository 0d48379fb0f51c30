package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/flatfile"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

type fakeSource struct {
	batches []SourceBatch
	err     error
	calls   int
}

func (f *fakeSource) Load() ([]SourceBatch, error) {
	f.calls++
	return f.batches, f.err
}

func newRepo(t *testing.T) *flatfile.ProductRepo {
	t.Helper()
	return flatfile.NewProductRepository(filepath.Join(t.TempDir(), "products.txt"), logger.Nop())
}

func TestIngest_DeduplicaPrimeroGana(t *testing.T) {
	src := &fakeSource{batches: []SourceBatch{
		{File: "a.csv", Rows: 3, Skipped: 1, Products: []*entity.Product{{ID: "p1", Name: "primero"}, {ID: "p2", Name: "otro"}}},
		{File: "b.csv", Rows: 1, Products: []*entity.Product{{ID: "p1", Name: "segundo"}}},
	}}
	repo := newRepo(t)
	uc := NewCatalogUseCase(src, repo, logger.Nop())

	report, err := uc.Ingest()
	require.NoError(t, err)
	assert.Equal(t, 2, report.Files)
	assert.Equal(t, 4, report.Rows)
	assert.Equal(t, 2, report.Stored)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.Skipped)

	p, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "primero", p.Name)
}

func TestIngest_SinArchivosNoTocaCatalogo(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.ReplaceAll([]*entity.Product{{ID: "x"}}))
	uc := NewCatalogUseCase(&fakeSource{}, repo, logger.Nop())

	report, err := uc.Ingest()
	require.NoError(t, err)
	assert.Zero(t, report.Stored)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestIngest_ErrorDeFuente(t *testing.T) {
	uc := NewCatalogUseCase(&fakeSource{err: errors.New("boom")}, newRepo(t), logger.Nop())
	_, err := uc.Ingest()
	assert.Error(t, err)
}

func TestEnsureCatalog_SoloSiVacio(t *testing.T) {
	src := &fakeSource{batches: []SourceBatch{{File: "a.csv", Rows: 1, Products: []*entity.Product{{ID: "p1"}}}}}
	uc := NewCatalogUseCase(src, newRepo(t), logger.Nop())

	report, err := uc.EnsureCatalog()
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.Stored)

	report, err = uc.EnsureCatalog()
	require.NoError(t, err)
	assert.Nil(t, report)
	assert.Equal(t, 1, src.calls)
}
