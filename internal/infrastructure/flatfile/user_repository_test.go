package flatfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func TestUserRepo_PersisteSoloCamposDelRol(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	repo := NewUserRepository(path, logger.Nop())

	admin := entity.NewAdmin("u_0000000001", "admin", "^x^$$", "01-01-2024_10:00:00")
	admin.Email = "no@debe.persistir"
	require.NoError(t, repo.Create(admin))
	require.NoError(t, repo.Create(entity.NewCustomer("u_0000000002", "alice_w", "^y^$$", "01-01-2024_10:00:00", "a@b.com", "0412345678")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "no@debe.persistir")

	got, err := repo.GetByName("alice_w")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsCustomer())
	assert.Equal(t, "0412345678", got.Mobile)

	got, err = repo.GetByID("u_0000000001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsAdmin())
	assert.Empty(t, got.Email)
}

func TestUserRepo_RolDesconocidoSeConserva(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"user_id":"u_9","user_name":"ghost","user_role":"vendor"}`+"\n"+
			`{"user_id":"u_1","user_name":"cliente","user_role":"customer"}`+"\n"), 0o644))
	repo := NewUserRepository(path, logger.Nop())

	users, err := repo.List()
	require.NoError(t, err)
	require.Len(t, users, 1)

	n, err := repo.DeleteCustomers()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ids, err := repo.IDs()
	require.NoError(t, err)
	assert.Contains(t, ids, "u_9")
}

func TestUserRepo_UpdateYDelete(t *testing.T) {
	repo := NewUserRepository(filepath.Join(t.TempDir(), "users.txt"), logger.Nop())
	c := entity.NewCustomer("u_1", "alice_w", "^y^$$", "01-01-2024_10:00:00", "a@b.com", "0412345678")
	require.NoError(t, repo.Create(c))

	c.Email = "nuevo@b.com"
	require.NoError(t, repo.Update(c))
	got, err := repo.GetByID("u_1")
	require.NoError(t, err)
	assert.Equal(t, "nuevo@b.com", got.Email)

	err = repo.Update(entity.NewCustomer("u_x", "nadie", "", "", "", ""))
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, repo.Delete("u_1"))
	assert.True(t, errors.Is(repo.Delete("u_1"), domain.ErrNotFound))
}

func TestUserRepo_ListCustomersExcluyeAdmins(t *testing.T) {
	repo := NewUserRepository(filepath.Join(t.TempDir(), "users.txt"), logger.Nop())
	require.NoError(t, repo.Create(entity.NewAdmin("u_0", "admin", "", "")))
	for _, id := range []string{"u_1", "u_2", "u_3"} {
		require.NoError(t, repo.Create(entity.NewCustomer(id, "cliente", "", "", "", "")))
	}

	p, err := repo.ListCustomers(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalPages)
	require.Len(t, p.Items, 2)
	assert.Equal(t, "u_1", p.Items[0].ID)
}
