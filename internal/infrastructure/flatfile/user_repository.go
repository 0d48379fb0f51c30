package flatfile

import (
	"fmt"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre archivo plano.
// Los registros con rol desconocido se omiten al leer y se conservan intactos al reescribir.
type UserRepo struct {
	store *Store
	log   *logger.Logger
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(path string, log *logger.Logger) *UserRepo {
	if log == nil {
		log = logger.Nop()
	}
	return &UserRepo{store: NewStore(path, NewCodec(entity.RoleCustomer.Fields()), log), log: log}
}

func userToRecord(u *entity.User) Record {
	values := map[string]string{
		entity.FieldUserID:       u.ID,
		entity.FieldUserName:     u.Name,
		entity.FieldUserPassword: u.Password,
		entity.FieldRegisterTime: u.RegisterTime,
		entity.FieldUserRole:     string(u.Role),
		entity.FieldUserEmail:    u.Email,
		entity.FieldUserMobile:   u.Mobile,
	}
	rec := make(Record, len(values))
	for _, f := range u.Role.Fields() {
		rec[f] = values[f]
	}
	return rec
}

func recordToUser(r Record) (*entity.User, error) {
	role, err := entity.ParseRole(str(r, entity.FieldUserRole))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	id := str(r, entity.FieldUserID)
	if id == "" {
		return nil, fmt.Errorf("%w: usuario sin %s", domain.ErrMalformedRecord, entity.FieldUserID)
	}
	name := str(r, entity.FieldUserName)
	pwd := str(r, entity.FieldUserPassword)
	reg := str(r, entity.FieldRegisterTime)
	if role == entity.RoleAdmin {
		return entity.NewAdmin(id, name, pwd, reg), nil
	}
	return entity.NewCustomer(id, name, pwd, reg, str(r, entity.FieldUserEmail), str(r, entity.FieldUserMobile)), nil
}

// List devuelve todos los usuarios válidos en orden de archivo.
func (r *UserRepo) List() ([]*entity.User, error) {
	recs, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(recs))
	for _, rec := range recs {
		u, err := recordToUser(rec)
		if err != nil {
			r.log.Warn().Str("file", r.store.Path()).Err(err).Msg("usuario omitido")
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepo) find(pred func(*entity.User) bool) (*entity.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if pred(u) {
			return u, nil
		}
	}
	return nil, nil
}

// Create agrega un usuario. La unicidad la garantiza el caso de uso.
func (r *UserRepo) Create(user *entity.User) error {
	if err := r.store.Append(userToRecord(user)); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

// GetByName obtiene un usuario por nombre de usuario.
func (r *UserRepo) GetByName(name string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Name == name })
}

// ListCustomers página de clientes en orden de registro.
func (r *UserRepo) ListCustomers(page, size int) (repository.Page[*entity.User], error) {
	users, err := r.List()
	if err != nil {
		return repository.Page[*entity.User]{}, err
	}
	customers := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if u.IsCustomer() {
			customers = append(customers, u)
		}
	}
	return Paginate(customers, page, size), nil
}

// Update reemplaza el registro con el mismo ID.
func (r *UserRepo) Update(user *entity.User) error {
	recs, err := r.store.LoadAll()
	if err != nil {
		return err
	}
	found := false
	for i, rec := range recs {
		if str(rec, entity.FieldUserID) == user.ID {
			recs[i] = userToRecord(user)
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	if err := r.store.Rewrite(recs); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina el usuario con ese ID.
func (r *UserRepo) Delete(id string) error {
	n, err := r.deleteWhere(func(rec Record) bool { return str(rec, entity.FieldUserID) == id })
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCustomers elimina todos los clientes; administradores y registros desconocidos se conservan.
func (r *UserRepo) DeleteCustomers() (int, error) {
	return r.deleteWhere(func(rec Record) bool {
		return str(rec, entity.FieldUserRole) == string(entity.RoleCustomer)
	})
}

func (r *UserRepo) deleteWhere(match func(Record) bool) (int, error) {
	recs, err := r.store.LoadAll()
	if err != nil {
		return 0, err
	}
	keep := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if !match(rec) {
			keep = append(keep, rec)
		}
	}
	removed := len(recs) - len(keep)
	if removed == 0 {
		return 0, nil
	}
	if err := r.store.Rewrite(keep); err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return removed, nil
}

// IDs conjunto de IDs presentes, incluidos los de registros con rol desconocido.
func (r *UserRepo) IDs() (map[string]struct{}, error) {
	recs, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		if id := str(rec, entity.FieldUserID); id != "" {
			ids[id] = struct{}{}
		}
	}
	return ids, nil
}
