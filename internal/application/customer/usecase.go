package customer

import (
	"fmt"
	"time"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/identity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// CustomerUseCase aplica reglas de negocio para clientes.
type CustomerUseCase struct {
	userRepo  repository.UserRepository
	obf       *identity.Obfuscator
	ids       *identity.IDGenerator
	validator *identity.StructValidator
	log       *logger.Logger
	now       func() time.Time
}

// NewCustomerUseCase construye el caso de uso con el puerto de persistencia.
func NewCustomerUseCase(userRepo repository.UserRepository, obf *identity.Obfuscator, ids *identity.IDGenerator, validator *identity.StructValidator, log *logger.Logger) *CustomerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CustomerUseCase{userRepo: userRepo, obf: obf, ids: ids, validator: validator, log: log, now: time.Now}
}

// Register valida, comprueba unicidad del nombre y persiste el cliente con la contraseña ofuscada.
func (uc *CustomerUseCase) Register(in dto.RegisterCustomerRequest) (*dto.UserResponse, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByName(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrDuplicate, in.Username)
	}
	ids, err := uc.userRepo.IDs()
	if err != nil {
		return nil, err
	}
	id, err := uc.ids.UserID(ids)
	if err != nil {
		return nil, fmt.Errorf("generar id de cliente: %w", err)
	}
	c := entity.NewCustomer(id, in.Username, uc.obf.Obfuscate(in.Password), entity.FormatTimestamp(uc.now()), in.Email, in.Mobile)
	if err := uc.userRepo.Create(c); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", id).Str("user_name", c.Name).Msg("cliente registrado")
	return dto.FromUser(c), nil
}

// UpdateProfile cambia password, email o mobile de un cliente. El valor se revalida y la
// contraseña se vuelve a ofuscar. Si falla nada se escribe.
func (uc *CustomerUseCase) UpdateProfile(in dto.UpdateProfileRequest) error {
	field, err := entity.ParseProfileField(in.Field)
	if err != nil {
		return err
	}
	value := in.Value
	switch field {
	case entity.ProfilePassword:
		if !identity.ValidPassword(value) {
			return domain.NewValidationError(string(field), "formato de contraseña")
		}
		value = uc.obf.Obfuscate(value)
	case entity.ProfileEmail:
		if !identity.ValidEmail(value) {
			return domain.NewValidationError(string(field), "formato de email")
		}
	case entity.ProfileMobile:
		if !identity.ValidMobile(value) {
			return domain.NewValidationError(string(field), "formato de móvil")
		}
	}

	c, err := uc.getCustomer(in.CustomerID)
	if err != nil {
		return err
	}
	field.Apply(c, value)
	if err := uc.userRepo.Update(c); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", c.ID).Str("field", string(field)).Msg("perfil actualizado")
	return nil
}

// Get devuelve el perfil de un cliente.
func (uc *CustomerUseCase) Get(id string) (*dto.UserResponse, error) {
	c, err := uc.getCustomer(id)
	if err != nil {
		return nil, err
	}
	return dto.FromUser(c), nil
}

func (uc *CustomerUseCase) getCustomer(id string) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsCustomer() {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return u, nil
}

// Delete elimina un cliente. Los administradores no se borran por esta vía.
func (uc *CustomerUseCase) Delete(id string) error {
	if _, err := uc.getCustomer(id); err != nil {
		return err
	}
	if err := uc.userRepo.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", id).Msg("cliente eliminado")
	return nil
}

// List página de clientes.
func (uc *CustomerUseCase) List(page, size int) (*dto.PageResponse[*dto.UserResponse], error) {
	p, err := uc.userRepo.ListCustomers(page, size)
	if err != nil {
		return nil, err
	}
	return &dto.PageResponse[*dto.UserResponse]{
		Items:      dto.MapSlice(p.Items, dto.FromUser),
		Page:       p.Number,
		TotalPages: p.TotalPages,
	}, nil
}

// DeleteAll elimina todos los clientes y conserva los administradores.
func (uc *CustomerUseCase) DeleteAll() (int, error) {
	n, err := uc.userRepo.DeleteCustomers()
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int("count", n).Msg("clientes eliminados")
	return n, nil
}
