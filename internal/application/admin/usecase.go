package admin

import (
	"fmt"
	"time"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/identity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// Credentials usuario y contraseña del administrador sembrado.
type Credentials struct {
	Username string
	Password string
}

// AdminUseCase alta idempotente del administrador.
type AdminUseCase struct {
	userRepo repository.UserRepository
	obf      *identity.Obfuscator
	ids      *identity.IDGenerator
	creds    Credentials
	log      *logger.Logger
	now      func() time.Time
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(userRepo repository.UserRepository, obf *identity.Obfuscator, ids *identity.IDGenerator, creds Credentials, log *logger.Logger) *AdminUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AdminUseCase{userRepo: userRepo, obf: obf, ids: ids, creds: creds, log: log, now: time.Now}
}

// RegisterAdmin crea el administrador si su nombre de usuario no existe. Devuelve true si lo creó.
func (uc *AdminUseCase) RegisterAdmin() (bool, error) {
	if !identity.ValidUsername(uc.creds.Username) {
		return false, domain.NewValidationError(entity.FieldUserName, "formato de usuario")
	}
	if !identity.ValidPassword(uc.creds.Password) {
		return false, domain.NewValidationError(entity.FieldUserPassword, "formato de contraseña")
	}
	existing, err := uc.userRepo.GetByName(uc.creds.Username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	ids, err := uc.userRepo.IDs()
	if err != nil {
		return false, err
	}
	id, err := uc.ids.UserID(ids)
	if err != nil {
		return false, fmt.Errorf("generar id de admin: %w", err)
	}
	admin := entity.NewAdmin(id, uc.creds.Username, uc.obf.Obfuscate(uc.creds.Password), entity.FormatTimestamp(uc.now()))
	if err := uc.userRepo.Create(admin); err != nil {
		return false, err
	}
	uc.log.Info().Str("user_id", id).Str("user_name", admin.Name).Msg("administrador registrado")
	return true, nil
}
