package auth

import (
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/identity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// AuthUseCase autenticación por nombre de usuario y contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, log: log}
}

// Login devuelve el usuario tipado (admin o cliente). Usuario inexistente y contraseña
// incorrecta devuelven el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(username, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByName(username)
	if err != nil {
		return nil, err
	}
	if user == nil || identity.Deobfuscate(user.Password) != password {
		uc.log.Info().Str("user_name", username).Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	uc.log.Info().Str("user_id", user.ID).Str("user_role", string(user.Role)).Msg("login correcto")
	return user, nil
}
