package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/policy"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/repository"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/jwt"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/password"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: login y registro autenticado.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica credenciales y emite un token de 7 días.
// Credenciales inválidas y cuenta inexistente responden igual (ErrUnauthorized);
// una cuenta bloqueada verifica el password pero no recibe sesión (ErrBlocked).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	if user.Blocked {
		return nil, domain.ErrBlocked
	}
	token, err := jwt.Issue(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.ToUserResponse(user),
	}, nil
}

// Register crea una cuenta desde el endpoint autenticado de registro.
// Reglas: jamás rol admin; un vendor solo crea employees y queda estampado
// como su dueño; un admin puede indicar el vendor dueño (debe ser un vendor).
func (uc *AuthUseCase) Register(actor *entity.User, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := policy.Require(actor, policy.ActionRegister); err != nil {
		return nil, err
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if err := policy.CanRegisterRole(actor.Role, in.Role); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	vendorID := ""
	if in.Role == entity.RoleEmployee {
		if actor.Role == entity.RoleVendor {
			vendorID = actor.ID
		} else if in.VendorID != "" {
			owner, err := uc.userRepo.GetByID(in.VendorID)
			if err != nil {
				return nil, err
			}
			if owner == nil || owner.Role != entity.RoleVendor {
				return nil, domain.ErrInvalidInput
			}
			vendorID = owner.ID
		}
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedBy:    actor.ID,
		VendorID:     vendorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}
