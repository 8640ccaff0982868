package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/dto"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/policy"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/repository"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/password"
)

// Passwords por defecto cuando el admin crea cuentas sin indicar uno
// (comportamiento histórico de la API; el usuario debe cambiarlo al entrar).
const (
	defaultVendorPassword   = "vendor123"
	defaultEmployeePassword = "employee123"
)

// AccountUseCase gestión de cuentas vendor/employee y perfil propio.
// Toda decisión de permiso pasa por el paquete policy; aquí no se
// re-derivan roles.
type AccountUseCase struct {
	userRepo repository.UserRepository
}

// NewAccountUseCase construye el caso de uso de cuentas.
func NewAccountUseCase(userRepo repository.UserRepository) *AccountUseCase {
	return &AccountUseCase{userRepo: userRepo}
}

// ListByRole lista cuentas de un rol (vendors o employees) para el admin.
func (uc *AccountUseCase) ListByRole(actor *entity.User, role string, limit, offset int) ([]*dto.UserResponse, error) {
	action := policy.ActionVendorList
	if role == entity.RoleEmployee {
		action = policy.ActionEmployeeList
	}
	if err := policy.Require(actor, action); err != nil {
		return nil, err
	}
	list, err := uc.userRepo.ListByRole(role, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// CreateVendor alta de vendor (solo admin). Sin password usa el por defecto.
func (uc *AccountUseCase) CreateVendor(actor *entity.User, in dto.CreateVendorRequest) (*dto.UserResponse, error) {
	if err := policy.Require(actor, policy.ActionVendorCreate); err != nil {
		return nil, err
	}
	pass := in.Password
	if pass == "" {
		pass = defaultVendorPassword
	}
	return uc.createAccount(actor, in.Name, in.Email, pass, entity.RoleVendor, "")
}

// CreateEmployee alta de employee. pathVendorID viene de la ruta
// /vendors/:vendorId/employees y debe coincidir con el vendor autenticado;
// un admin puede indicar cualquier vendor (o ninguno).
func (uc *AccountUseCase) CreateEmployee(actor *entity.User, in dto.CreateEmployeeRequest, pathVendorID string) (*dto.UserResponse, error) {
	if err := policy.Require(actor, policy.ActionEmployeeCreate); err != nil {
		return nil, err
	}
	vendorID := in.VendorID
	if pathVendorID != "" {
		vendorID = pathVendorID
	}
	if actor.Role == entity.RoleVendor {
		if pathVendorID != "" && pathVendorID != actor.ID {
			return nil, domain.ErrForbidden
		}
		vendorID = actor.ID // auto-estampado: un vendor solo crea bajo sí mismo
	}
	if vendorID != "" && vendorID != actor.ID {
		owner, err := uc.userRepo.GetByID(vendorID)
		if err != nil {
			return nil, err
		}
		if owner == nil || owner.Role != entity.RoleVendor {
			return nil, domain.ErrInvalidInput
		}
	}
	pass := in.Password
	if pass == "" {
		pass = defaultEmployeePassword
	}
	return uc.createAccount(actor, in.Name, in.Email, pass, entity.RoleEmployee, vendorID)
}

func (uc *AccountUseCase) createAccount(actor *entity.User, name, email, plainPass, role, vendorID string) (*dto.UserResponse, error) {
	normalized := entity.NormalizeEmail(email)
	existing, err := uc.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(plainPass)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        normalized,
		PasswordHash: hash,
		Role:         role,
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

// UpdateAccount actualización por admin de un vendor o employee.
// El rol nunca puede escalarse a admin; cambiar el vendor dueño exige que
// la referencia resuelva a una cuenta con rol vendor.
func (uc *AccountUseCase) UpdateAccount(actor *entity.User, id string, in dto.UpdateAccountRequest) error {
	target, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	action := policy.ActionVendorUpdate
	if target.Role == entity.RoleEmployee {
		action = policy.ActionEmployeeUpdate
	}
	if err := policy.Require(actor, action); err != nil {
		return err
	}
	if actor.Role != entity.RoleAdmin {
		// Esta vía es la administrativa; vendors y employees usan la limitada.
		return domain.ErrForbidden
	}

	if in.Role != nil {
		if *in.Role == entity.RoleAdmin || !entity.ValidRole(*in.Role) {
			return domain.ErrForbidden
		}
		target.Role = *in.Role
	}
	if in.Email != nil {
		normalized := entity.NormalizeEmail(*in.Email)
		if normalized != target.Email {
			existing, err := uc.userRepo.GetByEmail(normalized)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != target.ID {
				return domain.ErrEmailAlreadyExists
			}
			target.Email = normalized
		}
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return err
		}
		target.PasswordHash = hash
	}
	if in.VendorID != nil {
		if *in.VendorID != "" {
			owner, err := uc.userRepo.GetByID(*in.VendorID)
			if err != nil {
				return err
			}
			if owner == nil || owner.Role != entity.RoleVendor {
				return domain.ErrInvalidInput
			}
		}
		target.VendorID = *in.VendorID
	}
	if in.Name != nil {
		target.Name = *in.Name
	}
	if in.Blocked != nil {
		target.Blocked = *in.Blocked
	}
	applyProfileFields(target, in)

	target.UpdatedAt = time.Now()
	return uc.userRepo.Update(target)
}

func applyProfileFields(u *entity.User, in dto.UpdateAccountRequest) {
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.MobileNumber != nil {
		u.MobileNumber = *in.MobileNumber
	}
	if in.WhatsappNumber != nil {
		u.WhatsappNumber = *in.WhatsappNumber
	}
	if in.BusinessName != nil {
		u.BusinessName = *in.BusinessName
	}
	if in.BusinessAddress != nil {
		u.BusinessAddress = *in.BusinessAddress
	}
	if in.BusinessCity != nil {
		u.BusinessCity = *in.BusinessCity
	}
	if in.City != nil {
		u.City = *in.City
	}
	if in.DocumentNumber != nil {
		u.DocumentNumber = *in.DocumentNumber
	}
}

// UpdateEmployeeLimited actualización restringida: vendor sobre sus propios
// employees, o el employee sobre sí mismo. Nunca toca rol, bloqueo ni dueño.
func (uc *AccountUseCase) UpdateEmployeeLimited(actor *entity.User, id string, in dto.UpdateEmployeeLimitedRequest) error {
	if err := policy.Require(actor, policy.ActionEmployeeUpdate); err != nil {
		return err
	}
	target, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	if err := policy.CanManageEmployee(actor, target); err != nil {
		return err
	}
	if in.Name != nil {
		target.Name = *in.Name
	}
	if in.MobileNumber != nil {
		target.MobileNumber = *in.MobileNumber
	}
	if in.WhatsappNumber != nil {
		target.WhatsappNumber = *in.WhatsappNumber
	}
	if in.City != nil {
		target.City = *in.City
	}
	if in.DocumentNumber != nil {
		target.DocumentNumber = *in.DocumentNumber
	}
	target.UpdatedAt = time.Now()
	return uc.userRepo.Update(target)
}

// DeleteAccount borrado por admin. Tras el borrado, cualquier token vigente
// de la cuenta deja de pasar el gate de autenticación.
func (uc *AccountUseCase) DeleteAccount(actor *entity.User, id string) error {
	target, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	action := policy.ActionVendorDelete
	if target.Role == entity.RoleEmployee {
		action = policy.ActionEmployeeDelete
	}
	if err := policy.Require(actor, action); err != nil {
		return err
	}
	return uc.userRepo.Delete(id)
}

// SetBlocked bloqueo/desbloqueo por admin. El bloqueo niega la emisión de
// sesión y corta el gate de autenticación aun con token válido.
func (uc *AccountUseCase) SetBlocked(actor *entity.User, id string, blocked bool) error {
	target, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	action := policy.ActionVendorBlock
	if target.Role == entity.RoleEmployee {
		action = policy.ActionEmployeeBlock
	}
	if err := policy.Require(actor, action); err != nil {
		return err
	}
	return uc.userRepo.SetBlocked(id, blocked)
}

// GetProfile perfil propio en la forma del endpoint /me.
func (uc *AccountUseCase) GetProfile(actor *entity.User) (*dto.ProfileResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToProfileResponse(user), nil
}

// UpdateProfile autoservicio: cualquier cuenta edita el subconjunto
// restringido de su propio perfil. Rol y bloqueo quedan fuera siempre.
func (uc *AccountUseCase) UpdateProfile(actor *entity.User, in dto.UpdateProfileRequest) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(actor.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	normalized := entity.NormalizeEmail(in.Email)
	if normalized != user.Email {
		existing, err := uc.userRepo.GetByEmail(normalized)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != user.ID {
			return domain.ErrEmailAlreadyExists
		}
		user.Email = normalized
	}
	user.Name = in.Name
	user.Username = in.Username
	user.MobileNumber = in.Profile.Phone
	user.WhatsappNumber = in.Profile.WhatsappNumber
	user.BusinessName = in.Profile.BusinessName
	user.BusinessAddress = in.Profile.Address
	user.LinkedinURL = in.Profile.LinkedinURL
	user.InstagramURL = in.Profile.InstagramURL
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}
