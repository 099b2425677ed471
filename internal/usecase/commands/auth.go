package commands

import (
	"context"
	"crypto/subtle"

	"hotel-front-desk/internal/domain/customer"
	reqdto "hotel-front-desk/internal/handler/dto/request"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/config"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/pkg/jwt"
	"hotel-front-desk/internal/pkg/password"
	"hotel-front-desk/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	SubjectID uuid.UUID
	Role      jwt.Role
	Tokens    TokenPair
}

type AuthCommands interface {
	StaffLogin(ctx context.Context, req reqdto.StaffLoginRequest) (*LoginResult, error)
	RegisterCustomer(ctx context.Context, req reqdto.CustomerRegisterRequest) (*LoginResult, error)
	CustomerLogin(ctx context.Context, req reqdto.CustomerLoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error)
}

type authCommandsImpl struct {
	customers  CustomerStore
	jwtService *jwt.Service
	staffCfg   config.StaffConfig
	clock      clock.Clock
}

func NewAuthCommands(customers CustomerStore, jwtService *jwt.Service, staffCfg config.StaffConfig, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		customers:  customers,
		jwtService: jwtService,
		staffCfg:   staffCfg,
		clock:      clk,
	}
}

// StaffLogin authenticates against the shared portal password. The desk
// has no per-staff accounts, so the token subject is a fresh UUID per
// session.
func (a *authCommandsImpl) StaffLogin(_ context.Context, req reqdto.StaffLoginRequest) (*LoginResult, error) {
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.staffCfg.PortalPassword)) != 1 {
		return nil, errs.ErrInvalidCredentials
	}
	return a.issueTokens(uuid.New(), jwt.RoleStaff)
}

func (a *authCommandsImpl) RegisterCustomer(ctx context.Context, req reqdto.CustomerRegisterRequest) (*LoginResult, error) {
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	cust, err := customer.NewCustomer(req.Name, req.Email, req.Phone, hash, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := a.customers.Create(ctx, cust); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, err
	}

	return a.issueTokens(cust.ID(), jwt.RoleCustomer)
}

func (a *authCommandsImpl) CustomerLogin(ctx context.Context, req reqdto.CustomerLoginRequest) (*LoginResult, error) {
	cust, err := a.customers.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := password.ComparePassword(cust.PasswordHash(), req.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	return a.issueTokens(cust.ID(), jwt.RoleCustomer)
}

func (a *authCommandsImpl) RefreshToken(_ context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	role := jwt.Role(claims.Role)
	if !role.IsValid() {
		return nil, errs.ErrInvalidCredentials
	}

	result, err := a.issueTokens(claims.SubjectID, role)
	if err != nil {
		return nil, err
	}
	return &result.Tokens, nil
}

func (a *authCommandsImpl) GetCustomer(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	cust, err := a.customers.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return nil, err
	}
	return queries.NewCustomerView(cust), nil
}

func (a *authCommandsImpl) issueTokens(subjectID uuid.UUID, role jwt.Role) (*LoginResult, error) {
	access, err := a.jwtService.GenerateToken(subjectID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refresh, err := a.jwtService.GenerateRefreshToken(subjectID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &LoginResult{
		SubjectID: subjectID,
		Role:      role,
		Tokens:    TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}
