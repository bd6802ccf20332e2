package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"healthcare-first-portal/internal/converter"
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"
	"healthcare-first-portal/internal/domain/repository"
	"healthcare-first-portal/internal/service"
	"healthcare-first-portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrLicenseAlreadyExists = errors.New("license number already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrProviderNotApproved  = errors.New("provider account is not approved")
	ErrAccountInactive      = errors.New("account is inactive")
	ErrProviderNotFound     = errors.New("provider not found")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
)

type AuthUsecase interface {
	RegisterProvider(ctx context.Context, req *dto.RegisterProviderRequest) (*dto.ProviderResponse, error)
	LoginProvider(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	GetProviderProfile(ctx context.Context, providerID uuid.UUID) (*dto.ProviderResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	providerRepo repository.ProviderRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		providerRepo: providerRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		jwtService:   jwtService,
		redisClient:  redisClient,
	}
}

func (u *authUsecase) RegisterProvider(ctx context.Context, req *dto.RegisterProviderRequest) (*dto.ProviderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	provider := &entity.Provider{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          strings.ToLower(req.Email),
		Password:       string(hashedPassword),
		Phone:          req.Phone,
		LicenseNumber:  req.LicenseNumber,
		Specialization: req.Specialization,
		ClinicName:     req.ClinicName,
		City:           req.City,
		State:          req.State,
		Status:         entity.ProviderStatusPending,
	}

	if err := u.providerRepo.Create(tx, provider); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create provider: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, provider.ID, entity.ActorTypeProvider, entity.AuditActionProviderRegister, entity.JSON{
		"email": provider.Email,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProviderToResponse(provider), nil
}

func (u *authUsecase) LoginProvider(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	provider, err := u.providerRepo.FindByEmail(u.db.WithContext(ctx), strings.ToLower(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find provider by email: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !provider.IsApproved() {
		return nil, ErrProviderNotApproved
	}

	token, err := u.issueTokens(ctx, provider.ID, provider.Email, jwt.RoleProvider)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(u.db.WithContext(ctx), provider.ID, entity.ActorTypeProvider, entity.AuditActionProviderLogin, nil)

	return &dto.LoginResponse{
		Provider: converter.ProviderToResponse(provider),
		Token:    *token,
	}, nil
}

func (u *authUsecase) LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), strings.ToLower(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if patient.Status != "active" {
		return nil, ErrAccountInactive
	}

	token, err := u.issueTokens(ctx, patient.ID, patient.Email, jwt.RolePatient)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(u.db.WithContext(ctx), patient.ID, entity.ActorTypePatient, entity.AuditActionPatientLogin, nil)

	return &dto.LoginResponse{
		Patient: converter.PatientToResponse(patient),
		Token:   *token,
	}, nil
}

func (u *authUsecase) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidRefreshToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	if err := u.redisClient.Get(ctx, refreshKey).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidRefreshToken
		}
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}

	// Rotate: the old refresh token is revoked before new tokens are issued
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke refresh token in Redis: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email, claims.Role)
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token from Redis: %+v", err)
		return err
	}

	// Refresh tokens carry their own token IDs; revoke them all for this user
	pattern := fmt.Sprintf("refresh_token:%s:*", userID.String())
	iter := u.redisClient.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := u.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			u.log.Warnf("Failed to delete refresh token from Redis: %+v", err)
			return err
		}
	}
	if err := iter.Err(); err != nil {
		u.log.Warnf("Failed to scan refresh tokens in Redis: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) GetProviderProfile(ctx context.Context, providerID uuid.UUID) (*dto.ProviderResponse, error) {
	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return converter.ProviderToResponse(provider), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
