package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"resort-backend/internal/auth"
	"resort-backend/internal/cache"
	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
)

// LoginResult is either a completed login (Token and User set) or a 2FA
// challenge (RequiresTOTP with the short-lived TempToken)
type LoginResult struct {
	Token        string       `json:"token,omitempty"`
	User         *models.User `json:"user,omitempty"`
	RequiresTOTP bool         `json:"requires_totp,omitempty"`
	TempToken    string       `json:"temp_token,omitempty"`
}

type UserService struct {
	repo       *repositories.UserRepository
	audit      *repositories.AuditRepository
	totpSvc    *TOTPService
	jwtManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, audit *repositories.AuditRepository, totpSvc *TOTPService, jwtManager *auth.JWTManager) *UserService {
	return &UserService{repo: repo, audit: audit, totpSvc: totpSvc, jwtManager: jwtManager}
}

var validRoles = map[string]bool{
	"admin":     true,
	"manager":   true,
	"frontdesk": true,
}

func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if req.Role != "" && !validRoles[req.Role] {
		return nil, fmt.Errorf("invalid role %q", req.Role)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	log.Printf("[User] Created staff account %d (%s, %s)", u.ID, u.Email, u.Role)
	return u, nil
}

// Login authenticates credentials. When the account has 2FA enabled the
// caller gets a temp token to exchange together with a TOTP code.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest, ipAddress, userAgent string) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	// Redis short-circuits the bcrypt compare for recently seen credentials
	if cachedID, ok := cache.GetCachedAuth(ctx, email, req.Password); !ok || int(cachedID) != u.ID {
		if !auth.VerifyPassword(u.PasswordHash, req.Password) {
			return nil, fmt.Errorf("invalid email or password")
		}
		cache.CacheAuth(ctx, email, req.Password, int64(u.ID))
	}

	if !u.IsActive {
		return nil, fmt.Errorf("account is suspended")
	}

	enabled, err := s.totpSvc.IsEnabled(ctx, u.ID)
	if err != nil {
		log.Printf("[User] 2FA lookup failed for user %d: %v", u.ID, err)
	}
	if enabled {
		tempToken, err := s.jwtManager.GenerateTempToken(u)
		if err != nil {
			return nil, err
		}
		return &LoginResult{RequiresTOTP: true, TempToken: tempToken}, nil
	}

	return s.completeLogin(ctx, u, ipAddress, userAgent)
}

// VerifyTOTP is login step 2: exchange the temp token plus a valid code
// for a full session token
func (s *UserService) VerifyTOTP(ctx context.Context, req *models.TOTPVerifyRequest, ipAddress, userAgent string) (*LoginResult, error) {
	claims, err := s.jwtManager.ValidateTempToken(req.TempToken)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired temp token")
	}

	if err := s.totpSvc.VerifyCode(ctx, claims.UserID, req.Code); err != nil {
		return nil, err
	}

	u, err := s.repo.Get(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, fmt.Errorf("account is suspended")
	}

	return s.completeLogin(ctx, u, ipAddress, userAgent)
}

func (s *UserService) completeLogin(ctx context.Context, u *models.User, ipAddress, userAgent string) (*LoginResult, error) {
	token, err := s.jwtManager.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	if _, err := s.audit.RecordLogin(ctx, u.ID, ipAddress, userAgent); err != nil {
		log.Printf("[User] Failed to record login for user %d: %v", u.ID, err)
	}

	return &LoginResult{Token: token, User: u}, nil
}

func (s *UserService) Logout(ctx context.Context, userID int) error {
	return s.audit.RecordLogout(ctx, userID)
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if req.Role != "" && !validRoles[req.Role] {
		return nil, fmt.Errorf("invalid role %q", req.Role)
	}

	u.Name = strings.TrimSpace(req.Name)
	u.Email = strings.ToLower(strings.TrimSpace(req.Email))
	u.Phone = req.Phone
	if req.Role != "" {
		u.Role = req.Role
	}

	u.PasswordHash = ""
	if req.Password != "" {
		if len(req.Password) < 8 {
			return nil, fmt.Errorf("password must be at least 8 characters")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// ToggleActive suspends or reinstates a staff account
func (s *UserService) ToggleActive(ctx context.Context, id int) (bool, error) {
	return s.repo.ToggleActive(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
