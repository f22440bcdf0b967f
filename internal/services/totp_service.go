package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"resort-backend/internal/auth"
	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
)

const totpIssuer = "ResortAdmin"

type TOTPService struct {
	userRepo *repositories.UserRepository
	totpRepo *repositories.TOTPRepository
}

func NewTOTPService(userRepo *repositories.UserRepository, totpRepo *repositories.TOTPRepository) *TOTPService {
	return &TOTPService{userRepo: userRepo, totpRepo: totpRepo}
}

// GenerateSetup creates a fresh secret for the user and returns the QR
// code as an inline PNG. The secret stays disabled until a code verifies.
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	if err := s.totpRepo.SaveSecret(ctx, user.ID, key.Secret()); err != nil {
		return nil, err
	}

	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, err
	}

	return &models.TOTPSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Issuer:      totpIssuer,
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable turns 2FA on after the user proves they hold the secret
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string) error {
	secret, _, err := s.totpRepo.GetSecret(ctx, userID)
	if err != nil {
		return err
	}
	if secret == "" {
		return fmt.Errorf("2FA setup has not been started")
	}

	if !totp.Validate(code, secret) {
		return fmt.Errorf("invalid verification code")
	}

	return s.totpRepo.Enable(ctx, userID)
}

// IsEnabled reports whether the user has 2FA active
func (s *TOTPService) IsEnabled(ctx context.Context, userID int) (bool, error) {
	_, enabled, err := s.totpRepo.GetSecret(ctx, userID)
	return enabled, err
}

// VerifyCode checks a login-time code against the enabled secret
func (s *TOTPService) VerifyCode(ctx context.Context, userID int, code string) error {
	secret, enabled, err := s.totpRepo.GetSecret(ctx, userID)
	if err != nil {
		return err
	}
	if !enabled {
		return fmt.Errorf("2FA is not enabled")
	}
	if !totp.Validate(code, secret) {
		return fmt.Errorf("invalid verification code")
	}
	return nil
}

// Disable removes 2FA after re-verifying the password and a current code
func (s *TOTPService) Disable(ctx context.Context, userID int, password, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return fmt.Errorf("incorrect password")
	}
	if err := s.VerifyCode(ctx, userID, code); err != nil {
		return err
	}
	return s.totpRepo.Disable(ctx, userID)
}
