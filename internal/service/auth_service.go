package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/internal/repository"
	"github.com/sp3fck/hamgallery-backend/pkg/bcrypt"
	"github.com/sp3fck/hamgallery-backend/pkg/email"
	jwtPkg "github.com/sp3fck/hamgallery-backend/pkg/jwt"
)

const TokenExpiryEmailVerify = 24 * time.Hour

type AuthService struct {
	userRepo     *repository.UserRepository
	emailService *email.EmailService
	tokens       *jwtPkg.TokenService
	jwtSecret    []byte
}

func NewAuthService(
	userRepo *repository.UserRepository,
	emailService *email.EmailService,
	tokens *jwtPkg.TokenService,
	jwtSecret string,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		emailService: emailService,
		tokens:       tokens,
		jwtSecret:    []byte(jwtSecret),
	}
}

// Register expects an already validated and normalized request: callsign
// uppercase, email lowercase.
func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if _, err := s.userRepo.GetByCallsign(req.Callsign); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Callsign:  req.Callsign,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.userRepo.Create(user); err != nil {
		// A concurrent registration may have slipped in between the
		// lookups and this insert.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	if s.emailService != nil {
		if verificationToken, err := s.generateVerificationToken(user.Email); err == nil {
			go s.emailService.SendVerificationEmail(user.Email, user.FirstName, user.Callsign, verificationToken)
		}
	}

	token, err := s.tokens.Generate(user.ID, user.Callsign, user.Email)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  models.NewUserResponse(user),
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByCallsign(req.Callsign)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Callsign, user.Email)
	if err != nil {
		return nil, err
	}

	// Touch updated_at as a last-login marker.
	if _, err := s.userRepo.Update(user.ID, models.UserUpdate{}); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  models.NewUserResponse(user),
	}, nil
}

// VerifyEmail flips the verification flag for the account named by a
// valid verification token.
func (s *AuthService) VerifyEmail(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwtPkg.ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid token claims")
	}
	if purpose, _ := claims["type"].(string); purpose != "email_verification" {
		return errors.New("invalid token claims")
	}
	emailAddr, ok := claims["email"].(string)
	if !ok {
		return errors.New("invalid token claims")
	}

	user, err := s.userRepo.GetByEmail(emailAddr)
	if err != nil {
		return errors.New("user not found")
	}
	if user.IsVerified {
		return errors.New("email already verified")
	}

	verified := true
	if _, err := s.userRepo.Update(user.ID, models.UserUpdate{IsVerified: &verified}); err != nil {
		return errors.New("failed to verify email")
	}
	return nil
}

func (s *AuthService) generateVerificationToken(emailAddr string) (string, error) {
	claims := jwt.MapClaims{
		"email": emailAddr,
		"exp":   time.Now().Add(TokenExpiryEmailVerify).Unix(),
		"iat":   time.Now().Unix(),
		"type":  "email_verification",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
