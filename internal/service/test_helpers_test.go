package service

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sp3fck/hamgallery-backend/internal/repository"
	"github.com/sp3fck/hamgallery-backend/internal/testutils"
	jwtPkg "github.com/sp3fck/hamgallery-backend/pkg/jwt"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	db     *gorm.DB
	tokens *jwtPkg.TokenService
	auth   *AuthService
	photos *PhotoService
	iframe *IframeService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutils.SetupDB(t)
	logger := zap.NewNop()

	userRepo := repository.NewUserRepository(db, logger)
	photoRepo := repository.NewPhotoRepository(db, logger)
	iframeRepo := repository.NewIframeRepository(db, logger)

	tokens := jwtPkg.NewTokenService(testJWTSecret, 7*24*time.Hour)

	return &testEnv{
		db:     db,
		tokens: tokens,
		auth:   NewAuthService(userRepo, nil, tokens, testJWTSecret),
		photos: NewPhotoService(photoRepo),
		iframe: NewIframeService(iframeRepo, photoRepo),
	}
}
