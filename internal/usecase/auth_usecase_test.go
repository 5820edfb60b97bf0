package usecase_test

import (
	"context"
	"testing"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase() (*usecase.AuthUsecase, *UserRepoMock) {
	users := &UserRepoMock{}
	uc := usecase.NewAuthUsecase(config.Config{JWTSecret: "test-secret"}, users)
	return uc, users
}

func TestRegister_Success(t *testing.T) {
	uc, users := newAuthUsecase()

	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		//平文パスワードが保存されないこと
		if u.PasswordHash == "password123" {
			return false
		}
		err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123"))
		return err == nil && u.Role == model.RoleUser && u.Email == "budi@example.com"
	})).Return(model.User{ID: 1, Name: "Budi", Email: "budi@example.com", Role: model.RoleUser}, nil)

	out, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "USER", out.Role)
	users.AssertExpectations(t)
}

func TestRegister_ValidationError(t *testing.T) {
	uc, users := newAuthUsecase()

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "  ",
		Email:    "not-an-email",
		Password: "short",
	})

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, ve.Issues, 3)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, users := newAuthUsecase()

	users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, repo.ErrConflict)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "password123",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)
}

func TestLogin_Success(t *testing.T) {
	uc, users := newAuthUsecase()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)

	users.On("FindByEmail", mock.Anything, "budi@example.com").
		Return(model.User{ID: 7, Name: "Budi", Email: "budi@example.com", PasswordHash: string(hash), Role: model.RoleAdmin}, nil)

	out, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "budi@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.User.ID)
	assert.NotEmpty(t, out.Token)

	//発行トークンのclaims検証
	tok, err := jwt.Parse(out.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := tok.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "7", claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, users := newAuthUsecase()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users.On("FindByEmail", mock.Anything, "budi@example.com").
		Return(model.User{ID: 7, PasswordHash: string(hash)}, nil)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "budi@example.com",
		Password: "wrong-password",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
	assert.Equal(t, "invalid credentials", he.Message)
}

// 未知のメールでも同じメッセージを返す
func TestLogin_UnknownEmail(t *testing.T) {
	uc, users := newAuthUsecase()

	users.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
	assert.Equal(t, "invalid credentials", he.Message)
}

func TestMe_NotFound(t *testing.T) {
	uc, users := newAuthUsecase()

	users.On("FindByID", mock.Anything, int64(99)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Me(context.Background(), 99)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}
