package impl

import (
	"context"
	"testing"
	"time"

	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/domain/repository"
	"cards/internal/infra/auth"
	mockRepo "cards/internal/mocks/repository"
	mockSvc "cards/internal/mocks/service"
	"cards/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, adminEmails ...string) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Guard:        auth.NewOwnershipGuard(),
		Config:       newTestConfig(adminEmails...),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 11
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: " a@x.com ", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), output.User.ID)
	assert.Equal(t, "a@x.com", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RoleMember}, output.User.Roles)
}

func TestUserService_Register_AdminEmailGetsAdminRole(t *testing.T) {
	fx := createTestUserService(t, "root@x.com")
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ROOT@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.True(t, output.User.Roles.Contains(entity.RoleAdmin))
	assert.True(t, output.User.Roles.Contains(entity.RoleMember))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash("secret").Return("", errors.New("bcrypt exploded"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@x.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: 3, Email: "a@x.com", PasswordHash: "hashed", Roles: entity.Roles{entity.RoleMember}}
	expiresAt := time.Now().Add(30 * time.Minute)

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenService.EXPECT().Issue("a@x.com", mock.AnythingOfType("time.Time")).Return("signed.token.value", expiresAt, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.AccessToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Same(t, user, output.User)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").
		Return(&entity.User{ID: 3, Email: "a@x.com", PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "secret"})
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUserService_Login_StorageFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, dbErr)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: 5, Email: "a@x.com", Cards: []*entity.Card{{ID: 1, OwnerID: 5, Name: "Task"}}}

	t.Run("owner", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(owner, nil)

		user, err := fx.service.GetProfile(ctx, memberIdentity(5), 5)
		require.NoError(t, err)
		assert.Len(t, user.Cards, 1)
	})

	t.Run("admin reads another profile", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(owner, nil)

		_, err := fx.service.GetProfile(ctx, adminIdentity(1), 5)
		require.NoError(t, err)
	})

	t.Run("other member is forbidden", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.GetProfile(ctx, memberIdentity(6), 5)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetProfile(ctx, adminIdentity(1), 9)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
