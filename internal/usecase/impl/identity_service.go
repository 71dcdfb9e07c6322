package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "cards/internal/delivery/context"
	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/domain/repository"
	"cards/internal/domain/service"
	"cards/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BearerPrefix is the literal scheme prefix of an Authorization header carrying a token.
const BearerPrefix = "Bearer "

type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService creates the IdentityUsecase. It only reads and is safe for concurrent requests.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *identityService) Resolve(ctx context.Context, authorizationHeader string) (*entity.Identity, error) {
	if !strings.HasPrefix(authorizationHeader, BearerPrefix) {
		return nil, nil //nolint:nilnil // anonymous caller
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, BearerPrefix))

	subject, err := srv.tokenService.Verify(token, srv.now())
	if err != nil {
		deliverycontext.Logger(ctx, srv.logger).Debug("Bearer token rejected", slog.Any("error", err))

		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrTokenMalformed, err.Error())
	}

	user, err := srv.userRepo.FindByEmail(ctx, subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token subject is not a registered user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return &entity.Identity{
		PrincipalID: user.ID,
		Roles:       user.Roles,
	}, nil
}
