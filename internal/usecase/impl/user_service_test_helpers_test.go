package impl

import (
	"io"
	"log/slog"

	"cards/config"
	"cards/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(adminEmails ...string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:  4,
			AdminEmails: adminEmails,
		},
	}
}

func memberIdentity(id int64) *entity.Identity {
	return &entity.Identity{PrincipalID: id, Roles: entity.Roles{entity.RoleMember}}
}

func adminIdentity(id int64) *entity.Identity {
	return &entity.Identity{PrincipalID: id, Roles: entity.Roles{entity.RoleMember, entity.RoleAdmin}}
}

func strPtr(s string) *string {
	return &s
}
