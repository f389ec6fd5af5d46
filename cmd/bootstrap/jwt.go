package bootstrap

import (
	"time"

	"clubtab/internal/pkg/clock"
	"clubtab/internal/pkg/config"
	"clubtab/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// Terminal tokens live only as long as the kiosk idle timeout; a walked-away
// session dies on its own.
func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration, cfg.Terminal.IdleTimeout, clk)
}
