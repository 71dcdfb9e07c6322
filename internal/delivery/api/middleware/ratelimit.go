package middleware

import (
	"net"
	"strings"
	"time"

	"cards/config"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter throttles a route per client IP with a token bucket.
// The client IP comes from the server's IPExtractor, see NewIPExtractor.
func NewRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(cfg.PerMinute) / time.Minute.Seconds()),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return domainerrors.ErrForbidden.WithDetails(err.Error())
		},
		DenyHandler: func(_ echo.Context, identifier string, _ error) error {
			return domainerrors.ErrTooManyRequests.WrapMessage("rate limited " + identifier)
		},
	})
}

// NewIPExtractor decides where c.RealIP looks for the client address.
// Without trusted proxies only the peer address counts and forwarding headers
// are ignored. Otherwise X-Forwarded-For is walked only through hops inside
// the given CIDRs.
func NewIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, errors.Wrapf(err, "parse trusted proxy %q", cidr)
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(opts...), nil
}
