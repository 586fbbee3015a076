// Package router builds the Echo instance: global middleware, the error
// handler, system routes and the /api route groups.
package router

import (
	"net"

	"github.com/SabihaEylul/nextjswebb/internal/handler"
	"github.com/SabihaEylul/nextjswebb/internal/middleware"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.IPExtractor = ipExtractor(s.Config.Server.TrustedProxies)

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.BodyLimit(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerAPIRoutes(api, h, middlewares)

	return router
}

// ipExtractor resolves the client IP used for rate limiting and logging.
// X-Forwarded-For is only honoured when the peer is a configured proxy.
func ipExtractor(trustedProxies []string) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		// entries are validated as CIDRs when the config loads
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			continue
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
