package components

import (
	"clubtab/internal/handler"
	"clubtab/internal/handler/api"
	"clubtab/internal/handler/middleware"
	"clubtab/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewTabHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		func(auth *api.AuthHandler, booking *api.BookingHandler, tab *api.TabHandler, payment *api.PaymentHandler, admin *api.AdminHandler) handler.Handlers {
			return handler.Handlers{
				Auth:    auth,
				Booking: booking,
				Tab:     tab,
				Payment: payment,
				Admin:   admin,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
