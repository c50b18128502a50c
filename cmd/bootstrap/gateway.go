package bootstrap

import (
	"slotbook/internal/gateway"
	"slotbook/internal/notification"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/credential"
	"slotbook/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.RazorpayConfig {
			return cfg.Razorpay
		},
		gateway.NewRazorpayGateway,
		func(cfg config.Config) (*credential.Cipher, error) {
			return credential.NewCipher(cfg.Credential.TokenSecret)
		},
		func(cfg config.Config) usecase.Notifier {
			return notification.New(cfg.Notify)
		},
	),
)
