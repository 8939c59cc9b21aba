//go:build wireinject
// +build wireinject

package di

import (
	"salon/config"
	"salon/infras/kafka"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/infras/redis"
	"salon/infras/smtp"
	appointmentHandler "salon/internal/handlers/appointment"
	inquiryHandler "salon/internal/handlers/inquiry"
	statusHandler "salon/internal/handlers/status"
	"salon/internal/notifier"
	"salon/shared/cache"
	"salon/transport/http"
	"salon/transport/http/middleware"
	"salon/transport/http/router"

	appointmentRepository "salon/internal/domains/appointment/repository"
	appointmentService "salon/internal/domains/appointment/service"
	inquiryService "salon/internal/domains/inquiry/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	smtp.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var notifications = wire.NewSet(
	notifier.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryService.New,
)

var domains = wire.NewSet(
	appointmentDomain,
	inquiryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	appointmentHandler.New,
	inquiryHandler.New,
	statusHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		notifications,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
