//go:build wireinject
// +build wireinject

package di

import (
	"carrent/config"
	"carrent/infras/jwt"
	"carrent/infras/kafka"
	"carrent/infras/otel"
	"carrent/infras/postgres"
	"carrent/infras/redis"
	"carrent/infras/s3"
	"carrent/internal/domains/booking/admission"
	"carrent/permissions"
	"carrent/shared/cache"
	"carrent/transport/http"
	"carrent/transport/http/middleware"
	"carrent/transport/http/router"

	authService "carrent/internal/domains/auth/service"
	bookingRepository "carrent/internal/domains/booking/repository"
	bookingService "carrent/internal/domains/booking/service"
	carRepository "carrent/internal/domains/car/repository"
	carService "carrent/internal/domains/car/service"
	carimageRepository "carrent/internal/domains/carimage/repository"
	carimageService "carrent/internal/domains/carimage/service"
	companyRepository "carrent/internal/domains/company/repository"
	companyService "carrent/internal/domains/company/service"
	contactRepository "carrent/internal/domains/contact/repository"
	contactService "carrent/internal/domains/contact/service"
	reviewRepository "carrent/internal/domains/review/repository"
	reviewService "carrent/internal/domains/review/service"
	userRepository "carrent/internal/domains/user/repository"
	userService "carrent/internal/domains/user/service"

	authHandler "carrent/internal/handlers/auth"
	bookingHandler "carrent/internal/handlers/booking"
	carHandler "carrent/internal/handlers/car"
	carimageHandler "carrent/internal/handlers/carimage"
	companyHandler "carrent/internal/handlers/company"
	contactHandler "carrent/internal/handlers/contact"
	reviewHandler "carrent/internal/handlers/review"
	userHandler "carrent/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var admissionControl = wire.NewSet(
	provideRandSource,
	admission.NewCodeGenerator,
	admission.NewCarLocks,
	admission.NewClock,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var carImageDomain = wire.NewSet(
	carimageRepository.New,
	carimageService.New,
)

var companyDomain = wire.NewSet(
	companyRepository.New,
	companyService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
	carDomain,
	carImageDomain,
	companyDomain,
	contactDomain,
	reviewDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	carHandler.New,
	carimageHandler.New,
	companyHandler.New,
	contactHandler.New,
	reviewHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		admissionControl,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
