package router

import (
	"github.com/go-chi/chi/v5"

	"carrent/internal/handlers/auth"
	"carrent/internal/handlers/booking"
	"carrent/internal/handlers/car"
	"carrent/internal/handlers/carimage"
	"carrent/internal/handlers/company"
	"carrent/internal/handlers/contact"
	"carrent/internal/handlers/review"
	"carrent/internal/handlers/user"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Booking  booking.Handler
	Car      car.Handler
	CarImage carimage.Handler
	Company  company.Handler
	Contact  contact.Handler
	Review   review.Handler
	User     user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Company.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.CarImage.Router(routerGroup)

		// Reviews and images hang off the same /cars prefix as the car
		// routes, so all three handlers register on one group.
		routerGroup.Route("/cars", func(carGroup chi.Router) {
			r.DomainHandlers.Car.Router(carGroup)
			r.DomainHandlers.Review.CarRouter(carGroup)
			r.DomainHandlers.CarImage.CarRouter(carGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
