package booking_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideBookingController,
)

func provideBookingService(catalogRepo repositories.CatalogRepository) services.BookingServiceInterface {
	return services.NewBookingService(catalogRepo)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
