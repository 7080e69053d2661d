package router

import (
	"confreg-webapp/handlers"
	"confreg-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/", logger.New())
	api.Get("/health", handlers.GetHealth)

	//Login
	login := api.Group("/login")
	login.Post("/", handlers.Login)

	//Conference, public surface
	conference := api.Group("/conference")
	conference.Get("/", handlers.GetConferences)
	conference.Get("/:confId", handlers.GetConference)
	conference.Get("/:confId/pricing", handlers.GetConferencePricing)
	conference.Get("/:confId/fees", handlers.GetFeeOptions)
	conference.Post("/:confId/registration", handlers.CreateRegistration)

	//Conference, admin surface
	admin := conference.Group("/", middleware.Authorize())
	admin.Post("/", handlers.CreateNewConference)
	admin.Put("/:confId", handlers.UpdateConference)
	admin.Patch("/:confId/name", handlers.UpdateConference)
	admin.Patch("/:confId/pricing", handlers.UpdateConference)
	admin.Delete("/:confId", handlers.DeleteConference)

	//Custom fees
	admin.Get("/:confId/admin/fees", handlers.GetFeesForAdmin)
	admin.Post("/:confId/admin/fees", handlers.CreateFee)
	admin.Put("/:confId/admin/fees/:feeId", handlers.UpdateFee)
	admin.Delete("/:confId/admin/fees/:feeId", handlers.DeleteFee)

	//Registrations
	admin.Get("/:confId/registration", handlers.GetRegistrations)
	admin.Patch("/:confId/registration/:regId/confirm", handlers.ConfirmRegistration)
	admin.Patch("/:confId/registration/:regId/cancel", handlers.CancelRegistration)

	//Payments
	admin.Post("/:confId/registration/:regId/charge", handlers.CreateCharge)
	admin.Post("/:confId/registration/:regId/invoice", handlers.CreateRegistrationInvoice)
	admin.Post("/:confId/registration/:regId/refund", handlers.RefundRegistration)
}
