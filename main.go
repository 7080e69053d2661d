package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"confreg-webapp/config"
	"confreg-webapp/database"
	"confreg-webapp/payment"
	"confreg-webapp/router"
)

func main() {
	config.LoadEnv()

	var dbErr error
	database.ConferencesCollection, dbErr = database.DBInit("conferences")
	if dbErr != nil {
		log.Fatal(dbErr)
	}
	database.RegistrationsCollection, dbErr = database.DBInit("registrations")
	if dbErr != nil {
		log.Fatal(dbErr)
	}
	database.UsersCollection, dbErr = database.DBInit("users")
	if dbErr != nil {
		log.Fatal(dbErr)
	}

	paymentKey, keyErr := config.GetSecret("PAYMENT_SERVER_KEY")
	if keyErr != nil {
		log.Fatal("cannot find payment server key in the environment")
	}
	useProduction, _ := config.GetSecret("PAYMENT_PRODUCTION")
	payment.Init(paymentKey, useProduction == "true")

	app := fiber.New()

	router.SetupRoutes(app)

	port, err := config.GetSecret("PORT")
	if err != nil {
		port = "80"
	}
	app.Listen(":" + port)
}
