package handlers

import (
	"fmt"
	"time"

	"confreg-webapp/database"
	"confreg-webapp/errors"
	"confreg-webapp/model"
	"confreg-webapp/pricing"

	"github.com/gofiber/fiber/v2"
)

// timeNow is the clock handlers pass into the pricing resolvers.
// Package variable so handler tests can pin the date.
var timeNow = time.Now

func GetHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "ok",
		"data":    nil})
}

// fetchConference loads one conference by the confId route param. A
// non-nil error means an error response was already written.
func fetchConference(c *fiber.Ctx, includeHidden bool) (model.Conference, bool, error) {
	conferences, dbErr := database.GetConferences(includeHidden, "_id", c.Params("confId"))
	if dbErr != nil {
		return model.Conference{}, false, errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if len(conferences) == 0 {
		return model.Conference{}, false, nil
	}
	return conferences[0], true, nil
}

func conferenceStart(conf model.Conference) *time.Time {
	start, err := pricing.ParseDay(conf.StartDate)
	if err != nil {
		return nil
	}
	return &start
}
