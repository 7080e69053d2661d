package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"confreg-webapp/database"
	"confreg-webapp/errors"
	"confreg-webapp/middleware"
	"confreg-webapp/model"
	"confreg-webapp/pricing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetConferences(c *fiber.Ctx) error {
	conferences, dbErr := database.GetConferences(middleware.IsAdminRole(c), "")
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	conferencesJson, jsonErr := json.MarshalIndent(conferences, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(conferencesJson))
}

func GetConference(c *fiber.Ctx) error {
	conferences, dbErr := database.GetConferences(middleware.IsAdminRole(c), "_id", c.Params("confId"))
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if len(conferences) == 0 {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}

	conferenceJson, jsonErr := json.MarshalIndent(conferences[0], "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(conferenceJson))
}

func CreateNewConference(c *fiber.Ctx) error {
	if !middleware.IsAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	newConf := new(model.Conference)
	if jsonErr := c.BodyParser(newConf); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable conference parameters: %v", jsonErr))
	}
	newConf.Id = primitive.NewObjectID()
	newConf.ConferenceName = strings.TrimSpace(newConf.ConferenceName)
	newConf.Fees = []model.CustomRegistrationFee{}

	validationErr := validateConferenceInfoInput(*newConf, true)
	if validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for conference parameters: %v", validationErr))
	}

	writeErr := database.WriteToCollection(*newConf, database.ConferencesCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	newConfJson, jsonErr := json.MarshalIndent(newConf, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(newConfJson))
}

func UpdateConference(c *fiber.Ctx) error {
	if !middleware.CanManageConference(c, c.Params("confId")) {
		return errors.RaisePermissionsError(c, "no permission to manage this conference")
	}

	conferences, dbErr := database.GetConferences(true, "_id", c.Params("confId"))
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if len(conferences) == 0 {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}

	updatedConf := new(model.Conference)
	if jsonErr := c.BodyParser(updatedConf); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable conference parameters: %v", jsonErr))
	}
	updatedConf.Id = conferences[0].Id
	updatedConf.ConferenceName = strings.TrimSpace(updatedConf.ConferenceName)
	// fees are managed through their own endpoints, never replaced wholesale
	updatedConf.Fees = conferences[0].Fees

	reqPathParts := strings.Split(c.OriginalURL(), "/")
	var validationErr error = nil
	// adjust validation according to the request path, e.g. do only pricing validation if pricing update occure
	if reqPathParts[len(reqPathParts)-1] == "name" {
		updatedConf.Pricing = conferences[0].Pricing
		updatedConf.StartDate = conferences[0].StartDate
		validationErr = isValidConferenceName(updatedConf.ConferenceName, false)
	} else if reqPathParts[len(reqPathParts)-1] == "pricing" {
		updatedConf.ConferenceName = conferences[0].ConferenceName
		updatedConf.StartDate = conferences[0].StartDate
		validationErr = pricing.ValidatePricing(updatedConf.Pricing)
	} else {
		validationErr = validateConferenceInfoInput(*updatedConf, false)
	}
	if validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for conference parameters: %v", validationErr))
	}

	updateErr := database.UpdateCollectionItem(updatedConf.Id, updatedConf, database.ConferencesCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	updatedConfJson, jsonErr := json.MarshalIndent(updatedConf, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(updatedConfJson))
}

func DeleteConference(c *fiber.Ctx) error {
	if !middleware.IsAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}
	deleteErr := database.DeleteFromCollection(c.Params("confId"), database.ConferencesCollection)
	if deleteErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("failed to delete: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("conference with id %v was deleted", c.Params("confId"))})
}

// GetConferencePricing resolves the tier pricing that applies right
// now: the shape the public registration form renders.
func GetConferencePricing(c *fiber.Ctx) error {
	conference, found, err := fetchConference(c, false)
	if err != nil {
		return err
	}
	if !found {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}

	result := pricing.ResolvePricing(conference.Pricing, timeNow(), conferenceStart(conference))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "current pricing",
		"data":    result})
}

func validateConferenceInfoInput(conf model.Conference, isNew bool) error {
	nameValidationErr := isValidConferenceName(conf.ConferenceName, isNew)
	if nameValidationErr != nil {
		return fmt.Errorf("incorrect input for conference name: %v", nameValidationErr)
	}

	if _, err := pricing.ParseDay(conf.StartDate); err != nil {
		return fmt.Errorf("incorrect input for conference start date: %v", conf.StartDate)
	}

	if pricingErr := pricing.ValidatePricing(conf.Pricing); pricingErr != nil {
		return fmt.Errorf("incorrect input for conference pricing: %v", pricingErr)
	}

	return nil
}

func isValidConferenceName(name string, isNew bool) error {
	if len(name) < 2 {
		return fmt.Errorf("conference name is too short")
	}

	if isNew {
		nameExists, err := database.IfConferenceNameAlreadyExist(name)
		if err != nil {
			return err
		}
		if nameExists {
			return fmt.Errorf("conference name already exist")
		}
	}

	return nil
}
