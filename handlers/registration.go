package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"confreg-webapp/database"
	"confreg-webapp/errors"
	"confreg-webapp/middleware"
	"confreg-webapp/model"
	"confreg-webapp/pricing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetRegistrations(c *fiber.Ctx) error {
	if !middleware.CanManageConference(c, c.Params("confId")) {
		return errors.RaisePermissionsError(c, "no permission to manage this conference")
	}

	conference, found, respErr := fetchConference(c, true)
	if respErr != nil {
		return respErr
	}
	if !found {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}

	registrations, dbErr := database.GetRegistrations(conference.Id)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	registrationsJson, jsonErr := json.MarshalIndent(registrations, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(registrationsJson))
}

// CreateRegistration registers an attendee for a published conference.
// A custom fee selection is checked against current availability; a
// tier selection is accepted as is, date rules decide the charge later.
//
// Availability is checked against a read snapshot without any
// transactional reservation, so two racing registrations can both pass
// the check and oversell a capacity-limited fee.
func CreateRegistration(c *fiber.Ctx) error {
	conference, found, respErr := fetchConference(c, false)
	if respErr != nil {
		return respErr
	}
	if !found {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}

	newReg := new(model.Registration)
	if jsonErr := c.BodyParser(newReg); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable registration parameters: %v", jsonErr))
	}
	newReg.AttendeeName = strings.TrimSpace(newReg.AttendeeName)

	if validationErr := attendeeNameValidation(newReg.AttendeeName); validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for registration parameters: %v", validationErr))
	}

	selection := pricing.ParseFeeType(newReg.FeeType)
	if selection.Kind == pricing.SelectionTier && selection.Category == "" && newReg.FeeType != "" {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("unknown fee type %v", newReg.FeeType))
	}

	if selection.Kind == pricing.SelectionCustomFee {
		soldCounts, dbErr := database.SoldCounts(conference.Id)
		if dbErr != nil {
			return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
		}

		if unavailableErr := feeSelectableValidation(conference.Fees, soldCounts, selection.FeeId); unavailableErr != nil {
			return errors.RaiseBadRequestError(c,
				fmt.Sprintf("incorrect input for registration parameters: %v", unavailableErr))
		}
	}

	currentTime := time.Now().Format(time.RFC3339)
	newReg.Id = primitive.NewObjectID()
	newReg.ConferenceId = conference.Id
	newReg.Status = model.RegistrationStatusPending
	newReg.OrderId = ""
	newReg.RegisteredAt = currentTime
	newReg.UpdatedAt = currentTime

	writeErr := database.WriteToCollection(*newReg, database.RegistrationsCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "registration created",
		"data":    newReg})
}

func ConfirmRegistration(c *fiber.Ctx) error {
	return setRegistrationStatus(c, model.RegistrationStatusConfirmed)
}

func CancelRegistration(c *fiber.Ctx) error {
	return setRegistrationStatus(c, model.RegistrationStatusCancelled)
}

func setRegistrationStatus(c *fiber.Ctx, status string) error {
	if !middleware.CanManageConference(c, c.Params("confId")) {
		return errors.RaisePermissionsError(c, "no permission to manage this conference")
	}

	conference, found, respErr := fetchConference(c, true)
	if respErr != nil {
		return respErr
	}
	if !found {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}

	registration, getErr := database.GetRegistration(conference.Id, c.Params("regId"))
	if getErr != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(getErr))
	}

	if registration.Status == model.RegistrationStatusCancelled {
		return errors.RaiseBadRequestError(c, "cannot change status of a cancelled registration")
	}

	registration.Status = status
	registration.UpdatedAt = time.Now().Format(time.RFC3339)

	updateErr := database.UpdateCollectionItem(registration.Id, registration, database.RegistrationsCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "registration updated",
		"data":    registration})
}

func attendeeNameValidation(attendeeName string) error {
	if len(attendeeName) < 2 {
		return fmt.Errorf("name is too short")
	}
	if !strings.Contains(attendeeName, " ") {
		return fmt.Errorf("last name is missing, try format 'firstName LastName'")
	}
	return nil
}

func feeSelectableValidation(fees []model.CustomRegistrationFee, soldCounts map[string]int64, feeId string) error {
	options := pricing.ListAvailableFees(fees, soldCounts, timeNow())
	for _, option := range options {
		if option.Id != feeId {
			continue
		}
		if !option.IsAvailable {
			return fmt.Errorf("fee %v is not selectable: %v", feeId, option.DisabledReason)
		}
		return nil
	}
	return fmt.Errorf("no fee with id %v for this conference", feeId)
}
