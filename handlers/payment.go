package handlers

import (
	"fmt"
	"time"

	"confreg-webapp/database"
	"confreg-webapp/errors"
	"confreg-webapp/middleware"
	"confreg-webapp/model"
	"confreg-webapp/payment"
	"confreg-webapp/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type chargeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	DueInDays int64  `json:"due_in_days"` // invoice only
}

// CreateCharge resolves the amount owed for a registration and opens a
// payment intent with the gateway. A zero resolved amount means there
// is nothing to charge (free tier or a fee that was deleted after
// selection) and no intent is created.
func CreateCharge(c *fiber.Ctx) error {
	registration, conference, respErr := chargeableRegistration(c)
	if respErr != nil {
		return respErr
	}

	charge := pricing.ResolveChargeAmount(registration, conference, timeNow())
	if charge.Amount <= 0 {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "nothing to charge",
			"data":    charge})
	}

	req := new(chargeRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable charge parameters: %v", jsonErr))
	}

	orderId := uuid.NewString()
	description := fmt.Sprintf("%v registration (%v)", conference.ConferenceName,
		pricing.FormatPriceWithSymbol(charge.Amount, charge.Currency))

	intent, payErr := payment.CreatePaymentIntent(orderId, charge, description, payment.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     firstNonEmpty(req.Email, registration.Email),
	})
	if payErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("payment error: %v", payErr))
	}

	registration.OrderId = orderId
	registration.UpdatedAt = time.Now().Format(time.RFC3339)
	if updateErr := database.UpdateCollectionItem(registration.Id, registration, database.RegistrationsCollection); updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "payment intent created",
		"data": fiber.Map{
			"charge": charge,
			"intent": intent}})
}

// CreateRegistrationInvoice opens a longer-lived hosted payment page
// for attendees paying by bank transfer.
func CreateRegistrationInvoice(c *fiber.Ctx) error {
	if !middleware.CanManageConference(c, c.Params("confId")) {
		return errors.RaisePermissionsError(c, "no permission to manage this conference")
	}

	registration, conference, respErr := chargeableRegistration(c)
	if respErr != nil {
		return respErr
	}

	charge := pricing.ResolveChargeAmount(registration, conference, timeNow())
	if charge.Amount <= 0 {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "nothing to charge",
			"data":    charge})
	}

	req := new(chargeRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable invoice parameters: %v", jsonErr))
	}

	orderId := uuid.NewString()
	description := fmt.Sprintf("%v registration invoice", conference.ConferenceName)

	intent, payErr := payment.CreateInvoice(orderId, charge, description, payment.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     firstNonEmpty(req.Email, registration.Email),
	}, req.DueInDays)
	if payErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("payment error: %v", payErr))
	}

	registration.OrderId = orderId
	registration.UpdatedAt = time.Now().Format(time.RFC3339)
	if updateErr := database.UpdateCollectionItem(registration.Id, registration, database.RegistrationsCollection); updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "invoice created",
		"data": fiber.Map{
			"charge": charge,
			"intent": intent}})
}

// RefundRegistration refunds a paid registration through the gateway
// and cancels it.
func RefundRegistration(c *fiber.Ctx) error {
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

	if registration.Status != model.RegistrationStatusPaid {
		return errors.RaiseBadRequestError(c, "only paid registrations can be refunded")
	}
	if registration.OrderId == "" {
		return errors.RaiseBadRequestError(c, "registration has no payment order to refund")
	}

	type refundRequest struct {
		Amount float64 `json:"amount"` // zero means full refund
		Reason string  `json:"reason"`
	}
	req := new(refundRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable refund parameters: %v", jsonErr))
	}

	if payErr := payment.Refund(registration.OrderId, req.Amount, req.Reason); payErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("payment error: %v", payErr))
	}

	registration.Status = model.RegistrationStatusCancelled
	registration.UpdatedAt = time.Now().Format(time.RFC3339)
	if updateErr := database.UpdateCollectionItem(registration.Id, registration, database.RegistrationsCollection); updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "registration refunded",
		"data":    registration})
}

func chargeableRegistration(c *fiber.Ctx) (model.Registration, model.Conference, error) {
	conference, found, respErr := fetchConference(c, true)
	if respErr != nil {
		return model.Registration{}, model.Conference{}, respErr
	}
	if !found {
		return model.Registration{}, model.Conference{},
			errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}

	registration, getErr := database.GetRegistration(conference.Id, c.Params("regId"))
	if getErr != nil {
		return model.Registration{}, model.Conference{}, errors.RaiseNotFoundError(c, fmt.Sprint(getErr))
	}

	if registration.Status == model.RegistrationStatusCancelled {
		return model.Registration{}, model.Conference{},
			errors.RaiseBadRequestError(c, "cannot charge a cancelled registration")
	}

	return registration, conference, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
