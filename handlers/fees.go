package handlers

import (
	"fmt"
	"strings"

	"confreg-webapp/database"
	"confreg-webapp/errors"
	"confreg-webapp/middleware"
	"confreg-webapp/model"
	"confreg-webapp/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// feeInput is the admin-facing shape for creating and updating a custom
// fee. The client sends one net amount; net and gross stored prices are
// always recomputed server side from it and the effective VAT.
type feeInput struct {
	Name          string   `json:"name"`
	ValidFrom     string   `json:"valid_from"`
	ValidTo       string   `json:"valid_to"`
	IsActive      bool     `json:"is_active"`
	Amount        float64  `json:"amount"`
	Capacity      *int64   `json:"capacity"`
	Currency      string   `json:"currency"`
	DisplayOrder  int      `json:"display_order"`
	VATPercentage *float64 `json:"vat_percentage"`
}

func (input feeInput) toFee(conf model.Conference) model.CustomRegistrationFee {
	effectiveVAT := pricing.EffectiveVAT(input.VATPercentage, conf.VATPercentage)

	fee := model.CustomRegistrationFee{
		ConferenceId:  conf.Id,
		Name:          strings.TrimSpace(input.Name),
		ValidFrom:     input.ValidFrom,
		ValidTo:       input.ValidTo,
		IsActive:      input.IsActive,
		PriceNet:      pricing.Round2(input.Amount),
		PriceGross:    pricing.Round2(input.Amount),
		Capacity:      input.Capacity,
		Currency:      strings.ToUpper(strings.TrimSpace(input.Currency)),
		DisplayOrder:  input.DisplayOrder,
		VATPercentage: input.VATPercentage,
	}
	if fee.Currency == "" {
		fee.Currency = conf.Pricing.Currency
	}
	if effectiveVAT != nil {
		fee.PriceGross = pricing.Round2(pricing.PriceWithVAT(input.Amount, *effectiveVAT))
	}
	return fee
}

// GetFeeOptions is the public listing the registration form consumes:
// every fee annotated with availability, unavailable ones kept and
// marked with the reason so the form can render them disabled.
func GetFeeOptions(c *fiber.Ctx) error {
	conference, found, respErr := fetchConference(c, false)
	if respErr != nil {
		return respErr
	}
	if !found {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}

	soldCounts, dbErr := database.SoldCounts(conference.Id)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	options := pricing.ListAvailableFees(conference.Fees, soldCounts, timeNow())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "fee options",
		"data":    options})
}

// GetFeesForAdmin lists every fee with sales data, no availability
// filtering: admins see everything, always.
func GetFeesForAdmin(c *fiber.Ctx) error {
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

	soldCounts, dbErr := database.SoldCounts(conference.Id)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	views := pricing.ListFeesForAdmin(conference.Fees, soldCounts)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "fees",
		"data":    views})
}

func CreateFee(c *fiber.Ctx) error {
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

	input := new(feeInput)
	if jsonErr := c.BodyParser(input); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable fee parameters: %v", jsonErr))
	}

	fee := input.toFee(conference)
	fee.Id = primitive.NewObjectID()

	if validationErr := pricing.ValidateFee(fee); validationErr != nil {
		if _, ok := validationErr.(validator.ValidationErrors); ok {
			return errors.RaiseValidationError(c, validationErr)
		}
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for fee parameters: %v", validationErr))
	}

	conference.Fees = append(conference.Fees, fee)

	updateErr := database.UpdateCollectionItem(conference.Id, conference, database.ConferencesCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "fee created",
		"data":    fee})
}

func UpdateFee(c *fiber.Ctx) error {
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

	feeIndex := -1
	for index, fee := range conference.Fees {
		if fee.Id.Hex() == c.Params("feeId") {
			feeIndex = index
			break
		}
	}
	if feeIndex == -1 {
		return errors.RaiseNotFoundError(c,
			fmt.Sprintf("no fee with id %v for conference id %v", c.Params("feeId"), c.Params("confId")))
	}

	input := new(feeInput)
	if jsonErr := c.BodyParser(input); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable fee parameters: %v", jsonErr))
	}

	updatedFee := input.toFee(conference)
	updatedFee.Id = conference.Fees[feeIndex].Id

	if validationErr := pricing.ValidateFee(updatedFee); validationErr != nil {
		if _, ok := validationErr.(validator.ValidationErrors); ok {
			return errors.RaiseValidationError(c, validationErr)
		}
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for fee parameters: %v", validationErr))
	}

	conference.Fees[feeIndex] = updatedFee

	updateErr := database.UpdateCollectionItem(conference.Id, conference, database.ConferencesCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "fee updated",
		"data":    updatedFee})
}

// DeleteFee removes a fee permanently. Hard delete: registrations that
// still reference it will resolve to a zero charge.
func DeleteFee(c *fiber.Ctx) error {
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

	remaining := make([]model.CustomRegistrationFee, 0, len(conference.Fees))
	deleted := false
	for _, fee := range conference.Fees {
		if fee.Id.Hex() == c.Params("feeId") {
			deleted = true
			continue
		}
		remaining = append(remaining, fee)
	}
	if !deleted {
		return errors.RaiseNotFoundError(c,
			fmt.Sprintf("no fee with id %v for conference id %v", c.Params("feeId"), c.Params("confId")))
	}

	conference.Fees = remaining

	updateErr := database.UpdateCollectionItem(conference.Id, conference, database.ConferencesCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("fee with id %v was deleted", c.Params("feeId"))})
}
