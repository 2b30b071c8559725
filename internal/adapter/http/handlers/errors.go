package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/internal/adapter/http/middleware"
	"noirlabs_billing/internal/usecase"
	"noirlabs_billing/internal/usecase/interfaces"
	"noirlabs_billing/pkg"
)

var (
	errInvalidBody         = pkg.NewDomainErrorSimple("INVALID_BODY", "Invalid request body", http.StatusBadRequest)
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errEmailMismatch       = pkg.NewDomainErrorSimple("EMAIL_MISMATCH", "Email mismatch: Payer email must match authenticated user.", http.StatusForbidden)
	errXenditNotConfigured = pkg.NewDomainErrorSimple("PAYMENT_NOT_CONFIGURED", "Server configuration error: XENDIT_SECRET_KEY missing", http.StatusInternalServerError)
	errInvoiceFailed       = pkg.NewDomainErrorSimple("GATEWAY_ERROR", "Failed to create invoice", http.StatusInternalServerError)
	errSubscriptionMissing = pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	errAlreadyOnWaitlist   = pkg.NewDomainErrorSimple("WAITLIST_DUPLICATE", "Email already on waitlist", http.StatusConflict)
	errEmailNotConfigured  = pkg.NewDomainErrorSimple("EMAIL_NOT_CONFIGURED", "Server configuration error: UNOSEND_API_KEY missing", http.StatusInternalServerError)
	errEmailFailed         = pkg.NewDomainErrorSimple("EMAIL_FAILED", "Failed to send email", http.StatusBadGateway)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bindError(err error) *pkg.AppError {
	return pkg.NewDomainError(errInvalidBody.Code, errInvalidBody.Message, err, errInvalidBody.HTTPStatus).WithDetails(err.Error())
}

// mapCommonError handles what every use case can return; ok is false for
// errors the caller must map itself.
func mapCommonError(err error) (*pkg.AppError, bool) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return errInvalidRequest.WithDetails(verr.Fields), true
	case errors.Is(err, usecase.ErrInvalidRequest):
		return errInvalidRequest, true
	case errors.Is(err, usecase.ErrMissingAuthorization):
		return middleware.ErrMissingAuthorization, true
	case errors.Is(err, interfaces.ErrAuthNotConfigured), errors.Is(err, interfaces.ErrUnauthenticated):
		return middleware.AuthAppError(err), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapInvoiceError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	var gwErr *interfaces.GatewayError
	switch {
	case errors.Is(err, usecase.ErrPayerEmailMismatch):
		return errEmailMismatch
	case errors.Is(err, interfaces.ErrPaymentGatewayNotConfigured):
		return errXenditNotConfigured
	case errors.As(err, &gwErr):
		appErr := errInvoiceFailed.WithDetails(gwErr.Details)
		appErr.HTTPStatus = gwErr.HTTPStatus()
		appErr.Err = err
		return appErr
	default:
		return internalError(err)
	}
}

func mapSubscriptionError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrSubscriptionNotFound) {
		return errSubscriptionMissing
	}
	return internalError(err)
}

func mapWaitlistError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrAlreadyOnWaitlist) {
		return errAlreadyOnWaitlist
	}
	return internalError(err)
}

func mapEmailError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	var emailErr *interfaces.EmailError
	switch {
	case errors.Is(err, interfaces.ErrEmailNotConfigured):
		return errEmailNotConfigured
	case errors.As(err, &emailErr):
		return errEmailFailed.WithDetails(emailErr.Details)
	default:
		return internalError(err)
	}
}

// mapStoreError covers use cases whose only failures are validation and the
// backing table.
func mapStoreError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	return internalError(err)
}
