package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	domainSend "github.com/wachat/wachat-bridge/domains/send"
	pkgError "github.com/wachat/wachat-bridge/pkg/error"
)

func ValidateTestMessage(ctx context.Context, request domainSend.TestMessageRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.PhoneNumber, validation.Required),
		validation.Field(&request.Message, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
