package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestValidationErrorListsAllFields(t *testing.T) {
	is := is.New(t)

	verr := &ValidationError{}
	verr.Add("temperature", "must not be null").Add("deviceId", "must not be blank")

	is.Equal(verr.Error(), "temperature: must not be null, deviceId: must not be blank")
	is.True(IsValidation(fmt.Errorf("wrapped: %w", verr)))
}

func TestEmptyValidationErrorIsNil(t *testing.T) {
	is := is.New(t)

	is.NoErr((&ValidationError{}).OrNil())
}

func TestUpstreamErrorUnwraps(t *testing.T) {
	is := is.New(t)

	cause := errors.New("connection refused")
	err := Upstream("ezviz", cause)

	is.True(errors.Is(err, cause))
	is.True(!IsValidation(err))
}
