package services

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
)

// Bounds accepted by the API.
const (
	MinPasswordLength   = 8
	MinSystemNameLength = 4
	MaxSystemNameLength = 32
)

type loginPayload struct {
	Username string
	Password string
}

func (p loginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required),
		validation.Field(&p.Password, validation.Required),
	)
}

type changePasswordPayload struct {
	Username    string
	OldPassword string
	NewPassword string
}

func (p changePasswordPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required),
		validation.Field(&p.OldPassword, validation.Required),
		validation.Field(
			&p.NewPassword,
			validation.Required,
			validation.Length(MinPasswordLength, 0),
			validation.By(differsFrom(p.OldPassword, "must differ from the old password")),
		),
	)
}

type systemNamePayload struct {
	Name string
}

func (p systemNamePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(
			&p.Name,
			validation.Required,
			validation.Length(MinSystemNameLength, MaxSystemNameLength),
		),
	)
}

type classifyPayload struct {
	Text string
}

func (p classifyPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Text, validation.Required),
	)
}

func differsFrom(other, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != "" && s == other {
			return errors.New(msg)
		}
		return nil
	}
}

// validate runs v and tags a failure with common.ErrValidation.
func validate(v validation.Validatable) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return nil
}

// NormalizeSystemName trims the surrounding whitespace the API ignores.
func NormalizeSystemName(name string) string {
	return strings.TrimSpace(name)
}
