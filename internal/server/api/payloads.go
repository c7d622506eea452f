package api

import (
	"errors"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Field bounds of the backend's request DTOs.
const (
	minUsername   = 8
	maxUsername   = 32
	minPassword   = 8
	minSystemName = 4
	maxSystemName = 32
	minAccessKey  = 31
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *loginRequest) Bind(*http.Request) error { return r.Validate() }

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(minUsername, maxUsername)),
		validation.Field(&r.Password, validation.Required, validation.Length(minPassword, 0)),
	)
}

type changePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (r *changePasswordRequest) Bind(*http.Request) error { return r.Validate() }

func (r changePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(minUsername, maxUsername)),
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(minPassword, 0)),
	)
}

type classifyRequest struct {
	Text string `json:"text"`
}

func (r *classifyRequest) Bind(*http.Request) error { return r.Validate() }

func (r classifyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required, validation.By(notBlank)),
	)
}

type systemRequest struct {
	SystemName string `json:"system_name"`
}

// Bind trims the name so that blank names fail the length check.
func (r *systemRequest) Bind(*http.Request) error {
	r.SystemName = strings.TrimSpace(r.SystemName)
	return r.Validate()
}

func (r systemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SystemName, validation.Required, validation.Length(minSystemName, maxSystemName)),
	)
}

type systemAuthRequest struct {
	SystemName string `json:"system_name"`
	AccessKey  string `json:"access_key"`
}

func (r *systemAuthRequest) Bind(*http.Request) error {
	r.SystemName = strings.TrimSpace(r.SystemName)
	return r.Validate()
}

func (r systemAuthRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SystemName, validation.Required, validation.Length(minSystemName, maxSystemName)),
		validation.Field(&r.AccessKey, validation.Required, validation.Length(minAccessKey, 0)),
	)
}

func notBlank(v interface{}) error {
	if s, _ := v.(string); strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

type tokenResponse struct {
	Status      string `json:"status"`
	AccessToken string `json:"access_token"`
}

type registrationResponse struct {
	SystemName string `json:"system_name"`
	AccessKey  string `json:"access_key"`
}

type classifyResponse struct {
	Result string `json:"result"`
	Text   string `json:"request_text"`
}
