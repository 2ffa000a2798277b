// Package validation checks and normalizes untrusted request payloads.
// Every schema either returns a normalized value or a non-empty ordered
// list of human-readable field errors, never both. Errors are collected,
// not fail-fast, so a client can fix everything in one round trip.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sp3fck/hamgallery-backend/internal/models"
)

// Amateur-radio callsign: 1-3 alphanumeric prefix, a digit, 0-3
// alphanumerics, trailing letter. Case-insensitive.
var callsignRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,3}[0-9][A-Za-z0-9]{0,3}[A-Za-z]$`)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Iframe settings bounds. Out-of-range values are clamped, not rejected.
const (
	MinWidth, MaxWidth, DefaultWidth                = 300, 1200, 600
	MinHeight, MaxHeight, DefaultHeight             = 200, 800, 400
	MinInterval, MaxInterval, DefaultInterval       = 1000, 10000, 5000
	MinBorderRadius, MaxBorderRadius, DefaultRadius = 0, 20, 8
	DefaultBackgroundColor                          = "#1e1e1e"
)

// MinPasswordLength is the canonical minimum. The system this replaces
// carried two divergent rule sets (6 and 8); 6 is the one its live
// registration path enforced.
const MinPasswordLength = 6

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	v.RegisterValidation("callsign", func(fl validator.FieldLevel) bool {
		return callsignRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// collect runs struct validation and translates every field error into its
// human-readable message, preserving struct field order.
func (v *Validator) collect(s interface{}, messages map[string]string) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid request payload"}
	}

	var errs []string
	for _, fe := range fieldErrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			errs = append(errs, msg)
		} else {
			errs = append(errs, "Invalid value for "+fe.Field())
		}
	}
	return errs
}

type registerSchema struct {
	Callsign  string `validate:"required,callsign"`
	Email     string `validate:"required,email_format"`
	Password  string `validate:"required,min=6"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

var registerMessages = map[string]string{
	"Callsign.required":  "Callsign is required",
	"Callsign.callsign":  "Invalid callsign format",
	"Email.required":     "Email is required",
	"Email.email_format": "Invalid email format",
	"Password.required":  "Password is required",
	"Password.min":       "Password must be at least 6 characters long",
	"FirstName.required": "First name is required",
	"LastName.required":  "Last name is required",
}

// ValidateRegistration normalizes callsign to uppercase, email to
// lowercase, and trims the name fields.
func (v *Validator) ValidateRegistration(req models.RegisterRequest) (models.RegisterRequest, []string) {
	s := registerSchema{
		Callsign:  strings.TrimSpace(req.Callsign),
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if errs := v.collect(s, registerMessages); errs != nil {
		return models.RegisterRequest{}, errs
	}

	return models.RegisterRequest{
		Callsign:  strings.ToUpper(s.Callsign),
		Email:     strings.ToLower(s.Email),
		Password:  s.Password,
		FirstName: s.FirstName,
		LastName:  s.LastName,
	}, nil
}

type loginSchema struct {
	Callsign string `validate:"required"`
	Password string `validate:"required"`
}

var loginMessages = map[string]string{
	"Callsign.required": "Callsign is required",
	"Password.required": "Password is required",
}

// ValidateLogin only requires non-empty fields; password correctness is
// the credential layer's job.
func (v *Validator) ValidateLogin(req models.LoginRequest) (models.LoginRequest, []string) {
	s := loginSchema{
		Callsign: strings.TrimSpace(req.Callsign),
		Password: req.Password,
	}
	if errs := v.collect(s, loginMessages); errs != nil {
		return models.LoginRequest{}, errs
	}

	return models.LoginRequest{
		Callsign: strings.ToUpper(s.Callsign),
		Password: s.Password,
	}, nil
}

type photoUploadSchema struct {
	Title       string   `validate:"required,max=100"`
	Description string   `validate:"omitempty,max=500"`
	Tags        []string `validate:"omitempty,max=10"`
}

var photoUploadMessages = map[string]string{
	"Title.required":  "Photo title is required",
	"Title.max":       "Title must be less than 100 characters",
	"Description.max": "Description must be less than 500 characters",
	"Tags.max":        "Maximum 10 tags allowed",
}

// ValidatePhotoUpload trims title and description, lowercases tags and
// defaults visibility to public.
func (v *Validator) ValidatePhotoUpload(req models.CreatePhotoRequest) (models.CreatePhotoRequest, []string) {
	s := photoUploadSchema{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Tags:        req.Tags,
	}
	if errs := v.collect(s, photoUploadMessages); errs != nil {
		return models.CreatePhotoRequest{}, errs
	}

	tags := make([]string, 0, len(s.Tags))
	for _, tag := range s.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	out := req
	out.Title = s.Title
	out.Description = s.Description
	out.Tags = tags
	out.IsPublic = &isPublic
	return out, nil
}

type iframeConfigSchema struct {
	Name     string                 `validate:"required,max=50"`
	PhotoIDs []uint                 `validate:"required,min=1,max=20"`
	Settings map[string]interface{} `validate:"required"`
}

var iframeConfigMessages = map[string]string{
	"Name.required":     "Configuration name is required",
	"Name.max":          "Name must be less than 50 characters",
	"PhotoIDs.required": "At least one photo must be selected",
	"PhotoIDs.min":      "At least one photo must be selected",
	"PhotoIDs.max":      "Maximum 20 photos allowed",
	"Settings.required": "Settings object is required",
}

// IframeConfigData is the normalized result of iframe config validation.
type IframeConfigData struct {
	Name     string
	PhotoIDs []uint
	Settings models.IframeSettings
	IsPublic bool
}

// ValidateIframeConfig clamps numeric settings into their allowed ranges
// and applies defaults. Unlike the other schemas, visibility defaults to
// private.
func (v *Validator) ValidateIframeConfig(req models.CreateIframeConfigRequest) (IframeConfigData, []string) {
	s := iframeConfigSchema{
		Name:     strings.TrimSpace(req.Name),
		PhotoIDs: req.PhotoIDs,
		Settings: req.Settings,
	}
	if errs := v.collect(s, iframeConfigMessages); errs != nil {
		return IframeConfigData{}, errs
	}

	settings := models.IframeSettings{
		Width:           clampInt(s.Settings["width"], DefaultWidth, MinWidth, MaxWidth),
		Height:          clampInt(s.Settings["height"], DefaultHeight, MinHeight, MaxHeight),
		AutoPlay:        boolOrDefault(s.Settings["autoPlay"], true),
		Interval:        clampInt(s.Settings["interval"], DefaultInterval, MinInterval, MaxInterval),
		ShowTitles:      boolOrDefault(s.Settings["showTitles"], true),
		ShowControls:    boolOrDefault(s.Settings["showControls"], true),
		BorderRadius:    clampInt(s.Settings["borderRadius"], DefaultRadius, MinBorderRadius, MaxBorderRadius),
		BackgroundColor: stringOrDefault(s.Settings["backgroundColor"], DefaultBackgroundColor),
	}

	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	return IframeConfigData{
		Name:     s.Name,
		PhotoIDs: s.PhotoIDs,
		Settings: settings,
		IsPublic: isPublic,
	}, nil
}

// clampInt reads a numeric setting (JSON numbers decode as float64),
// falling back to def when absent, zero or not a number.
func clampInt(raw interface{}, def, min, max int) int {
	n := def
	switch v := raw.(type) {
	case float64:
		if v != 0 {
			n = int(v)
		}
	case int:
		if v != 0 {
			n = v
		}
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

func boolOrDefault(raw interface{}, def bool) bool {
	if b, ok := raw.(bool); ok {
		return b
	}
	return def
}

func stringOrDefault(raw interface{}, def string) string {
	if s, ok := raw.(string); ok && s != "" {
		return s
	}
	return def
}
