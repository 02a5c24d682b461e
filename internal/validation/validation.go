package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hyperengineering/stride/internal/types"
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Collector accumulates validation errors without failing on first.
type Collector struct {
	errors []ValidationError
}

// Add appends a validation error to the collector if non-nil.
func (c *Collector) Add(err *ValidationError) {
	if err != nil {
		c.errors = append(c.errors, *err)
	}
}

// HasErrors returns true if the collector has accumulated any errors.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}

// Errors returns all accumulated validation errors.
func (c *Collector) Errors() []ValidationError {
	return c.errors
}

// ValidateRequired returns an error if the value is empty or whitespace-only.
func ValidateRequired(field, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   field,
			Message: "is required",
		}
	}
	return nil
}

// ValidateMaxLength returns an error if the value exceeds max runes.
func ValidateMaxLength(field, value string, max int) *ValidationError {
	if utf8.RuneCountInString(value) > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("exceeds maximum length of %d characters", max),
		}
	}
	return nil
}

// ValidateUTF8 returns an error if the value is not valid UTF-8.
func ValidateUTF8(field, value string) *ValidationError {
	if !utf8.ValidString(value) {
		return &ValidationError{
			Field:   field,
			Message: "must be valid UTF-8",
		}
	}
	return nil
}

// ValidateDate returns an error if the value is not a YYYY-MM-DD calendar
// date. The string form matters: date ordering elsewhere is lexical.
func ValidateDate(field, value string) *ValidationError {
	if _, err := time.Parse(types.DateFormat, value); err != nil {
		return &ValidationError{
			Field:   field,
			Message: "must be a calendar date in YYYY-MM-DD form",
		}
	}
	return nil
}

// ValidateEnum returns an error if the value is not in the allowed list.
func ValidateEnum(field, value string, allowed []string) *ValidationError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// ValidateEmail returns an error if the value does not look like an email
// address. Deliverability is the mail server's problem, not ours.
func ValidateEmail(field, value string) *ValidationError {
	at := strings.Index(value, "@")
	if at < 1 || at == len(value)-1 || strings.ContainsAny(value, " \t") {
		return &ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		}
	}
	return nil
}

// ValidateMinLength returns an error if the value has fewer than min runes.
func ValidateMinLength(field, value string, min int) *ValidationError {
	if utf8.RuneCountInString(value) < min {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters", min),
		}
	}
	return nil
}

// ValidateIntRange returns an error if the value is outside [min, max].
func ValidateIntRange(field string, value, min, max int) *ValidationError {
	if value < min || value > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d", min, max),
		}
	}
	return nil
}

// ValidateRegisterRequest checks a registration payload.
func ValidateRegisterRequest(req types.RegisterRequest) []ValidationError {
	var c Collector
	c.Add(ValidateRequired("email", req.Email))
	if req.Email != "" {
		c.Add(ValidateEmail("email", req.Email))
		c.Add(ValidateMaxLength("email", req.Email, 254))
	}
	c.Add(ValidateMinLength("password", req.Password, 8))
	c.Add(ValidateMaxLength("name", req.Name, 120))
	return c.Errors()
}

// ValidateJournalRequest checks a journal upsert payload.
func ValidateJournalRequest(req types.JournalRequest) []ValidationError {
	var c Collector
	c.Add(ValidateRequired("date", req.Date))
	if req.Date != "" {
		c.Add(ValidateDate("date", req.Date))
	}
	c.Add(ValidateMaxLength("title", req.Title, 200))
	c.Add(ValidateUTF8("content", req.Content))
	c.Add(ValidateMaxLength("content", req.Content, 20000))
	c.Add(ValidateMaxLength("mood", req.Mood, 32))
	return c.Errors()
}

// ValidateGoalRequest checks a goal creation payload.
func ValidateGoalRequest(req types.GoalRequest) []ValidationError {
	var c Collector
	c.Add(ValidateRequired("title", req.Title))
	c.Add(ValidateMaxLength("title", req.Title, 200))
	c.Add(ValidateMaxLength("description", req.Description, 2000))
	c.Add(ValidateMaxLength("unit", req.Unit, 32))
	if req.Duration != "" {
		c.Add(ValidateEnum("duration", req.Duration, types.GoalDurations))
	}
	if req.TargetValue != nil {
		c.Add(ValidateIntRange("target_value", *req.TargetValue, 0, 1_000_000_000))
	}
	return c.Errors()
}

// ValidateGoalUpdate checks a goal edit payload.
func ValidateGoalUpdate(upd types.GoalUpdate) []ValidationError {
	var c Collector
	if upd.Title != nil {
		c.Add(ValidateRequired("title", *upd.Title))
		c.Add(ValidateMaxLength("title", *upd.Title, 200))
	}
	if upd.Description != nil {
		c.Add(ValidateMaxLength("description", *upd.Description, 2000))
	}
	if upd.Unit != nil {
		c.Add(ValidateMaxLength("unit", *upd.Unit, 32))
	}
	if upd.Duration != nil && *upd.Duration != "" {
		c.Add(ValidateEnum("duration", string(*upd.Duration), types.GoalDurations))
	}
	if upd.TargetValue != nil {
		c.Add(ValidateIntRange("target_value", *upd.TargetValue, 0, 1_000_000_000))
	}
	return c.Errors()
}

// ValidateTaskUpdate checks a task edit payload.
func ValidateTaskUpdate(upd types.TaskUpdate) []ValidationError {
	var c Collector
	if upd.Title != nil {
		c.Add(ValidateRequired("title", *upd.Title))
		c.Add(ValidateMaxLength("title", *upd.Title, 200))
	}
	if upd.Description != nil {
		c.Add(ValidateMaxLength("description", *upd.Description, 2000))
	}
	if upd.Priority != nil {
		c.Add(ValidateEnum("priority", string(*upd.Priority), types.TaskPriorities))
	}
	return c.Errors()
}
