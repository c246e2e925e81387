// Package validation checks incoming payloads against the login and game
// schemas. Every violated field is collected before returning, so the
// caller sees all problems at once.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"GameCatalogAPI/internal/apperr"
)

const (
	MinPasswordLen = 4
	MinYear        = 1950
	MaxYear        = 2100
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// LoginPayload is the decoded body of POST /auth.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GamePayload is the decoded body of game create and update requests.
// Pointer fields distinguish "absent" from "zero value" so that updates can
// be partial.
type GamePayload struct {
	Title *string  `json:"title"`
	Year  *int     `json:"year"`
	Price *float64 `json:"price"`
}

// ValidateLogin checks the login schema. Returns nil or a *apperr.ValidationError
// listing every failed field.
func ValidateLogin(p LoginPayload) error {
	fields := map[string]string{}
	if p.Email == "" {
		fields["email"] = "email is required"
	} else if !emailRegex.MatchString(p.Email) {
		fields["email"] = "invalid email format"
	}
	if p.Password == "" {
		fields["password"] = "password is required"
	} else if len(p.Password) < MinPasswordLen {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", MinPasswordLen)
	}
	if len(fields) > 0 {
		return &apperr.ValidationError{Fields: fields}
	}
	return nil
}

// ValidateGame checks the game schema. With partial=false every field is
// required (create); with partial=true only fields present in the payload
// are checked (update).
func ValidateGame(p GamePayload, partial bool) error {
	fields := map[string]string{}

	switch {
	case p.Title == nil:
		if !partial {
			fields["title"] = "title is required"
		}
	case strings.TrimSpace(*p.Title) == "":
		fields["title"] = "title must not be empty"
	}

	switch {
	case p.Year == nil:
		if !partial {
			fields["year"] = "year is required"
		}
	case *p.Year < MinYear || *p.Year > MaxYear:
		fields["year"] = fmt.Sprintf("year must be between %d and %d", MinYear, MaxYear)
	}

	switch {
	case p.Price == nil:
		if !partial {
			fields["price"] = "price is required"
		}
	case *p.Price < 0:
		fields["price"] = "price must be greater than or equal to 0"
	}

	if len(fields) > 0 {
		return &apperr.ValidationError{Fields: fields}
	}
	return nil
}
