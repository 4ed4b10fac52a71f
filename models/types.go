package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bonus check outcomes
const (
	StatusSuccess      = "success"
	StatusUnauthorized = "unauthorized"
	StatusInvalidCode  = "invalid_code"
	StatusAlreadyUsed  = "already_used"
)

// Error messages returned in ErrorResponse.Error
const (
	ErrMissingParameters = "missing parameters"
	ErrInvalidJSON       = "invalid JSON"
	ErrUnauthorized      = "unauthorized"
	ErrTooManyRequests   = "too many requests"
)

// Day is a day number that accepts a JSON number or a numeric string.
// Integral floats such as 5.0 are accepted.
type Day int

func (d *Day) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = 0
		return nil
	}

	text := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("day must be a number: %w", err)
		}
		text = strings.TrimSpace(s)
		if text == "" {
			*d = 0
			return nil
		}
	}

	n, err := parseWholeNumber(text)
	if err != nil {
		return fmt.Errorf("day must be a number: %w", err)
	}
	*d = Day(n)
	return nil
}

func parseWholeNumber(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%s is not a whole number", s)
	}
	return int(f), nil
}

// Phone is a phone number that accepts a JSON string or a bare JSON number.
// A number keeps its literal digits.
type Phone string

func (p *Phone) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Phone(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("phone must be a string or number: %w", err)
	}
	*p = Phone(n.String())
	return nil
}

// Request types

type CheckBonusRequest struct {
	Phone Phone  `json:"phone"`
	Day   Day    `json:"day"`
	Code  string `json:"code"`
}

type AddUserRequest struct {
	Name      string `json:"name"`
	Phone     Phone  `json:"phone"`
	SecretKey string `json:"secretKey"`
}

// Response types

type CheckBonusResponse struct {
	Status string `json:"status"`
}

type AddUserResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
