// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package core

import (
	"errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Sentinel errors of the rule engine. Services return these (wrapped);
// controllers and the central error handler translate them to HTTP status
// codes. Authorization and validation failures are raised before any write,
// so no partial state is ever committed.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// ValidationError carries a caller-facing message, e.g. a missing
// justification on a NOT_APPLICABLE transition.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// TranslateError maps engine errors to echo HTTP errors. Unknown errors stay
// untouched and end up as 500s in the central handler.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(404, "not found").WithInternal(err)
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(403, "forbidden").WithInternal(err)
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(400, validationErr.Message).WithInternal(err)
	case errors.Is(err, ErrConflict):
		return echo.NewHTTPError(409, "conflict").WithInternal(err)
	}
	return err
}
