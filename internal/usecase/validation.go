package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/matheusvll/casaflor-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateConvertLeadInput(input ConvertLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	} else if len(input.Title) > 200 {
		errors = append(errors, ValidationError{"title", "must not exceed 200 characters"})
	}

	startOK := false
	if strings.TrimSpace(input.StartDate) == "" {
		errors = append(errors, ValidationError{"start_date", "is required"})
	} else if !isValidDate(input.StartDate) {
		errors = append(errors, ValidationError{"start_date", "must be a valid date (YYYY-MM-DD)"})
	} else {
		startOK = true
	}

	if strings.TrimSpace(input.EndDate) == "" {
		errors = append(errors, ValidationError{"end_date", "is required"})
	} else if !isValidDate(input.EndDate) {
		errors = append(errors, ValidationError{"end_date", "must be a valid date (YYYY-MM-DD)"})
	} else if startOK && input.EndDate < input.StartDate {
		errors = append(errors, ValidationError{"end_date", "must not be before start_date"})
	}

	if input.Type == "" {
		errors = append(errors, ValidationError{"type", "is required"})
	} else if !entity.KnownEventType(input.Type) {
		errors = append(errors, ValidationError{"type", "must be a known event type"})
	}

	return errors
}

func isValidDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
