package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate applies the field rules every stored plan must satisfy: a non-blank
// concert name and city, non-negative prices and Pending/Booked statuses.
func (p ConcertPlan) Validate() error {
	if strings.TrimSpace(p.ConcertName) == "" || strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("%w: concert name and city are required", ErrInvalidPlan)
	}

	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, describe(err))
	}

	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
