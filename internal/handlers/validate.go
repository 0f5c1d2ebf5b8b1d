package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/apierr"
)

var validate = validator.New()

// parseBody unmarshals and validates a request body, translating failures
// into VALIDATION errors.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apierr.Validation("invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return apierr.Validation(fmt.Sprintf("%s failed %s validation", fieldName(fe), fe.Tag()))
		}
		return apierr.Validation("invalid request body")
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "field"
	}
	return strings.ToLower(name[:1]) + name[1:]
}
