package registration

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// Validate checks the request structurally before any external call. A non-nil
// result maps field names to the reason they were rejected; the orchestrator
// turns it into a ValidationError outcome without touching collaborators.
func Validate(req Request) map[string]string {
	fields := make(map[string]string)

	requireString(fields, "first_name", req.FirstName, 100)
	requireString(fields, "last_name", req.LastName, 100)
	requireString(fields, "street1", req.Address.Street1, 200)
	requireString(fields, "city", req.Address.City, 100)
	requireString(fields, "zip_code", req.Address.ZipCode, 20)
	requireString(fields, "country", req.Address.Country, 60)

	switch {
	case strings.TrimSpace(req.Email) == "":
		fields["email"] = "required"
	case !govalidator.IsEmail(req.Email) || !govalidator.StringLength(req.Email, "3", "255"):
		fields["email"] = "must be a well-formed email address"
	}

	if len(req.Password) < 8 {
		fields["password"] = "must be at least 8 characters"
	}

	if strings.TrimSpace(req.Phone) == "" {
		fields["phone"] = "required"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func requireString(fields map[string]string, name, value string, max int) {
	if strings.TrimSpace(value) == "" {
		fields[name] = "required"
		return
	}
	if max > 0 && len(value) > max {
		fields[name] = "too long"
	}
}
