package rules

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/validation"
)

func infoTitle() validation.Validator[Doc, openapi.Info] {
	return validation.New("info-title", func(c validation.Context[Doc, openapi.Info]) validation.Validity {
		if strings.TrimSpace(c.Subject.Title) == "" {
			return c.InvalidAt("title is required", validation.Key("title"))
		}
		return validation.Valid()
	})
}

func infoVersion() validation.Validator[Doc, openapi.Info] {
	return validation.New("info-version", func(c validation.Context[Doc, openapi.Info]) validation.Validity {
		if strings.TrimSpace(c.Subject.Version) == "" {
			return c.InvalidAt("version is required", validation.Key("version"))
		}
		return validation.Valid()
	})
}

func contactEmail() validation.Validator[Doc, *openapi.Contact] {
	return validation.New("contact-email", func(c validation.Context[Doc, *openapi.Contact]) validation.Validity {
		addr, err := mail.ParseAddress(c.Subject.Email)
		if err != nil || addr.Address != c.Subject.Email {
			return c.InvalidAt(fmt.Sprintf("email %q is not a valid address", c.Subject.Email), validation.Key("email"))
		}
		return validation.Valid()
	}, validation.WithPredicate(func(c validation.Context[Doc, *openapi.Contact]) bool {
		return c.Subject.Email != ""
	}))
}

func licenseName() validation.Validator[Doc, *openapi.License] {
	return validation.New("license-name", func(c validation.Context[Doc, *openapi.License]) validation.Validity {
		if strings.TrimSpace(c.Subject.Name) == "" {
			return c.InvalidAt("license name is required", validation.Key("name"))
		}
		return validation.Valid()
	})
}
