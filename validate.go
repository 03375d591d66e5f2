package sitecore

import (
	"net/mail"
	"strings"
)

// Input length limits shared by the validation functions.
const (
	maxNameLen      = 200
	maxEmailLen     = 320
	maxCompanyLen   = 200
	maxMessageLen   = 5000
	maxTitleLen     = 300
	maxSlugLen      = 300
	maxPathLen      = 2048
	maxReferrerLen  = 2048
	maxUserAgentLen = 512
)

func requireField(errs []FieldError, field, value string, maxLen int) []FieldError {
	switch {
	case strings.TrimSpace(value) == "":
		errs = append(errs, FieldError{Field: field, Message: field + " is required"})
	case len(value) > maxLen:
		errs = append(errs, FieldError{Field: field, Message: field + " is too long"})
	}
	return errs
}

func validateInquiry(in NewInquiry) []FieldError {
	var errs []FieldError
	errs = requireField(errs, "name", in.Name, maxNameLen)
	errs = requireField(errs, "email", in.Email, maxEmailLen)
	errs = requireField(errs, "inquiryType", in.InquiryType, maxNameLen)
	errs = requireField(errs, "message", in.Message, maxMessageLen)
	if strings.TrimSpace(in.Email) != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			errs = append(errs, FieldError{Field: "email", Message: "email is not a valid address"})
		}
	}
	if len(in.Company) > maxCompanyLen {
		errs = append(errs, FieldError{Field: "company", Message: "company is too long"})
	}
	return errs
}

func validateBlogPost(in NewBlogPost) []FieldError {
	var errs []FieldError
	errs = requireField(errs, "title", in.Title, maxTitleLen)
	errs = requireField(errs, "slug", in.Slug, maxSlugLen)
	errs = requireField(errs, "excerpt", in.Excerpt, maxMessageLen)
	errs = requireField(errs, "content", in.Content, 1<<20)
	errs = requireField(errs, "author", in.Author, maxNameLen)
	errs = requireField(errs, "category", in.Category, maxNameLen)
	return errs
}

func validateProject(in NewPortfolioProject) []FieldError {
	var errs []FieldError
	errs = requireField(errs, "title", in.Title, maxTitleLen)
	errs = requireField(errs, "industry", in.Industry, maxNameLen)
	errs = requireField(errs, "problem", in.Problem, maxMessageLen)
	errs = requireField(errs, "solution", in.Solution, maxMessageLen)
	errs = requireField(errs, "outcome", in.Outcome, maxMessageLen)
	if in.Order < 0 {
		errs = append(errs, FieldError{Field: "order", Message: "order must not be negative"})
	}
	return errs
}

func validateInquiryStatus(status string) []FieldError {
	for _, s := range InquiryStatuses {
		if status == s {
			return nil
		}
	}
	return []FieldError{{Field: "status", Message: "status must be one of: " + strings.Join(InquiryStatuses, ", ")}}
}

func validatePageView(in NewPageView) []FieldError {
	var errs []FieldError
	errs = requireField(errs, "path", in.Path, maxPathLen)
	if len(in.Referrer) > maxReferrerLen {
		errs = append(errs, FieldError{Field: "referrer", Message: "referrer is too long"})
	}
	if len(in.UserAgent) > maxUserAgentLen {
		errs = append(errs, FieldError{Field: "userAgent", Message: "userAgent is too long"})
	}
	return errs
}

func validateCredentials(username, password string) []FieldError {
	var errs []FieldError
	errs = requireField(errs, "username", username, maxNameLen)
	errs = requireField(errs, "password", password, maxNameLen)
	return errs
}
