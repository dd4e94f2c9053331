// Package validation holds one explicit parse-and-validate function per
// endpoint. Each returns either fully typed parameters or the complete
// list of failing fields, and is callable without any HTTP context.
package validation

import (
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"tara_na/internal/store"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// RouteListQuery is the validated query for GET /routes.
type RouteListQuery struct {
	LGU  string `json:"lgu"`
	Type string `json:"type" validate:"omitempty,oneof=jeepney tricycle bus"`
}

func RouteList(q url.Values) (RouteListQuery, FieldErrors) {
	out := RouteListQuery{
		LGU:  q.Get("lgu"),
		Type: q.Get("type"),
	}
	return out, check(out, nil)
}

// AnnouncementListQuery is the validated query for GET /announcements.
type AnnouncementListQuery struct {
	LGU   string `json:"lgu"`
	Limit int    `json:"limit" validate:"min=1,max=200"`
}

func AnnouncementList(q url.Values) (AnnouncementListQuery, FieldErrors) {
	out := AnnouncementListQuery{LGU: q.Get("lgu")}
	limit, errs := parseLimit(q.Get("limit"))
	out.Limit = limit
	return out, check(out, errs)
}

// ReportListQuery is the validated query for GET /reports.
type ReportListQuery struct {
	Limit   int    `json:"limit" validate:"min=1,max=200"`
	RouteID string `json:"route_id" validate:"omitempty,uuid"`
	TripID  string `json:"trip_id" validate:"omitempty,uuid"`
}

func ReportList(q url.Values) (ReportListQuery, FieldErrors) {
	out := ReportListQuery{
		RouteID: q.Get("route_id"),
		TripID:  q.Get("trip_id"),
	}
	limit, errs := parseLimit(q.Get("limit"))
	out.Limit = limit
	return out, check(out, errs)
}

// ReportCreateInput is the validated body for POST /reports. Location
// coordinates are pointers so an object missing lat or lng is rejected
// rather than silently zeroed.
type ReportCreateInput struct {
	Type     string  `json:"type" validate:"required"`
	Text     *string `json:"text"`
	RouteID  *string `json:"route_id" validate:"omitempty,uuid"`
	TripID   *string `json:"trip_id" validate:"omitempty,uuid"`
	Location *struct {
		Lat *float64 `json:"lat" validate:"required"`
		Lng *float64 `json:"lng" validate:"required"`
	} `json:"location"`
}

func ReportCreate(body io.Reader) (ReportCreateInput, FieldErrors) {
	var in ReportCreateInput
	if err := json.NewDecoder(body).Decode(&in); err != nil {
		return in, FieldErrors{{Field: "body", Message: "must be a JSON object"}}
	}
	return in, check(in, nil)
}

// parseLimit coerces the raw limit parameter, applying the default when
// absent. A non-numeric value becomes a field error and the default is
// substituted so range validation does not double-report.
func parseLimit(raw string) (int, FieldErrors) {
	if raw == "" {
		return store.DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return store.DefaultLimit, FieldErrors{{Field: "limit", Message: "must be a number"}}
	}
	return n, nil
}

// check runs struct validation and appends every violation to errs.
func check(v any, errs FieldErrors) FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return append(errs, FieldError{Field: "request", Message: err.Error()})
	}
	for _, fe := range verrs {
		errs = append(errs, FieldError{Field: fieldName(fe), Message: message(fe)})
	}
	return errs
}

// fieldName strips the root struct from the namespace so nested fields
// read as location.lat rather than ReportCreateInput.location.lat.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "uuid":
		return "must be a valid uuid"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}
