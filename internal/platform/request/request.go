// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.

# Boolean query parameters

Optional boolean filters accept exactly the representations understood by
[strconv.ParseBool]: "1", "t", "T", "true", "TRUE", "True" and
"0", "f", "F", "false", "FALSE", "False". An absent or empty parameter means
"no filter". Any other value is rejected with a validation error.
*/
package requestutil

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
	"github.com/taibuivan/bookshelf/pkg/convert"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
OptionalBool reads a boolean query parameter.

Returns:
  - *bool: nil when the parameter is absent or empty
  - error: apperr.ValidationError when the value is not a recognised boolean
*/
func OptionalBool(request *http.Request, name string) (*bool, error) {
	raw := request.URL.Query().Get(name)

	value, ok := convert.ToOptionalBool(raw)
	if !ok {
		return nil, apperr.ValidationError(
			fmt.Sprintf("Parameter %s tidak valid", name),
			apperr.FieldError{Field: name, Message: "Must be one of: true, false, 1, 0"},
		)
	}

	return value, nil
}
