package common

import (
	"errors"
	"go-login-api/model"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxFormBytes = 1 << 20 // 1MB

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their form name so errors read "username", not "Username".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeCredentials reads the username and password form fields from the
// query string or a urlencoded/multipart body into creds, then validates them.
// creds is filled in as far as parsing got even when an error is returned.
func DecodeCredentials(w http.ResponseWriter, r *http.Request, creds *model.Credentials) error {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}

	creds.Username = r.Form.Get("username")
	creds.Password = r.Form.Get("password")

	return validate.Struct(creds)
}
