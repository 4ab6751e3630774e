package common

import (
	"bytes"
	"go-login-api/model"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestDecodeCredentials(t *testing.T) {
	t.Run("urlencoded body", func(t *testing.T) {
		var creds model.Credentials
		req := newFormRequest(url.Values{"username": {"admin"}, "password": {"password123"}})

		err := DecodeCredentials(httptest.NewRecorder(), req, &creds)

		assert.NoError(t, err)
		assert.Equal(t, model.Credentials{Username: "admin", Password: "password123"}, creds)
	})

	t.Run("query string", func(t *testing.T) {
		var creds model.Credentials
		req := httptest.NewRequest(http.MethodPost, "/login?username=admin&password=pw", nil)

		err := DecodeCredentials(httptest.NewRecorder(), req, &creds)

		assert.NoError(t, err)
		assert.Equal(t, "admin", creds.Username)
		assert.Equal(t, "pw", creds.Password)
	})

	t.Run("multipart body", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("username", "admin"))
		require.NoError(t, mw.WriteField("password", "password123"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/login", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var creds model.Credentials
		err := DecodeCredentials(httptest.NewRecorder(), req, &creds)

		assert.NoError(t, err)
		assert.Equal(t, "admin", creds.Username)
		assert.Equal(t, "password123", creds.Password)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		var creds model.Credentials
		req := newFormRequest(url.Values{})

		err := DecodeCredentials(httptest.NewRecorder(), req, &creds)

		require.Error(t, err)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		fields := []string{}
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		assert.ElementsMatch(t, []string{"username", "password"}, fields)
	})

	t.Run("empty password only", func(t *testing.T) {
		var creds model.Credentials
		req := newFormRequest(url.Values{"username": {"admin"}, "password": {""}})

		err := DecodeCredentials(httptest.NewRecorder(), req, &creds)

		assert.Error(t, err)
		assert.Equal(t, "admin", creds.Username)
	})

	t.Run("malformed body", func(t *testing.T) {
		var creds model.Credentials
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := DecodeCredentials(httptest.NewRecorder(), req, &creds)

		assert.Error(t, err)
	})
}
