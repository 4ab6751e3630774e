package handler

import (
	"bytes"
	"go-login-api/common"
	"go-login-api/logger"
	"go-login-api/model"
	"go-login-api/telemetry"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

const htmlContentType = "text/html; charset=utf-8"

// Authenticator checks a submitted credential pair.
type Authenticator interface {
	Authenticate(creds model.Credentials) bool
}

// Renderer produces the HTML pages served by LoginHandler.
type Renderer interface {
	RenderResult(w io.Writer, outcome model.LoginOutcome) error
	RenderForm(w io.Writer) error
}

// LoginHandler serves the form login endpoint. It keeps no per-request state.
type LoginHandler struct {
	auth     Authenticator
	renderer Renderer
}

func NewLoginHandler(auth Authenticator, renderer Renderer) *LoginHandler {
	return &LoginHandler{auth: auth, renderer: renderer}
}

// Login godoc
// @Summary      Log in with a username and password
// @Description  Checks the submitted form credentials. Always answers 200 with an HTML page reading "Login Successful" or "Login Failed".
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username formData string false "Username"
// @Param        password formData string false "Password"
// @Success      200  {string}  string "HTML page with the login outcome"
// @Failure      500  {object}  common.AppError "Response could not be rendered"
// @Router       /login [post]
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var creds model.Credentials
	authenticated := false

	// The decode error itself is not logged; it can quote raw body bytes.
	if err := common.DecodeCredentials(w, r, &creds); err != nil {
		logger.Log.WithField("remote_addr", r.RemoteAddr).Debug("Login form incomplete or malformed")
	} else {
		authenticated = h.auth.Authenticate(creds)
	}

	outcome := model.OutcomeOf(authenticated)
	telemetry.RecordLogin(outcome)

	fields := logrus.Fields{
		"outcome":     outcome,
		"remote_addr": r.RemoteAddr,
	}
	// A failed username may be a mistyped password, so it stays at debug.
	if authenticated {
		fields["username"] = creds.Username
	} else {
		logger.Log.WithField("username", creds.Username).Debug("Failed login username")
	}
	logger.Log.WithFields(fields).Info("Login attempt")

	var buf bytes.Buffer
	if err := h.renderer.RenderResult(&buf, outcome); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not render login result", err)
	}

	writeHTML(w, http.StatusOK, buf.Bytes())
	return nil
}

// LoginForm godoc
// @Summary      Show the login form
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string "HTML login form"
// @Failure      500  {object}  common.AppError "Form could not be rendered"
// @Router       /login [get]
func (h *LoginHandler) LoginForm(w http.ResponseWriter, r *http.Request) *common.AppError {
	var buf bytes.Buffer
	if err := h.renderer.RenderForm(&buf); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not render login form", err)
	}

	writeHTML(w, http.StatusOK, buf.Bytes())
	return nil
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Log.WithError(err).Debug("Failed to write response body")
	}
}
