// file: model/request.go

package model

// Credentials is the credential pair submitted with a login form.
// Either field may be missing from the request, in which case it is empty.
type Credentials struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
