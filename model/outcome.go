package model

type LoginOutcome string

const (
	LoginSuccess LoginOutcome = "success"
	LoginFailure LoginOutcome = "failure"
)

// Message is the user-visible text rendered for the outcome.
func (o LoginOutcome) Message() string {
	if o == LoginSuccess {
		return "Login Successful"
	}
	return "Login Failed"
}

// OutcomeOf maps an authentication result to its outcome.
func OutcomeOf(authenticated bool) LoginOutcome {
	if authenticated {
		return LoginSuccess
	}
	return LoginFailure
}
