package client

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnauthenticated is returned before any network traffic when an
// action needs account credentials and the client has none.
var ErrUnauthenticated = errors.New("action requires an authenticated account")

// Named sentinel errors for the negative codes the servers attach
// meaning to. Codes without a mapping surface as *ServerError.
var (
	ErrUsernameTaken     = errors.New("username is taken")
	ErrEmailTaken        = errors.New("email is taken")
	ErrUsernameTooLong   = errors.New("username is too long")
	ErrUsernameTooShort  = errors.New("username is too short")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrWrongCredentials  = errors.New("login or password is incorrect")
	ErrAccountDisabled   = errors.New("account is disabled")
	ErrListInvalidName   = errors.New("invalid list name")
	ErrListMissingName   = errors.New("missing list name")
	ErrListInvalidLevels = errors.New("invalid level list")
	ErrInvalidAccountID  = errors.New("invalid account ID")
	ErrInvalidSeed       = errors.New("invalid seed")
	ErrRateLimited       = errors.New("ratelimited")
	ErrWrongSecret       = errors.New("incorrect secret")
)

// ServerError is a negative protocol code with no named mapping.
type ServerError struct {
	Code int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request (code %d)", e.Code)
}

var registerErrors = map[int]error{
	-2: ErrUsernameTaken,
	-3: ErrEmailTaken,
	-4: ErrUsernameTooLong,
	-5: ErrInvalidPassword,
	-6: ErrInvalidEmail,
	-8: ErrUsernameTooShort,
	-9: ErrPasswordTooShort,
}

var loginErrors = map[int]error{
	-8:  ErrUsernameTooShort,
	-9:  ErrPasswordTooShort,
	-11: ErrWrongCredentials,
	-12: ErrAccountDisabled,
}

var uploadListErrors = map[int]error{
	-4:   ErrListInvalidName,
	-5:   ErrListMissingName,
	-6:   ErrListInvalidLevels,
	-9:   ErrInvalidAccountID,
	-10:  ErrInvalidSeed,
	-11:  ErrWrongCredentials,
	-12:  ErrRateLimited,
	-100: ErrWrongSecret,
}

// negativeCode parses a bare negative integer body. Anything that is
// not one, including "-1 extra" style bodies, returns ok=false.
func negativeCode(body string) (int, bool) {
	s := strings.TrimSpace(body)
	if !strings.HasPrefix(s, "-") {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n >= 0 {
		return 0, false
	}
	return n, true
}

// bodyError maps a response body to an error using the given sentinel
// table. A nil table still maps every negative code to *ServerError.
func bodyError(body string, table map[int]error) error {
	code, ok := negativeCode(body)
	if !ok {
		return nil
	}
	if err, ok := table[code]; ok {
		return err
	}
	return &ServerError{Code: code}
}
