package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// nowFn is a test seam for the expiry check.
var nowFn = time.Now

// TokenExpiry peeks at the token's exp claim without verifying the
// signature. Advisory only: it lets the client skip a validation round trip
// for a clearly expired token and show the expiry in status output. The
// backend stays the authority on whether a token is actually good.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
