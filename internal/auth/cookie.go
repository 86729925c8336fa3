package auth

import (
	"errors"
	"net/http"
)

// AuthCookieName is the cookie that carries the token.
const AuthCookieName = "auth_token"

var ErrNoCookie = errors.New("auth cookie not present")

// SetAuthCookie stores token in an HttpOnly cookie whose lifetime matches
// TokenTTL. secure should be true in production.
func SetAuthCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie tells the browser to drop the auth cookie. It does not
// invalidate the token itself.
func ClearAuthCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromCookie returns the token stored in the auth cookie, or ErrNoCookie.
func TokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoCookie
	}
	return cookie.Value, nil
}
