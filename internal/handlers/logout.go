package handlers

import (
	"net/http"
)

// CookieClearer expires the session cookie.
type CookieClearer interface {
	ClearCookie(w http.ResponseWriter)
}

// NewLogoutHandler returns an HTTP handler that clears the session
// cookie and redirects to the landing page.
// @Summary Log out
// @Tags auth
// @Success 302 "Redirects to /"
// @Router /login/logout [get]
func NewLogoutHandler(cookies CookieClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookies.ClearCookie(w)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
