package session

import "net/http"

// BasketCookie is the cookie carrying the anonymous basket reference.
// TokenCookie carries the signed session token after authentication.
const (
	BasketCookie = "gk_basket"
	TokenCookie  = "gk_session"
)

// CookieMarker adapts the anonymous basket cookie to the Marker interface.
// Clear expires the cookie on the response; if the merge fails Clear is never
// called and the client keeps the cookie for the next attempt.
type CookieMarker struct {
	r *http.Request
	w http.ResponseWriter
}

func NewCookieMarker(w http.ResponseWriter, r *http.Request) *CookieMarker {
	return &CookieMarker{r: r, w: w}
}

func (m *CookieMarker) Ref() (string, bool) {
	cookie, err := m.r.Cookie(BasketCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (m *CookieMarker) Clear() {
	http.SetCookie(m.w, &http.Cookie{
		Name:     BasketCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
