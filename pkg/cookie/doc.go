// Package cookie provides a small manager for reading and writing HTTP
// cookies with shared default attributes (Path "/", HttpOnly, SameSite=Lax)
// and per-call functional overrides.
//
//	mgr := cookie.New(cookie.WithSecure(true))
//	mgr.Set(w, "SESSION", id, cookie.WithMaxAge(3600))
//	id, err := mgr.Get(r, "SESSION")
//	mgr.Delete(w, "SESSION")
//
// Delete emits a clearing cookie: empty value, MaxAge -1 and an epoch
// Expires so legacy clients drop it too. Values are stored verbatim per
// RFC 6265; the package deliberately does no signing or encryption.
package cookie
