package service

// IdentityService resolves a bearer token presented to a gated route into a
// user id. It is optional: without it every caller is anonymous.
type IdentityService interface {
	Identify(token string) (userID string, err error)
}
