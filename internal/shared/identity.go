package shared

import "strconv"

// SessionCompanyKey stores the active company id in the session.
const SessionCompanyKey = "company_id"

// Identity is the caller context stamped onto every tenant-scoped write:
// who is acting and which company they are acting for. It is resolved from
// the server-side session, never from client input.
type Identity struct {
	UserID    int64
	CompanyID int64
}

// IdentityFromSession resolves the caller identity from a loaded session.
func IdentityFromSession(sess *Session) (Identity, error) {
	if sess == nil {
		return Identity{}, ErrNoIdentity
	}
	userID, err := strconv.ParseInt(sess.User(), 10, 64)
	if err != nil || userID <= 0 {
		return Identity{}, ErrNoIdentity
	}
	companyID, err := strconv.ParseInt(sess.Get(SessionCompanyKey), 10, 64)
	if err != nil || companyID <= 0 {
		return Identity{}, ErrNoIdentity
	}
	return Identity{UserID: userID, CompanyID: companyID}, nil
}
