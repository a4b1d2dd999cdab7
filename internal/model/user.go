package model

const AdminRole = "Admin"

type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`

	// Enriched fields, filled in best-effort from /auth/user-info.
	Name            string `json:"name,omitempty"`
	Age             string `json:"age,omitempty"`
	EnforceKidsMode bool   `json:"enforceKidsMode,omitempty"`
}

func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the authenticated actor: an opaque bearer token with an
// embedded expiry claim plus the profile returned alongside it.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserInfo is the extended profile payload for /auth/user-info and
// /auth/update.
type UserInfo struct {
	Email           string   `json:"email,omitempty"`
	Name            string   `json:"name,omitempty"`
	FirstName       string   `json:"firstName,omitempty"`
	LastName        string   `json:"lastName,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Username        string   `json:"username,omitempty"`
	Age             string   `json:"age,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	Zip             string   `json:"zip,omitempty"`
	Services        []string `json:"services,omitempty"`
	EnforceKidsMode bool     `json:"enforceKidsMode,omitempty"`
}

// RegisterRequest is the full registration payload. Only email and the
// password pair are required; the demographic fields feed the
// collaborator's recommendation models.
type RegisterRequest struct {
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
	FullName        string   `json:"fullName,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Username        string   `json:"username,omitempty"`
	Age             string   `json:"age,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	Zip             string   `json:"zip,omitempty"`
	Services        []string `json:"services,omitempty"`
}
