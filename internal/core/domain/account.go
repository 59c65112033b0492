package domain

// DefaultAccountRole is assigned when registration does not name a role.
const DefaultAccountRole = "user"

// Account is an authentication identity able to log in.
type Account struct {
	AccountID        string  `json:"accountID"`
	Username         string  `json:"username"`
	PasswordHash     string  `json:"-"`
	Phone            string  `json:"phone"`
	Role             string  `json:"role"`
	IsActive         bool    `json:"isActive"`
	IsVerified       bool    `json:"isVerified"`
	VerificationCode *string `json:"verificationCode,omitempty"`
	AuditFields
}
