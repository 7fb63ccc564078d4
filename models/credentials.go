package models

import (
	"time"

	"github.com/google/uuid"
)

// CredentialKind discriminates the accepted kinds of bearer credentials.
type CredentialKind int

const (
	CredentialKindUser CredentialKind = iota
	CredentialKindInstallation
	CredentialKindInvitation
	CredentialKindPasswordReset
)

func (k CredentialKind) String() string {
	switch k {
	case CredentialKindUser:
		return "user"
	case CredentialKindInstallation:
		return "installation"
	case CredentialKindInvitation:
		return "invitation"
	case CredentialKindPasswordReset:
		return "passwordReset"
	default:
		return "unknown"
	}
}

func CredentialKindFromString(s string) (CredentialKind, bool) {
	switch s {
	case "user":
		return CredentialKindUser, true
	case "installation":
		return CredentialKindInstallation, true
	case "invitation":
		return CredentialKindInvitation, true
	case "passwordReset":
		return CredentialKindPasswordReset, true
	}
	return 0, false
}

// Principal is the authenticated identity attached to a request. Exactly one
// variant exists per credential kind, each carrying only the fields relevant
// to that kind.
type Principal interface {
	Kind() CredentialKind
}

type UserPrincipal struct {
	User User
}

func (p UserPrincipal) Kind() CredentialKind { return CredentialKindUser }

type InstallationPrincipal struct {
	InstallationId uuid.UUID
}

func (p InstallationPrincipal) Kind() CredentialKind { return CredentialKindInstallation }

type InvitationPrincipal struct {
	Email     string
	Role      Role
	ExpiresAt time.Time
}

func (p InvitationPrincipal) Kind() CredentialKind { return CredentialKindInvitation }

type PasswordResetPrincipal struct {
	UserId    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

func (p PasswordResetPrincipal) Kind() CredentialKind { return CredentialKindPasswordReset }

// Identity carries displayable information about who acts, for logs.
type Identity struct {
	UserId         uuid.UUID
	Email          string
	InstallationId uuid.UUID
}

type Credentials struct {
	Principal     Principal
	ActorIdentity Identity
	Role          Role
}

func (c Credentials) UserId() (uuid.UUID, bool) {
	p, ok := c.Principal.(UserPrincipal)
	if !ok {
		return uuid.Nil, false
	}
	return p.User.Id, true
}

func (u User) IntoCredentials() Credentials {
	return Credentials{
		Principal: UserPrincipal{User: u},
		ActorIdentity: Identity{
			UserId: u.Id,
			Email:  u.Email,
		},
		Role: u.Role,
	}
}

func (i Installation) IntoCredentials() Credentials {
	return Credentials{
		Principal: InstallationPrincipal{InstallationId: i.Id},
		ActorIdentity: Identity{
			InstallationId: i.Id,
		},
		Role: INSTALLATION_CLIENT,
	}
}
