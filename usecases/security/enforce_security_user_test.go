package security

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/pure_utils"
)

func TestUpdateUserProtectedAttributes(t *testing.T) {
	self := models.User{
		Id:     uuid.New(),
		Email:  "jane@example.com",
		Role:   models.USER,
		Active: true,
	}

	tts := []struct {
		name    string
		update  models.UpdateUser
		allowed bool
		field   string
	}{
		{
			name:    "self-service fields are open",
			update:  models.UpdateUser{Id: self.Id, FirstName: pure_utils.Ptr("Jane")},
			allowed: true,
		},
		{
			name: "unchanged protected values pass",
			update: models.UpdateUser{
				Id:     self.Id,
				Email:  pure_utils.Ptr("jane@example.com"),
				Role:   pure_utils.Ptr(models.USER),
				Active: pure_utils.Ptr(true),
			},
			allowed: true,
		},
		{
			name:    "changing active is forbidden",
			update:  models.UpdateUser{Id: self.Id, Active: pure_utils.Ptr(false)},
			allowed: false,
			field:   "active",
		},
		{
			name:    "changing email is forbidden",
			update:  models.UpdateUser{Id: self.Id, Email: pure_utils.Ptr("other@example.com")},
			allowed: false,
			field:   "email",
		},
		{
			name:    "changing role is forbidden",
			update:  models.UpdateUser{Id: self.Id, Role: pure_utils.Ptr(models.ADMIN)},
			allowed: false,
			field:   "role",
		},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			creds := self.IntoCredentials()
			e := EnforceSecurityUserImpl{
				EnforceSecurity: NewEnforceSecurity(creds),
				Credentials:     creds,
			}

			outcome := e.UpdateUser(self, tt.update)

			if tt.allowed {
				assert.NoError(t, outcome)
				return
			}
			assert.ErrorIs(t, outcome, models.ForbiddenError)
			assert.ErrorContains(t, outcome, tt.field)
		})
	}
}

func TestUpdateUserAsAdmin(t *testing.T) {
	admin := models.User{Id: uuid.New(), Role: models.ADMIN, Active: true}
	target := models.User{Id: uuid.New(), Email: "target@example.com", Role: models.USER, Active: true}

	creds := admin.IntoCredentials()
	e := EnforceSecurityUserImpl{
		EnforceSecurity: NewEnforceSecurity(creds),
		Credentials:     creds,
	}

	update := models.UpdateUser{Id: target.Id, Active: pure_utils.Ptr(false), Role: pure_utils.Ptr(models.ADMIN)}
	assert.NoError(t, e.UpdateUser(target, update))
}

func TestUpdateUserOfSomeoneElse(t *testing.T) {
	self := models.User{Id: uuid.New(), Role: models.USER, Active: true}
	target := models.User{Id: uuid.New(), Role: models.USER, Active: true}

	creds := self.IntoCredentials()
	e := EnforceSecurityUserImpl{
		EnforceSecurity: NewEnforceSecurity(creds),
		Credentials:     creds,
	}

	outcome := e.UpdateUser(target, models.UpdateUser{Id: target.Id, FirstName: pure_utils.Ptr("X")})
	assert.ErrorIs(t, outcome, models.ForbiddenError)
}

func TestPermissionErrorNamesMissingPrivilege(t *testing.T) {
	user := models.User{Id: uuid.New(), Role: models.USER, Active: true}

	creds := user.IntoCredentials()
	e := EnforceSecurityTrailImpl{
		EnforceSecurity: NewEnforceSecurity(creds),
		Credentials:     creds,
	}

	outcome := e.CreateTrail()
	assert.ErrorIs(t, outcome, models.ForbiddenError)
	assert.ErrorContains(t, outcome, "TRAIL_CREATE")
}
