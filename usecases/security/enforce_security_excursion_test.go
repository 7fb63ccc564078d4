package security

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/naturetrails/trails-backend/models"
)

func TestExcursionCreatorOrAdmin(t *testing.T) {
	creator := models.User{Id: uuid.New(), Role: models.USER, Active: true}
	otherUser := models.User{Id: uuid.New(), Role: models.USER, Active: true}
	admin := models.User{Id: uuid.New(), Role: models.ADMIN, Active: true}

	excursion := models.Excursion{Id: uuid.New(), CreatorId: creator.Id}

	tts := []struct {
		name    string
		actor   models.User
		allowed bool
	}{
		{"creator can update their excursion", creator, true},
		{"admin can update any excursion", admin, true},
		{"other users cannot update the excursion", otherUser, false},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			creds := tt.actor.IntoCredentials()
			e := EnforceSecurityExcursionImpl{
				EnforceSecurity: NewEnforceSecurity(creds),
				Credentials:     creds,
			}

			outcome := e.UpdateExcursion(excursion)

			if tt.allowed {
				assert.NoError(t, outcome)
			} else {
				assert.ErrorIs(t, outcome, models.ForbiddenError)
			}
		})
	}
}

func TestInstallationCredentialScope(t *testing.T) {
	installation := models.Installation{Id: uuid.New()}
	other := models.Installation{Id: uuid.New()}

	creds := installation.IntoCredentials()
	e := EnforceSecurityInstallationImpl{
		EnforceSecurity: NewEnforceSecurity(creds),
		Credentials:     creds,
	}

	assert.NoError(t, e.CreateInstallationEvent(installation))
	assert.ErrorIs(t, e.CreateInstallationEvent(other), models.ForbiddenError)
	assert.ErrorIs(t, e.ListInstallations(), models.ForbiddenError)
}
