package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/usecases"
	"github.com/naturetrails/trails-backend/utils"
)

func addRoutes(r *gin.Engine, auth utils.Authentication, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/auth", handlePostAuth(uc))
	r.POST("/installations", handlePostInstallation(uc))
	r.POST("/password-reset", handlePostPasswordResetRequest(uc))
	r.POST("/password-reset/complete",
		auth.AuthedBy(models.CredentialKindPasswordReset),
		handlePostPasswordResetComplete(uc))

	// Registration is open to invitation tokens, creation to logged-in
	// admins. The policy layer tells the two flows apart.
	r.POST("/users",
		auth.AuthedBy(models.CredentialKindUser, models.CredentialKindInvitation),
		handlePostUser(uc))

	asUser := r.Group("/", auth.AuthedBy(models.CredentialKindUser))

	asUser.GET("/trails", handleListTrails(uc))
	asUser.POST("/trails", handlePostTrail(uc))
	asUser.GET("/trails/:trail_id", handleGetTrail(uc))
	asUser.PATCH("/trails/:trail_id", handlePatchTrail(uc))
	asUser.GET("/trails/:trail_id/zones", handleListZonesOfTrail(uc))
	asUser.GET("/zones/:zone_id", handleGetZone(uc))

	asUser.GET("/species", handleListSpecies(uc))
	asUser.GET("/species/:species_id", handleGetSpecies(uc))
	asUser.GET("/points-of-interest", handleListPointsOfInterest(uc))
	asUser.GET("/points-of-interest/:poi_id", handleGetPointOfInterest(uc))

	asUser.GET("/excursions", handleListExcursions(uc))
	asUser.POST("/excursions", handlePostExcursion(uc))
	asUser.GET("/excursions/:excursion_id", handleGetExcursion(uc))
	asUser.PATCH("/excursions/:excursion_id", handlePatchExcursion(uc))
	asUser.GET("/excursions/:excursion_id/participants", handleListParticipants(uc))
	asUser.POST("/excursions/:excursion_id/participants", handlePostParticipant(uc))
	asUser.PATCH("/participants/:participant_id", handlePatchParticipant(uc))
	asUser.DELETE("/participants/:participant_id", handleDeleteParticipant(uc))

	asUser.GET("/users", handleListUsers(uc))
	asUser.PATCH("/users/:user_id", handlePatchUser(uc))

	// A user deactivated mid-session keeps a valid token until it expires;
	// reading their own account must stay possible so clients can surface
	// the deactivation instead of a generic authentication failure.
	r.GET("/users/:user_id",
		auth.AuthedByWith([]models.CredentialKind{models.CredentialKindUser}, utils.AllowInactive()),
		handleGetUser(uc))
	asUser.POST("/invitations", handlePostInvitation(uc))

	asUser.GET("/installations", handleListInstallations(uc))
	asUser.GET("/installations/:installation_id/events", handleListInstallationEvents(uc))

	// Devices act on their own installation with their installation token,
	// admins can act on any.
	asDevice := r.Group("/", auth.AuthedBy(models.CredentialKindInstallation, models.CredentialKindUser))
	asDevice.GET("/installations/:installation_id", handleGetInstallation(uc))
	asDevice.PATCH("/installations/:installation_id", handlePatchInstallation(uc))
	asDevice.POST("/installations/:installation_id/events", handlePostInstallationEvent(uc))
}
