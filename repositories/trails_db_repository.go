package repositories

// TrailsDbRepository carries every repository method against the main
// database. Handlers and usecases depend on the narrow interfaces they
// declare, not on this struct.
type TrailsDbRepository struct{}

func NewTrailsDbRepository() *TrailsDbRepository {
	return &TrailsDbRepository{}
}
