package models

type Permission int

const (
	TRAIL_READ Permission = iota
	TRAIL_CREATE
	TRAIL_UPDATE
	ZONE_READ
	SPECIES_READ
	POI_READ
	EXCURSION_READ
	EXCURSION_CREATE
	EXCURSION_UPDATE
	PARTICIPANT_READ
	PARTICIPANT_WRITE
	USER_LIST
	USER_READ
	USER_CREATE
	USER_UPDATE
	INVITATION_CREATE
	INSTALLATION_LIST
	INSTALLATION_READ
	INSTALLATION_CREATE
	INSTALLATION_UPDATE
	INSTALLATION_EVENT_READ
	INSTALLATION_EVENT_CREATE
)

func (p Permission) String() string {
	switch p {
	case TRAIL_READ:
		return "TRAIL_READ"
	case TRAIL_CREATE:
		return "TRAIL_CREATE"
	case TRAIL_UPDATE:
		return "TRAIL_UPDATE"
	case ZONE_READ:
		return "ZONE_READ"
	case SPECIES_READ:
		return "SPECIES_READ"
	case POI_READ:
		return "POI_READ"
	case EXCURSION_READ:
		return "EXCURSION_READ"
	case EXCURSION_CREATE:
		return "EXCURSION_CREATE"
	case EXCURSION_UPDATE:
		return "EXCURSION_UPDATE"
	case PARTICIPANT_READ:
		return "PARTICIPANT_READ"
	case PARTICIPANT_WRITE:
		return "PARTICIPANT_WRITE"
	case USER_LIST:
		return "USER_LIST"
	case USER_READ:
		return "USER_READ"
	case USER_CREATE:
		return "USER_CREATE"
	case USER_UPDATE:
		return "USER_UPDATE"
	case INVITATION_CREATE:
		return "INVITATION_CREATE"
	case INSTALLATION_LIST:
		return "INSTALLATION_LIST"
	case INSTALLATION_READ:
		return "INSTALLATION_READ"
	case INSTALLATION_CREATE:
		return "INSTALLATION_CREATE"
	case INSTALLATION_UPDATE:
		return "INSTALLATION_UPDATE"
	case INSTALLATION_EVENT_READ:
		return "INSTALLATION_EVENT_READ"
	case INSTALLATION_EVENT_CREATE:
		return "INSTALLATION_EVENT_CREATE"
	default:
		return "UNKNOWN_PERMISSION"
	}
}

var ROLES_PERMISSIONS = map[Role][]Permission{
	USER: {
		TRAIL_READ,
		ZONE_READ,
		SPECIES_READ,
		POI_READ,
		EXCURSION_READ,
		EXCURSION_CREATE,
		EXCURSION_UPDATE,
		PARTICIPANT_READ,
		PARTICIPANT_WRITE,
		USER_READ,
		USER_UPDATE,
	},
	ADMIN: {
		TRAIL_READ,
		TRAIL_CREATE,
		TRAIL_UPDATE,
		ZONE_READ,
		SPECIES_READ,
		POI_READ,
		EXCURSION_READ,
		EXCURSION_CREATE,
		EXCURSION_UPDATE,
		PARTICIPANT_READ,
		PARTICIPANT_WRITE,
		USER_LIST,
		USER_READ,
		USER_CREATE,
		USER_UPDATE,
		INVITATION_CREATE,
		INSTALLATION_LIST,
		INSTALLATION_READ,
		INSTALLATION_CREATE,
		INSTALLATION_UPDATE,
		INSTALLATION_EVENT_READ,
		INSTALLATION_EVENT_CREATE,
	},
	INSTALLATION_CLIENT: {
		INSTALLATION_READ,
		INSTALLATION_UPDATE,
		INSTALLATION_EVENT_CREATE,
	},
}
