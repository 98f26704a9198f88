package constants

// Envelope messages returned by the REST API.
const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Something went wrong"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read validated input"
	DATA_INPUT_IS_NOT_UUID     = "Id must be a valid UUID"
	NOT_FOUND_ROUTE            = "Route not found"

	SPORTS_FETCHED = "Sports fetched successfully"
	SPORT_FETCHED  = "Sport fetched successfully"
	SPORT_CREATED  = "Sport created successfully"
	SPORT_UPDATED  = "Sport updated successfully"

	TEAMS_FETCHED     = "Teams fetched successfully"
	TEAM_FETCHED      = "Team fetched successfully"
	TEAM_CREATED      = "Team created successfully"
	TEAM_UPDATED      = "Team updated successfully"
	TEAM_LOGO_UPDATED = "Team logo uploaded successfully"
	LOGO_INVALID      = "Logo must be a PNG, JPG or JPEG file"
	LOGO_MISSING      = "Logo file is required"
	UPLOAD_DISABLED   = "Image uploads are not configured"

	STADIUMS_FETCHED = "Stadiums fetched successfully"
	STADIUM_FETCHED  = "Stadium fetched successfully"
	STADIUM_CREATED  = "Stadium created successfully"
	STADIUM_UPDATED  = "Stadium updated successfully"

	USERS_FETCHED       = "Users fetched successfully"
	USER_FETCHED        = "User fetched successfully"
	USER_CREATED        = "User created successfully"
	USER_UPDATED        = "User updated successfully"
	USER_ACTIVE_UPDATED = "User status updated successfully"

	EVENTS_FETCHED = "Events fetched successfully"
	EVENT_FETCHED  = "Event fetched successfully"
	EVENT_CREATED  = "Event created successfully"
	EVENT_UPDATED  = "Event updated successfully"

	RESERVATIONS_FETCHED  = "Reservations fetched successfully"
	RESERVATION_CREATED   = "Seat reserved successfully"
	RESERVATION_CANCELLED = "Reservation cancelled successfully"

	LOGIN_SUCCESS = "Login successful"
)
