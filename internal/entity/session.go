package entity

// Session binds one client to the single game it is currently playing.
type Session struct {
	ID   string `json:"id"`
	Game Game   `json:"game"`

	// Recorded is set once the result of a finished game has been persisted.
	Recorded bool `json:"recorded"`
}
