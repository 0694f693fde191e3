package session

// Action is an abstract input produced by a presentation layer.
// Presentations map raw device input (keys, clicks) to these values.
type Action interface {
	action()
}

// CharacterEntered adds a letter to the active row.
type CharacterEntered struct {
	Char rune
}

func (CharacterEntered) action() {}

// DeletePressed removes the last letter of the active row.
type DeletePressed struct{}

func (DeletePressed) action() {}

// SubmitPressed submits the active row.
type SubmitPressed struct{}

func (SubmitPressed) action() {}

// RestartRequested replaces the game with a new one. With Reload set the
// vocabulary is read again from its provider first.
type RestartRequested struct {
	Reload bool
}

func (RestartRequested) action() {}
