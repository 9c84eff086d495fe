package consts

type StateID int

const (
	_ StateID = iota
	StateIdle
	StateActing
	StateSubmitting
)

// Card suits and face values as they appear on the wire.
const (
	SuitSpades   = "spades"
	SuitClubs    = "clubs"
	SuitHearts   = "hearts"
	SuitDiamonds = "diamonds"
	SuitJoker    = "joker"

	JokerFaceVal = "?"
)

var AllSuits = []string{SuitSpades, SuitClubs, SuitHearts, SuitDiamonds}

var AllFaceVals = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Meld group labels.
const (
	MeldRun  = "Run"
	MeldBook = "Book"
)

// Insertion sides for adding cards to a board meld.
const (
	PlayBefore = "Before"
	PlayAfter  = "After"
)

// Push message types. Only the game update is handled by the engine,
// other types are reserved for the surrounding UI.
const (
	MessageUpdateGame = "update_game"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Msg: msg, Exit: exit}
}

var (
	ErrorsExist              = NewErr(1, true, "Exist. ")
	ErrorsTimeout            = NewErr(1, false, "Timeout. ")
	ErrorsChanClosed         = NewErr(1, true, "Chan closed. ")
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
	ErrorsSessionInvalid     = NewErr(1, true, "Session invalid. ")
	ErrorsNoCardsSelected    = NewErr(1, false, "Select cards from your hand to play!")
	ErrorsNoBoardSelected    = NewErr(1, false, "Select game board section to play the cards!")
	ErrorsNoDiscardSelected  = NewErr(1, false, "Select a card to discard!")
	ErrorsDiscardPileEmpty   = NewErr(1, false, "Draw from draw pile!  Discard pile is empty!")
	ErrorsTurnSubmitRejected = NewErr(1, false, "Turn update rejected by server. ")
)
