package protocol

// Cmd represents a command exchanged between a player and a game engine
type Cmd int

const (
	Null Cmd = iota
	NewJoiner
	Start
	HasStarted
	Error
	// game-specific messages
	PlayCards // a player puts cards on the pile under a declared rank
	Challenge // a player disputes the most recent declaration
	Turn
	ChallengeResult
	GameOver
)

var cmdNames = []string{
	"Null",
	"NewJoiner",
	"Start",
	"HasStarted",
	"Error",
	"PlayCards",
	"Challenge",
	"Turn",
	"ChallengeResult",
	"GameOver",
}

func (c Cmd) String() string {
	return cmdNames[c]
}
