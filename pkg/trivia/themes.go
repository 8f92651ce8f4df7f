package trivia

// DefaultThemes is the configured theme catalog used by the automated
// orchestrator when the caller doesn't pass an explicit theme list. Order
// matters: it drives round-robin assignment and least-used tie-breaking.
var DefaultThemes = []string{
	"original six",
	"stanley cup history",
	"goaltending greats",
	"record breakers",
	"hockey hall of fame",
	"rookies and draft picks",
	"international ice",
	"winter classic",
	"rivalries",
	"hat tricks",
}
