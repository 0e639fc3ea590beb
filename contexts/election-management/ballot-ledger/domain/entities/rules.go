package entities

var votingRules = []string{
	"Each voter can vote only once per election.",
	"Voting is allowed only when the election is open.",
	"Votes cannot be changed after submission.",
	"Banned users are not allowed to vote.",
	"Candidates cannot vote in elections they participate in.",
}

// VotingRules returns the static rule list shown to every caller.
func VotingRules() []string {
	return append([]string(nil), votingRules...)
}
