// internal/tfmt/tfmt.go
package tfmt

// Terminal formatting control sequences.
// These pairs are part of the client display contract and MUST NOT change:
// remote tooling strips and matches them verbatim.

const (
	Clear = "\033[0m"

	Bold = "\033[1m"

	Red    = "\033[91m"
	Green  = "\033[92m"
	Yellow = "\033[93m"
	Blue   = "\033[94m"
	Cyan   = "\033[96m"
)
