package omml

// CommandDescriptor describes how a parameterized LaTeX command is formatted:
// how many braced arguments it takes and whether it needs a trailing space.
type CommandDescriptor struct {
	Params int
	Spaced bool
}

// commands is the static registry behind Format. Read-only after init.
var commands = map[string]CommandDescriptor{
	"sqrt":   {Params: 1},
	"mathbb": {Params: 1, Spaced: true},
	"frac":   {Params: 2},
	"binom":  {Params: 2},
	"neq":    {Params: 0, Spaced: true},
	"alpha":  {Params: 0, Spaced: true},
	"hat":    {Params: 1},
	"tilde":  {Params: 1},
	"bar":    {Params: 1},
	"dot":    {Params: 1},
	"ddot":   {Params: 1},
	"vec":    {Params: 1},
}

// Format renders \name{arg1}{arg2}... for a registered command. Unknown
// commands degrade to a bare \name with no arguments. Surplus arguments are
// ignored, missing ones are simply not emitted.
func Format(name string, args ...string) string {
	desc, ok := commands[name]
	if !ok {
		return `\` + name
	}

	out := `\` + name
	for i := 0; i < desc.Params && i < len(args); i++ {
		out += "{" + args[i] + "}"
	}

	if desc.Spaced {
		out += " "
	}

	return out
}
