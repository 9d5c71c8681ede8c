package config

// KnownModels lists Gemini model ids the tool has been used with.
var KnownModels = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-1.5-flash",
}

func IsKnownModel(id string) bool {
	for _, m := range KnownModels {
		if m == id {
			return true
		}
	}
	return false
}
