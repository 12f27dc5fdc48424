package config

import (
	"fmt"
	"strings"
)

// Persona is a fixed system-prompt profile. The set is closed: users choose
// one of the built-in personas and cannot define their own. The selection is
// never persisted; every run starts on the default.
type Persona struct {
	ID       string
	Name     string
	Preamble string
}

// Built-in personas
var (
	PersonaAssistant = Persona{
		ID:   "assistant",
		Name: "Assistant",
		Preamble: "You are a helpful, knowledgeable assistant. " +
			"Answer clearly and concisely, and say so when you are unsure.",
	}

	PersonaCoder = Persona{
		ID:   "coder",
		Name: "Coder",
		Preamble: "You are an expert software engineer. " +
			"Prefer working code examples, explain tradeoffs briefly, " +
			"and point out bugs or pitfalls when you see them.",
	}

	PersonaWriter = Persona{
		ID:   "writer",
		Name: "Writer",
		Preamble: "You are a skilled writing assistant. " +
			"Improve clarity, tone, and flow while preserving the author's voice. " +
			"Offer alternatives when asked.",
	}
)

// Personas returns the built-in persona set in stable order
func Personas() []Persona {
	return []Persona{PersonaAssistant, PersonaCoder, PersonaWriter}
}

// DefaultPersona returns the persona active when none has been selected
func DefaultPersona() Persona {
	return PersonaAssistant
}

// PersonaByID returns a built-in persona by its identifier
func PersonaByID(id string) (Persona, bool) {
	for _, p := range Personas() {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// PersonaIDs returns the identifiers of all built-in personas
func PersonaIDs() []string {
	all := Personas()
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	return ids
}

// ValidatePersonaID checks that id names a built-in persona
func ValidatePersonaID(id string) error {
	if _, ok := PersonaByID(id); !ok {
		return fmt.Errorf("unknown persona '%s' (available: %s)", id, strings.Join(PersonaIDs(), ", "))
	}
	return nil
}

// Compose prefixes text with the persona's preamble. The composed form is
// what gets stored in the transcript and sent to the API.
func (p Persona) Compose(text string) string {
	if p.Preamble == "" {
		return text
	}
	return p.Preamble + "\n\n" + text
}
