package generation

import "context"

// Generator defines the interface for the external text generator.
// This interface serves as a boundary between the application core and
// external AI/LLM services: a prompt goes in, raw text comes out. The
// caller owns all parsing of the returned text, since generators are not
// guaranteed to honor formatting instructions.
type Generator interface {
	// Generate sends the prompt to the external generator and returns the
	// raw response text.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The full prompt text to send
	//
	// Returns:
	//   - The raw response text from the generator
	//   - An error if the call fails for any reason (see errors.go for specific types)
	Generate(ctx context.Context, prompt string) (string, error)
}
