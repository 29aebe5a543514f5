// Package gemini implements the generation.Generator interface against
// Google's Gemini API, including retry handling for transient failures.
package gemini
