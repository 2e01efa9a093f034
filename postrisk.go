// Package postrisk analyzes content for publication risk before posting.
// It normalizes heterogeneous input (raw text, uploaded files, web URLs)
// into a bounded text payload plus optional visual context, sends it to a
// chat-completion model with a structured prompt, and converts the model's
// possibly malformed response into a validated, bounded risk assessment.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, rod/, openai/).
package postrisk
