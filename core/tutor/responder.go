// Package tutor holds the teacher personas and the canned answers of the teaching assistant.
package tutor

import (
	"fmt"
	"strings"
)

// Canned explanations.
const (
	DerivativeExplanation = "In calculus, a derivative measures the sensitivity to change of a function's output " +
		"with respect to its input. It's represented as f'(x) or df/dx. " +
		"For example, the derivative of f(x) = x² is f'(x) = 2x."

	PythagoreanExplanation = "The Pythagorean theorem states that in a right triangle, the square of the length " +
		"of the hypotenuse equals the sum of squares of the other two sides: a² + b² = c²."

	NewtonExplanation = "Newton's First Law states that an object will remain at rest or in uniform motion " +
		"in a straight line unless acted upon by an external force. This is also known as the law of inertia."

	GravityExplanation = "The acceleration due to gravity on Earth is approximately 9.8 m/s². " +
		"This means that every second an object is falling, its velocity increases by 9.8 meters per second."
)

type rule struct {
	keywords []string
	answer   string
}

// rules are checked in order, per subject.
var rules = map[string][]rule{
	SubjectMathematics: {
		{keywords: []string{"derivative", "calculus"}, answer: DerivativeExplanation},
		{keywords: []string{"theorem", "pythagorean"}, answer: PythagoreanExplanation},
	},
	SubjectPhysics: {
		{keywords: []string{"newton", "motion"}, answer: NewtonExplanation},
		{keywords: []string{"gravity", "acceleration"}, answer: GravityExplanation},
	},
}

// SelectResponse picks the assistant's answer to query in the style of persona.
// It never fails: queries without a known keyword get a generic acknowledgement.
func SelectResponse(query string, persona Persona) string {
	lower := strings.ToLower(query)
	for _, r := range rules[persona.Subject] {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.answer
			}
		}
	}
	return fmt.Sprintf(
		"Based on %s's materials on %s, I can help answer your question about \"%s\". "+
			"Could you provide more specific details about what you'd like to learn?",
		persona.Name, persona.Subject, query,
	)
}

// Welcome is the first message of a conversation with persona.
func Welcome(persona Persona) string {
	return fmt.Sprintf(
		"Hello! I'm your AI assistant based on %s's teaching materials for %s. How can I help you today?",
		persona.Name, persona.Subject,
	)
}
