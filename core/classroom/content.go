package classroom

const (
	CalculusAssignment = "# Calculus Assignment\n\n" +
		"## Problem 1\nFind the derivative of f(x) = 3x² + 2x - 5\n\n" +
		"## Problem 2\nEvaluate the integral ∫(2x + 3)dx from 0 to 4\n\n" +
		"## Problem 3\nFind the critical points of g(x) = x³ - 6x² + 9x + 2"

	PhysicsTest = "# Physics Test\n\n" +
		"## Question 1\nA ball is thrown vertically upward with an initial velocity of 20 m/s. " +
		"How high will it go? (g = 9.8 m/s²)\n\n" +
		"## Question 2\nCalculate the force required to accelerate a 1500 kg car from rest to 27 m/s in 10 seconds.\n\n" +
		"## Question 3\nA 2 kg object moving at 5 m/s collides with a stationary 3 kg object. " +
		"If the collision is perfectly elastic, what are the final velocities?"
)

// GeneratedBody returns the content produced for topic.
// Only calculus has its own content; every other topic gets the physics test.
func GeneratedBody(topic string) string {
	if topic == "calculus" {
		return CalculusAssignment
	}
	return PhysicsTest
}
