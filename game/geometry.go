package game

import "math"

// Box is an axis-aligned rectangle described by its centre and full extents
type Box struct {
	X, Y float64
	W, H float64
}

// Point is a 2D offset
type Point struct {
	X, Y float64
}

// RectsIntersect reports whether two boxes overlap using a separating-axis test on half extents
func RectsIntersect(a, b Box) bool {
	return math.Abs(a.X-b.X)*2 < a.W+b.W && math.Abs(a.Y-b.Y)*2 < a.H+b.H
}

// CircleRectIntersect reports whether a circle overlaps a box.
// The circle centre is clamped to the box to find the closest point.
func CircleRectIntersect(cx, cy, radius float64, rect Box) bool {
	closestX := clamp(cx, rect.X-rect.W/2, rect.X+rect.W/2)
	closestY := clamp(cy, rect.Y-rect.H/2, rect.Y+rect.H/2)
	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy < radius*radius
}

func clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

// normalizeAngle wraps an angle difference into [-π, π]
func normalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// RotateTowardsTarget smoothly rotates a rotation value towards a target angle
// currentRotation: Current rotation in radians
// targetRotation: Desired rotation in radians
// maxAngularVelocity: Maximum rotation speed in radians per second
// deltaTime: Time step in seconds
// Returns the new rotation value
func RotateTowardsTarget(currentRotation, targetRotation, maxAngularVelocity, deltaTime float64) float64 {
	angleDiff := normalizeAngle(targetRotation - currentRotation)

	maxStep := maxAngularVelocity * deltaTime
	rotationStep := clamp(angleDiff, -maxStep, maxStep)

	return currentRotation + rotationStep
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
