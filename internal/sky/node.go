package sky

import "math"

// Topic identifies the content panel a node opens.
type Topic string

const (
	TopicAbout         Topic = "about"
	TopicProjects      Topic = "projects"
	TopicGraphicDesign Topic = "graphic-design"
	TopicCases         Topic = "cases"
)

// Topics lists the fixed topic set in dispatch order.
var Topics = []Topic{TopicAbout, TopicProjects, TopicGraphicDesign, TopicCases}

// Valid reports whether t is one of the known topics.
func (t Topic) Valid() bool {
	for _, k := range Topics {
		if t == k {
			return true
		}
	}
	return false
}

// StartSpec places a node when the sweep opens.
//
// With FromAnchorEdge set the node starts where its ring peeks out from the
// left side of the anchor's top edge, nudged clockwise by Nudge radians and
// pulled back counterclockwise by ArcShift pixels of arc. Otherwise Angle is
// used as is.
type StartSpec struct {
	Angle          float64
	FromAnchorEdge bool
	Nudge          float64
	ArcShift       float64
}

// NodeSpec is the configuration of one orbital node.
type NodeSpec struct {
	Topic       Topic
	Label       string
	RingOffset  float64 // added to the tracked particle's radius
	Radius      float64
	HoverRadius float64
	Speed       float64 // base angular speed, rad per ms
	Start       StartSpec
}

// OrbitalNode is a clickable marker riding one of the orbit rings.
type OrbitalNode struct {
	Spec NodeSpec

	Angle         float64
	CurrentRadius float64
	Hovered       bool

	speed      float64 // applied angular speed
	belowMilli float64 // time spent below the obstacle boundary
}

// NewOrbitalNode builds a node at rest at its fixed start angle.
func NewOrbitalNode(spec NodeSpec) *OrbitalNode {
	return &OrbitalNode{
		Spec:          spec,
		Angle:         spec.Start.Angle,
		CurrentRadius: spec.Radius,
		speed:         spec.Speed,
	}
}

// Topic is shorthand for n.Spec.Topic.
func (n *OrbitalNode) Topic() Topic { return n.Spec.Topic }

// Speed returns the applied angular speed.
func (n *OrbitalNode) Speed() float64 { return n.speed }

// OrbitRadius returns the node's ring radius given the tracked radius.
func (n *OrbitalNode) OrbitRadius(tracked float64) float64 {
	return tracked + n.Spec.RingOffset
}

// Position returns the node center.
func (n *OrbitalNode) Position(a Anchor, tracked float64) Point {
	return Orbit(a.Center, n.OrbitRadius(tracked), n.Angle)
}

// HitRadius is the pointer distance under which the node counts as hovered.
func (n *OrbitalNode) HitRadius() float64 {
	return math.Max(MinHitRadius, n.CurrentRadius)
}

// IsHovered runs the hit test against the node at pos.
func (n *OrbitalNode) IsHovered(pos, pointer Point) bool {
	return pos.Dist(pointer) < n.HitRadius()
}

// Reset places the node at its start position for the given anchor.
func (n *OrbitalNode) Reset(a Anchor, tracked float64) {
	n.Angle = n.startAngle(a, tracked)
	n.speed = n.Spec.Speed
	n.belowMilli = 0
}

func (n *OrbitalNode) startAngle(a Anchor, tracked float64) float64 {
	s := n.Spec.Start
	r := n.OrbitRadius(tracked)
	if !s.FromAnchorEdge || !a.Found || r <= 0 {
		return s.Angle
	}
	dy := a.Top - a.Center.Y
	edge := math.Pi - math.Asin(clampUnit(dy/r))
	return edge + s.Nudge - s.ArcShift/r
}

// targetSpeed applies the two-stage boost while the node is below the
// obstacle boundary.
func (n *OrbitalNode) targetSpeed(y float64, a Anchor, dt float64) float64 {
	if y <= a.Top+SlingshotMargin {
		n.belowMilli = 0
		return n.Spec.Speed
	}
	n.belowMilli += dt
	if n.belowMilli < SlingshotCrossMillis {
		return n.Spec.Speed * SlingshotCrossFactor
	}
	return n.Spec.Speed * SlingshotSustainFactor
}

// Advance moves the node, resolves hover against pointer and eases its size.
// Hover is forced off while suppressed or when no pointer has been seen.
func (n *OrbitalNode) Advance(dt float64, a Anchor, tracked float64, pointer Point, hasPointer, suppressed bool) {
	pos := n.Position(a, tracked)

	target := n.targetSpeed(pos.Y, a, dt)
	n.speed += (target - n.speed) * (1 - math.Exp(-dt/SpeedEasingMillis))
	n.Angle += n.speed * dt

	pos = n.Position(a, tracked)
	n.Hovered = hasPointer && !suppressed && n.IsHovered(pos, pointer)

	goal := n.Spec.Radius
	if n.Hovered {
		goal = n.Spec.HoverRadius
	}
	n.CurrentRadius += (goal - n.CurrentRadius) * frameFactor(RadiusEasing, dt)
}
