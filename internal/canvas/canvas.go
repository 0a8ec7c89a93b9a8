package canvas

import (
	"log/slog"
	"slices"

	"github.com/mattn/go-runewidth"
)

type Shape interface {
	shape()
}

type Line struct {
	X1, Y1, X2, Y2 float64
}

type Oval struct {
	X, Y, Width, Height float64
}

type Label struct {
	Text     string
	X, Y     float64
	Width    float64
	FontSize float64
}

func (*Line) shape()  {}
func (*Oval) shape()  {}
func (*Label) shape() {}

type BodyPart int

const (
	Head BodyPart = iota + 1
	Torso
	LeftArm
	RightArm
	LeftLeg
	RightLeg
	LeftFoot
	RightFoot
)

// MaxBodyParts - number of parts in a complete figure.
const MaxBodyParts = int(RightFoot)

var bodyPartNames = map[BodyPart]string{
	Head:      "head",
	Torso:     "torso",
	LeftArm:   "left arm",
	RightArm:  "right arm",
	LeftLeg:   "left leg",
	RightLeg:  "right leg",
	LeftFoot:  "left foot",
	RightFoot: "right foot",
}

func (that BodyPart) String() string {
	if name, ok := bodyPartNames[that]; ok {
		return name
	}

	return "unknown"
}

// Canvas - the hangman display. It keeps the drawing as a list of shapes;
// front ends rasterize Elements after every change.
type Canvas struct {
	logger   *slog.Logger
	geometry Geometry

	elements         []Shape
	parts            []BodyPart
	incorrectLetters []rune
	word             string

	wordLabel      *Label
	incorrectLabel *Label

	revision int
}

func New(logger *slog.Logger, geometry Geometry) *Canvas {
	return &Canvas{
		logger:   logger.With("component", "canvas"),
		geometry: geometry,
	}
}

// Reset - clears the canvas so that only the scaffold appears.
func (that *Canvas) Reset() {
	that.elements = nil
	that.parts = nil
	that.incorrectLetters = nil
	that.word = ""
	that.wordLabel = nil
	that.incorrectLabel = nil

	that.drawScaffold()
	that.revision++
}

// ShowWord - replaces the word label with word, centered.
func (that *Canvas) ShowWord(word string) {
	if that.wordLabel != nil && that.word == word {
		return
	}

	that.remove(that.wordLabel)

	that.word = word
	that.wordLabel = that.centeredLabel(word, that.geometry.wordLabelY())
	that.add(that.wordLabel)
	that.revision++
}

// NoteWrongGuess - adds letter to the incorrect letters label and draws the
// next body part.
func (that *Canvas) NoteWrongGuess(letter rune) {
	that.remove(that.incorrectLabel)

	that.incorrectLetters = append(that.incorrectLetters, letter)
	that.incorrectLabel = that.centeredLabel(string(that.incorrectLetters), that.geometry.incorrectLabelY())
	that.add(that.incorrectLabel)

	that.drawBodyPart(BodyPart(len(that.incorrectLetters)))
	that.revision++
}

func (that *Canvas) Elements() []Shape {
	return slices.Clone(that.elements)
}

func (that *Canvas) BodyParts() []BodyPart {
	return slices.Clone(that.parts)
}

func (that *Canvas) IncorrectLetters() string {
	return string(that.incorrectLetters)
}

func (that *Canvas) Word() string {
	return that.word
}

func (that *Canvas) Geometry() Geometry {
	return that.geometry
}

// Revision - changes whenever the drawing changes, including the word label.
func (that *Canvas) Revision() int {
	return that.revision
}

func (that *Canvas) drawScaffold() {
	g := that.geometry
	x := g.centerX()

	that.add(&Line{X1: x - g.BeamLength, Y1: g.BeamOffset, X2: x - g.BeamLength, Y2: g.BeamOffset + g.ScaffoldHeight})
	that.add(&Line{X1: x - g.BeamLength, Y1: g.BeamOffset, X2: x, Y2: g.BeamOffset})
	that.add(&Line{X1: x, Y1: g.BeamOffset, X2: x, Y2: g.headTop()})
}

func (that *Canvas) drawBodyPart(part BodyPart) {
	g := that.geometry
	x := g.centerX()

	switch part {
	case Head:
		that.add(&Oval{X: x - g.HeadRadius, Y: g.headTop(), Width: g.head(), Height: g.head()})
	case Torso:
		that.add(&Line{X1: x, Y1: g.headTop() + g.head(), X2: x, Y2: g.hipY()})
	case LeftArm:
		that.drawArm(x - g.UpperArmLength)
	case RightArm:
		that.drawArm(x + g.UpperArmLength)
	case LeftLeg:
		that.drawLeg(x - g.HipWidth)
	case RightLeg:
		that.drawLeg(x + g.HipWidth)
	case LeftFoot:
		that.add(&Line{X1: x - g.HipWidth, Y1: g.footY(), X2: x - g.HipWidth - g.FootLength, Y2: g.footY()})
	case RightFoot:
		that.add(&Line{X1: x + g.HipWidth, Y1: g.footY(), X2: x + g.HipWidth + g.FootLength, Y2: g.footY()})
	default:
		that.logger.Debug("figure is complete, nothing to draw", "part", int(part))
		return
	}

	that.parts = append(that.parts, part)
	that.logger.Debug("body part drawn", "part", part.String())
}

func (that *Canvas) drawArm(handX float64) {
	g := that.geometry
	y := g.shoulderY()

	that.add(&Line{X1: g.centerX(), Y1: y, X2: handX, Y2: y})
	that.add(&Line{X1: handX, Y1: y, X2: handX, Y2: y + g.LowerArmLength})
}

func (that *Canvas) drawLeg(footX float64) {
	g := that.geometry
	y := g.hipY()

	that.add(&Line{X1: g.centerX(), Y1: y, X2: footX, Y2: y})
	that.add(&Line{X1: footX, Y1: y, X2: footX, Y2: g.footY()})
}

func (that *Canvas) centeredLabel(text string, y float64) *Label {
	width := float64(runewidth.StringWidth(text)) * that.geometry.CharWidth

	return &Label{
		Text:     text,
		X:        that.geometry.centerX() - width/2,
		Y:        y,
		Width:    width,
		FontSize: that.geometry.FontSize,
	}
}

func (that *Canvas) add(shape Shape) {
	that.elements = append(that.elements, shape)
}

func (that *Canvas) remove(label *Label) {
	if label == nil {
		return
	}

	that.elements = slices.DeleteFunc(that.elements, func(shape Shape) bool {
		existing, ok := shape.(*Label)
		return ok && existing == label
	})
}
