package canvas

// Geometry - pixel constants for the gallows and the figure. Every position
// is anchored to the horizontal center of the canvas and to BeamOffset.
type Geometry struct {
	Width  float64
	Height float64

	BeamOffset        float64
	ScaffoldHeight    float64
	BeamLength        float64
	RopeLength        float64
	HeadRadius        float64
	BodyLength        float64
	ArmOffsetFromHead float64
	UpperArmLength    float64
	LowerArmLength    float64
	HipWidth          float64
	LegLength         float64
	FootLength        float64

	// CharWidth is the width of one label cell in pixels.
	CharWidth float64
	FontSize  float64
}

const wordLabelGap = 25

func DefaultGeometry() Geometry {
	return Geometry{
		Width:             400,
		Height:            560,
		BeamOffset:        20,
		ScaffoldHeight:    360,
		BeamLength:        144,
		RopeLength:        18,
		HeadRadius:        36,
		BodyLength:        144,
		ArmOffsetFromHead: 28,
		UpperArmLength:    72,
		LowerArmLength:    44,
		HipWidth:          36,
		LegLength:         108,
		FootLength:        28,
		CharWidth:         11,
		FontSize:          20,
	}
}

func (that Geometry) centerX() float64 {
	return that.Width / 2
}

func (that Geometry) head() float64 {
	return 2 * that.HeadRadius
}

// headTop is the y where the rope ends.
func (that Geometry) headTop() float64 {
	return that.BeamOffset + that.RopeLength
}

func (that Geometry) shoulderY() float64 {
	return that.headTop() + that.head() + that.ArmOffsetFromHead
}

func (that Geometry) hipY() float64 {
	return that.headTop() + that.head() + that.BodyLength
}

func (that Geometry) footY() float64 {
	return that.hipY() + that.LegLength
}

func (that Geometry) wordLabelY() float64 {
	return that.BeamOffset*2 + that.head() + that.RopeLength + that.BodyLength + that.LegLength + wordLabelGap
}

func (that Geometry) incorrectLabelY() float64 {
	return that.BeamOffset + that.head()*2 + that.RopeLength + that.BodyLength + that.LegLength
}
