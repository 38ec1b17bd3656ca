package canvaschart

type DataPoint struct {
	Label string
	Value float64
}

func NewDataPoint(label string, value float64) DataPoint {
	return DataPoint{
		Label: label,
		Value: value,
	}
}

// Series is an ordered list of samples. The index of a sample gives its
// horizontal position, values are never sorted.
type Series []DataPoint

func (s Series) Len() int {
	return len(s)
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

type Bar struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}
