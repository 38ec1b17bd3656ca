package canvaschart

import (
	"fmt"
	"strings"
)

type Op struct {
	Name  string
	Args  []float64
	Style string
}

func (o Op) String() string {
	var str strings.Builder
	str.WriteString(o.Name)
	str.WriteString("(")
	for i, a := range o.Args {
		if i > 0 {
			str.WriteString(", ")
		}
		fmt.Fprintf(&str, "%g", a)
	}
	str.WriteString(")")
	if o.Style != "" {
		str.WriteString(" ")
		str.WriteString(o.Style)
	}
	return str.String()
}

// Recorder is a surface keeping every command it receives.
type Recorder struct {
	ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Ops() []Op {
	return r.ops
}

func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *Recorder) Count(name string) int {
	var n int
	for _, o := range r.ops {
		if o.Name == name {
			n++
		}
	}
	return n
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.push("clearRect", "", x, y, w, h)
}

func (r *Recorder) BeginPath() {
	r.push("beginPath", "")
}

func (r *Recorder) MoveTo(x, y float64) {
	r.push("moveTo", "", x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.push("lineTo", "", x, y)
}

func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.push("arc", "", x, y, radius, start, end)
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.push("rect", "", x, y, w, h)
}

func (r *Recorder) ClosePath() {
	r.push("closePath", "")
}

func (r *Recorder) SetFillStyle(p Paint) {
	r.push("fillStyle", p.String())
}

func (r *Recorder) SetStrokeStyle(p Paint) {
	r.push("strokeStyle", p.String())
}

func (r *Recorder) SetLineWidth(w float64) {
	r.push("lineWidth", "", w)
}

func (r *Recorder) SetLineCap(c LineCap) {
	r.push("lineCap", "", float64(c))
}

func (r *Recorder) SetLineJoin(j LineJoin) {
	r.push("lineJoin", "", float64(j))
}

func (r *Recorder) SetShadow(s Shadow) {
	r.push("shadow", s.String())
}

func (r *Recorder) Fill() {
	r.push("fill", "")
}

func (r *Recorder) Stroke() {
	r.push("stroke", "")
}

func (r *Recorder) FillText(str string, x, y float64) {
	r.push("fillText", str, x, y)
}

func (r *Recorder) push(name, style string, args ...float64) {
	r.ops = append(r.ops, Op{
		Name:  name,
		Args:  args,
		Style: style,
	})
}
