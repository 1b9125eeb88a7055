package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestProgressBarLine(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	p := NewProgressBar(&buf, 10)
	p.now = func() time.Time { return p.start.Add(10 * time.Second) }

	p.SetPosition(5)
	line := p.Line()
	g.Expect(line).To(HavePrefix("Simulation steps: [00:00:10]"))
	g.Expect(line).To(ContainSubstring(strings.Repeat("#", 20)))
	g.Expect(line).To(ContainSubstring("5/10"))
	g.Expect(line).To(HaveSuffix("(10s)"))
	g.Expect(buf.String()).To(HavePrefix("\r"))
}

func TestProgressBarClampsAndFinishes(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	p := NewProgressBar(&buf, 4)

	p.SetPosition(-2)
	g.Expect(p.pos).To(BeZero())
	p.SetPosition(99)
	g.Expect(p.pos).To(Equal(4))

	p.Finish("simulation finished")
	g.Expect(buf.String()).To(ContainSubstring(strings.Repeat("#", barWidth)))
	g.Expect(buf.String()).To(ContainSubstring("simulation finished"))
}

func TestProgressBarZeroSteps(t *testing.T) {
	g := NewWithT(t)

	p := NewProgressBar(&bytes.Buffer{}, 0)
	g.Expect(p.Line()).To(ContainSubstring("0/0"))
}
