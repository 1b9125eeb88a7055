package model

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
)

func TestHistoryDetectsStillLife(t *testing.T) {
	g := NewWithT(t)

	block := gridFromRows(t,
		"....",
		".OO.",
		".OO.",
		"....",
	)

	h := NewHistory()
	_, ok := h.Repeats(block)
	g.Expect(ok).To(BeFalse())

	h.Record(block)
	next, err := NewEngine().Step(context.Background(), block)
	g.Expect(err).NotTo(HaveOccurred())

	period, ok := h.Repeats(next)
	g.Expect(ok).To(BeTrue())
	g.Expect(period).To(Equal(1))
}

func TestHistoryDetectsBlinkerPeriod(t *testing.T) {
	g := NewWithT(t)

	engine := NewEngine()
	h := NewHistory()
	current := gridFromRows(t,
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	)

	h.Record(current)
	next, err := engine.Step(context.Background(), current)
	g.Expect(err).NotTo(HaveOccurred())
	_, ok := h.Repeats(next)
	g.Expect(ok).To(BeFalse())

	h.Record(next)
	again, err := engine.Step(context.Background(), next)
	g.Expect(err).NotTo(HaveOccurred())
	period, ok := h.Repeats(again)
	g.Expect(ok).To(BeTrue())
	g.Expect(period).To(Equal(2))
}

func TestHistoryEvictsOldGenerations(t *testing.T) {
	g := NewWithT(t)

	first := gridFromRows(t, "O.", "..")
	h := NewHistory()
	h.Record(first)
	h.Record(gridFromRows(t, ".O", ".."))
	h.Record(gridFromRows(t, "..", "O."))
	h.Record(gridFromRows(t, "..", ".O"))

	_, ok := h.Repeats(first)
	g.Expect(ok).To(BeFalse())

	h.Reset()
	_, ok = h.Repeats(gridFromRows(t, "..", ".O"))
	g.Expect(ok).To(BeFalse())
}
