package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
)

// maxChartWidth caps the number of columns in the population chart
const maxChartWidth = 72

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Population           []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the population of a generation and how long it took to
// produce. generations is the number of generations seen so far.
func (s *Stats) Update(generations int, population int, duration time.Duration) {
	s.TotalGenerations = generations
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.Population = append(s.Population, float64(population))

	// Simple moving average for population
	if len(s.Population) == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

// MeanPopulation returns the mean population over every recorded generation
func (s *Stats) MeanPopulation() float64 {
	if len(s.Population) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range s.Population {
		sum += p
	}
	return sum / float64(len(s.Population))
}

// OverallRate returns generations per second over the whole run
func (s *Stats) OverallRate() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.TotalGenerations) / elapsed
}

// FinalPopulation returns the last recorded population
func (s *Stats) FinalPopulation() int {
	if len(s.Population) == 0 {
		return 0
	}
	return int(s.Population[len(s.Population)-1])
}

// PopulationChart plots the recorded population per generation
func (s *Stats) PopulationChart(height int) string {
	if len(s.Population) < 2 {
		return ""
	}
	return asciigraph.Plot(s.Population,
		asciigraph.Height(height),
		asciigraph.Width(min(len(s.Population), maxChartWidth)),
		asciigraph.Caption("population per generation"),
	)
}

// Summary renders the end-of-run report
func (s *Stats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Generations:"), valueStyle.Render(fmt.Sprint(s.TotalGenerations)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Final pop:"), valueStyle.Render(fmt.Sprint(s.FinalPopulation())))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Mean pop:"), valueStyle.Render(fmt.Sprintf("%.1f", s.MeanPopulation())))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Gen/sec:"), valueStyle.Render(fmt.Sprintf("%.1f", s.OverallRate())))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Runtime:"), valueStyle.Render(fmt.Sprintf("%.1fs", s.Elapsed().Seconds())))
	if chart := s.PopulationChart(10); chart != "" {
		b.WriteString(graphStyle.Render(chart))
		b.WriteByte('\n')
	}
	return b.String()
}
