// Package topology describes how forks are shared around the table and
// renders the ring as text or Graphviz DOT.
package topology

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/bft-labs/philo/internal/domain"
	"github.com/bft-labs/philo/internal/ports"
	"github.com/bft-labs/philo/pkg/dining"
)

// Seat is one philosopher's place at the table.
type Seat struct {
	Philosopher int
	Left        int
	Right       int
}

// Ring returns the seats of an n-philosopher table, using the same
// assignment the simulation uses.
func Ring(n int) ([]Seat, error) {
	cfg := dining.DefaultConfig()
	cfg.Philosophers = n
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	discard := ports.ReporterFunc(func(int64, int, domain.Action) {})
	maker, _ := dining.NewMaker(cfg, discard)

	seats := make([]Seat, 0, n)
	for i := 0; i < n; i++ {
		p, err := maker.Make()
		if err != nil {
			return nil, err
		}
		left, right := p.Forks()
		seats = append(seats, Seat{Philosopher: p.ID(), Left: left.Index(), Right: right.Index()})
	}
	return seats, nil
}

// Text renders one line per seat.
func Text(n int) (string, error) {
	seats, err := Ring(n)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range seats {
		fmt.Fprintf(&b, "philosopher %d: left fork %d, right fork %d\n", s.Philosopher, s.Left, s.Right)
	}
	return b.String(), nil
}

// DOT renders the ring as a directed graph from philosophers to the forks
// they use.
func DOT(n int) (string, error) {
	seats, err := Ring(n)
	if err != nil {
		return "", err
	}

	g := gographviz.NewEscape()
	if err := g.SetName("table"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	for i := 0; i < n; i++ {
		if err := g.AddNode("table", forkNode(i), map[string]string{
			"shape": "box",
			"label": fmt.Sprintf("fork %d", i),
		}); err != nil {
			return "", err
		}
	}
	for _, s := range seats {
		name := philosopherNode(s.Philosopher)
		if err := g.AddNode("table", name, map[string]string{
			"shape": "ellipse",
			"label": fmt.Sprintf("philosopher %d", s.Philosopher),
		}); err != nil {
			return "", err
		}
		if err := g.AddEdge(name, forkNode(s.Left), true, map[string]string{"label": "left"}); err != nil {
			return "", err
		}
		if err := g.AddEdge(name, forkNode(s.Right), true, map[string]string{"label": "right"}); err != nil {
			return "", err
		}
	}
	return g.String(), nil
}

func forkNode(i int) string        { return fmt.Sprintf("fork%d", i) }
func philosopherNode(i int) string { return fmt.Sprintf("philosopher%d", i) }
