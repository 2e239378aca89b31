package cli

import (
	"fmt"

	"github.com/footprint-tools/roped/internal/binder"
	"github.com/footprint-tools/roped/internal/console"
	"github.com/footprint-tools/roped/internal/dispatchers"
)

type showArgs struct {
	Name string
}

type addArgs struct {
	Name   string
	Amount int
}

type setArgs struct {
	Name  string
	Value int
	Force bool
	Note  binder.Optional[string]
}

type scopeArgs struct {
	A    int
	B    string
	Flag bool
}

func show(s *State, r showArgs) error {
	value, ok := s.Counters[r.Name]
	if !ok {
		return unknownCounter(s, r.Name)
	}
	_, _ = s.Out.Printf("%s = %d\n", r.Name, value)
	return nil
}

func add(s *State, r addArgs) error {
	s.Counters[r.Name] += r.Amount
	_, _ = s.Out.Printf("%s = %d\n", r.Name, s.Counters[r.Name])
	return nil
}

func set(s *State, r setArgs) error {
	if _, ok := s.Counters[r.Name]; !ok && !r.Force {
		return fmt.Errorf("no counter named '%s' (use --force to create it)", r.Name)
	}

	s.Counters[r.Name] = r.Value
	if text, ok := r.Note.Get(); ok {
		s.Notes = append(s.Notes, r.Name+": "+text)
	}

	_, _ = s.Out.Printf("%s = %d\n", r.Name, r.Value)
	return nil
}

func scope(s *State, r scopeArgs) error {
	_, _ = s.Out.Printf("scope %d %s %t\n", r.A, r.B, r.Flag)
	return nil
}

func clearCounters(s *State, _ struct{}) error {
	clear(s.Counters)
	_, _ = s.Out.Println("counters cleared")
	return nil
}

func quit(_ *State, _ struct{}) error {
	return console.ErrStop
}

func echo(s *State, req dispatchers.Request) error {
	_, _ = s.Out.Printf("You sent: %s\n", req.Input.Text())
	return nil
}

func unknownCounter(s *State, name string) error {
	similar := dispatchers.FindSimilarNames(name, s.counterNames(), 3)
	if len(similar) > 0 {
		return fmt.Errorf("no counter named '%s' (did you mean '%s'?)", name, similar[0])
	}
	return fmt.Errorf("no counter named '%s'", name)
}
