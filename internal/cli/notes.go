package cli

import "errors"

type noteArgs struct {
	Text string
}

func note(s *State, r noteArgs) error {
	if r.Text == "" {
		return errors.New("nothing to note")
	}
	s.Notes = append(s.Notes, r.Text)
	return nil
}

func list(s *State, _ struct{}) error {
	if len(s.Counters) == 0 && len(s.Notes) == 0 {
		_, _ = s.Out.Println("nothing tallied yet")
		return nil
	}

	for _, name := range s.counterNames() {
		_, _ = s.Out.Printf("%s = %d\n", name, s.Counters[name])
	}
	for i, text := range s.Notes {
		_, _ = s.Out.Printf("#%d %s\n", i+1, text)
	}
	return nil
}
