package cli

import (
	"fmt"

	"github.com/footprint-tools/roped/internal/dispatchers"
	"github.com/footprint-tools/roped/internal/domain"
)

type configKeyArgs struct {
	Key string
}

type configSetArgs struct {
	Key   string
	Value string
}

func configGet(s *State, r configKeyArgs) error {
	if err := checkConfigKey(r.Key); err != nil {
		return err
	}

	value, _ := s.Config.Get(r.Key)
	_, _ = s.Out.Println(value)
	return nil
}

func configSet(s *State, r configSetArgs) error {
	if err := checkConfigKey(r.Key); err != nil {
		return err
	}
	if err := s.Config.Set(r.Key, r.Value); err != nil {
		return fmt.Errorf("could not save config: %w", err)
	}

	_, _ = s.Out.Printf("%s=%s\n", r.Key, r.Value)
	return nil
}

func configUnset(s *State, r configKeyArgs) error {
	if err := checkConfigKey(r.Key); err != nil {
		return err
	}
	if err := s.Config.Unset(r.Key); err != nil {
		return fmt.Errorf("could not save config: %w", err)
	}

	value, _ := domain.GetDefaultValue(r.Key)
	_, _ = s.Out.Printf("%s=%s (default)\n", r.Key, value)
	return nil
}

func configList(s *State, _ struct{}) error {
	values, err := s.Config.GetAll()
	if err != nil {
		return err
	}

	for _, key := range domain.VisibleConfigKeys() {
		value, exists := values[key.Name]
		if !exists || (key.HideIfEmpty && value == "") {
			continue
		}
		_, _ = s.Out.Printf("%s=%s\n", key.Name, value)
	}
	return nil
}

func checkConfigKey(key string) error {
	if domain.IsValidConfigKey(key) {
		return nil
	}

	var names []string
	for _, k := range domain.VisibleConfigKeys() {
		names = append(names, k.Name)
	}
	if similar := dispatchers.FindSimilarNames(key, names, 1); len(similar) > 0 {
		return fmt.Errorf("unknown config key '%s' (did you mean '%s'?)", key, similar[0])
	}
	return fmt.Errorf("unknown config key '%s'", key)
}
