package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type programFile struct {
	Qubits  int         `yaml:"qubits"`
	Clbits  int         `yaml:"clbits"`
	Entries []entryFile `yaml:"entries"`
}

type entryFile struct {
	Name     string    `yaml:"name"`
	Qubits   []int     `yaml:"qubits"`
	Clbits   []int     `yaml:"clbits"`
	T0       int64     `yaml:"t0"`
	Duration int64     `yaml:"duration"`
	Params   []float64 `yaml:"params"`
	Label    string    `yaml:"label"`
}

// LoadProgram reads a scheduled program from a YAML file. Entries that
// omit t0 or duration default to zero, which is valid timing; an
// explicitly negative value marks the entry unscheduled.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program file: %w", err)
	}
	var pf programFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing program file: %w", err)
	}

	var lanes []Lane
	for i := 0; i < pf.Qubits; i++ {
		lanes = append(lanes, Qubit(i))
	}
	for i := 0; i < pf.Clbits; i++ {
		lanes = append(lanes, Clbit(i))
	}

	entries := make([]ScheduleEntry, 0, len(pf.Entries))
	for _, ef := range pf.Entries {
		var on []Lane
		for _, q := range ef.Qubits {
			on = append(on, Qubit(q))
		}
		for _, c := range ef.Clbits {
			on = append(on, Clbit(c))
		}
		entries = append(entries, ScheduleEntry{
			Name:     ef.Name,
			Lanes:    on,
			T0:       Ticks(ef.T0),
			Duration: Ticks(ef.Duration),
			Params:   ef.Params,
			Label:    ef.Label,
		})
	}
	return NewProgram(lanes, entries)
}
