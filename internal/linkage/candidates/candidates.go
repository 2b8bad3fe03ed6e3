// Package candidates загружает список новых компонентов, которые сравниваются с существующими.
package candidates

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"component-linker/internal/linkage/model"
)

type file struct {
	Components []model.Component `yaml:"components"`
}

var validate = validator.New()

// Default — встроенный список, если файл кандидатов не задан.
func Default() []model.Component {
	return []model.Component{
		{
			Source:      "EO 14115 - Imposing Certain Sanctions on Persons Undermining Peace, Security, and Stability in the West Bank",
			Name:        "EO 14115 Section 1",
			Description: "All property and interests in property that are in the United States, that hereafter come within the United States, or that are or hereafter come within the possession or control of any United States person...",
			URL:         "https://www.federalregister.gov/executive-order/14115",
			Agency:      "EOP",
		},
		{
			Source:      "EO 14116 - Amending Regulations Relating to the Safeguarding of Vessels, Harbors, Ports, and Waterfront Facilities of the United States",
			Name:        "EO 14116 Section 1",
			Description: "This order amends regulations to strengthen safeguards for United States ports, harbors, and waterfront facilities...",
			URL:         "https://www.federalregister.gov/executive-order/14116",
			Agency:      "EOP",
		},
	}
}

// Parse читает YAML вида `components: [...]` и валидирует каждую запись.
func Parse(r io.Reader) ([]model.Component, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("candidates: empty document")
		}
		return nil, fmt.Errorf("candidates: parse yaml: %w", err)
	}
	if len(f.Components) == 0 {
		return nil, errors.New("candidates: no components listed")
	}
	for i, c := range f.Components {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("candidates: component #%d (%q): %w", i+1, c.Name, err)
		}
	}
	return f.Components, nil
}

// Load читает файл по пути. Если файла нет — возвращает Default() и fromFile=false.
func Load(path string) (list []model.Component, fromFile bool, err error) {
	if path == "" {
		return Default(), false, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("candidates: open %s: %w", path, err)
	}
	defer f.Close()

	list, err = Parse(f)
	if err != nil {
		return nil, false, err
	}
	return list, true, nil
}
