package store

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/roster/pkg/model"
)

type jsonAddressBook struct {
	Persons     []model.Person     `json:"persons"`
	Assignments []model.Assignment `json:"assignments"`
}

func marshalAddressBook(ab model.ReadOnlyAddressBook) ([]byte, error) {
	j := jsonAddressBook{Persons: ab.Persons(), Assignments: ab.Assignments()}
	if j.Persons == nil {
		j.Persons = []model.Person{}
	}
	if j.Assignments == nil {
		j.Assignments = []model.Assignment{}
	}
	return json.MarshalIndent(j, "", "  ")
}

// unmarshalAddressBook validates every person and assignment so a hand
// edited file cannot put invalid values into the model.
func unmarshalAddressBook(data []byte) (*model.AddressBook, error) {
	var j jsonAddressBook
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	ab := model.NewAddressBook()
	for _, p := range j.Persons {
		valid, err := model.NewPerson(p.Name, p.Phone, p.Email, p.Address, p.Tags...)
		if err != nil {
			return nil, fmt.Errorf("person %q: %w", p.Name, err)
		}
		if err := ab.AddPerson(valid); err != nil {
			return nil, fmt.Errorf("person %q: %w", p.Name, err)
		}
	}
	for _, a := range j.Assignments {
		title, err := model.ParseTitle(a.Title)
		if err != nil {
			return nil, fmt.Errorf("assignment %q: %w", a.Title, err)
		}
		a.Title = title
		if a.Due != nil && a.Due.IsZero() {
			a.Due = nil
		}
		if err := ab.AddAssignment(a); err != nil {
			return nil, fmt.Errorf("assignment %q: %w", a.Title, err)
		}
	}
	return ab, nil
}
