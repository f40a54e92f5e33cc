package model

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	MessageNameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	MessagePhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	MessageEmailConstraints   = "Emails should be of the format local-part@domain"
	MessageAddressConstraints = "Addresses can take any values, and it should not be blank"
	MessageTagConstraints     = "Tags names should be alphanumeric"
)

var (
	nameRe  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRe = regexp.MustCompile(`^\d{3,}$`)
	emailRe = regexp.MustCompile(`^[\w+.\-]+@[\p{L}\p{N}]([\p{L}\p{N}-]*[\p{L}\p{N}])?(\.[\p{L}\p{N}]([\p{L}\p{N}-]*[\p{L}\p{N}])?)*$`)
	tagRe   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// Person is a contact in the address book. Persons are values; edits produce
// a new Person.
type Person struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Tags    []string `json:"tags,omitempty"`
}

// NewPerson validates every field and returns the person.
func NewPerson(name, phone, email, address string, tags ...string) (Person, error) {
	var err error
	p := Person{}
	if p.Name, err = ParseName(name); err != nil {
		return Person{}, err
	}
	if p.Phone, err = ParsePhone(phone); err != nil {
		return Person{}, err
	}
	if p.Email, err = ParseEmail(email); err != nil {
		return Person{}, err
	}
	if p.Address, err = ParseAddress(address); err != nil {
		return Person{}, err
	}
	if p.Tags, err = ParseTags(tags...); err != nil {
		return Person{}, err
	}
	return p, nil
}

func ParseName(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !nameRe.MatchString(v) {
		return "", errors.New(MessageNameConstraints)
	}
	return v, nil
}

func ParsePhone(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !phoneRe.MatchString(v) {
		return "", errors.New(MessagePhoneConstraints)
	}
	return v, nil
}

func ParseEmail(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !emailRe.MatchString(v) {
		return "", errors.New(MessageEmailConstraints)
	}
	return v, nil
}

func ParseAddress(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", errors.New(MessageAddressConstraints)
	}
	return v, nil
}

// ParseTags validates and de-duplicates tags. The result is sorted.
func ParseTags(tags ...string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if !tagRe.MatchString(t) {
			return nil, errors.New(MessageTagConstraints)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

// SameAs reports whether both persons are the same contact. Two persons with
// the same name, ignoring case, are the same contact even when other fields
// differ.
func (p Person) SameAs(other Person) bool {
	return strings.EqualFold(p.Name, other.Name)
}

// Equal compares every field.
func (p Person) Equal(other Person) bool {
	if p.Name != other.Name || p.Phone != other.Phone ||
		p.Email != other.Email || p.Address != other.Address {
		return false
	}
	if len(p.Tags) != len(other.Tags) {
		return false
	}
	for i := range p.Tags {
		if p.Tags[i] != other.Tags[i] {
			return false
		}
	}
	return true
}

func (p Person) clone() Person {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}

func (p Person) String() string {
	s := fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s", p.Name, p.Phone, p.Email, p.Address)
	if len(p.Tags) > 0 {
		s += "; Tags: [" + strings.Join(p.Tags, ", ") + "]"
	}
	return s
}
