package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Type is the input kind of a profile attribute.
type Type string

const (
	TypeText     Type = "text"
	TypeDropdown Type = "dropdown"
)

var ErrDuplicateAttribute = errors.New("duplicate attribute id")

// Attribute is a single catalogue entry describing a custom profile field.
type Attribute struct {
	ID      string   `mapstructure:"id" json:"id" validate:"required"`
	Label   string   `mapstructure:"label" json:"label" validate:"required"`
	Type    Type     `mapstructure:"type" json:"type" validate:"required,oneof=text dropdown"`
	Options []string `mapstructure:"options" json:"options,omitempty" validate:"omitempty,dive,required"`
	Core    bool     `mapstructure:"core" json:"core"`
}

// Catalogue is the ordered list of attributes known to the engine.
type Catalogue struct {
	Attributes []Attribute
}

var validate = validator.New()

// New builds a catalogue and validates it.
func New(attrs ...Attribute) (*Catalogue, error) {
	c := &Catalogue{Attributes: attrs}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Decode builds a catalogue from the raw `attributes` config value.
func Decode(raw any) (*Catalogue, error) {
	var attrs []Attribute
	if err := mapstructure.Decode(raw, &attrs); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}

	for i := range attrs {
		attrs[i].Type = Type(strings.ToLower(strings.TrimSpace(string(attrs[i].Type))))
	}

	return New(attrs...)
}

// Validate checks every entry and makes sure ids are unique.
func (c *Catalogue) Validate() error {
	seen := make(map[string]struct{}, len(c.Attributes))

	for _, attr := range c.Attributes {
		if err := validate.Struct(attr); err != nil {
			return fmt.Errorf("attribute %q: %w", attr.ID, err)
		}
		if attr.Type == TypeText && len(attr.Options) > 0 {
			return fmt.Errorf("attribute %q: options are allowed only for dropdown attributes", attr.ID)
		}
		if _, ok := seen[attr.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAttribute, attr.ID)
		}
		seen[attr.ID] = struct{}{}
	}

	return nil
}

func (c *Catalogue) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Attributes)
}

// Core returns the attributes flagged as mandatory, in catalogue order.
func (c *Catalogue) Core() []Attribute {
	return c.filter(true)
}

// NonCore returns the optional attributes, in catalogue order.
func (c *Catalogue) NonCore() []Attribute {
	return c.filter(false)
}

func (c *Catalogue) Lookup(id string) (Attribute, bool) {
	if c == nil {
		return Attribute{}, false
	}
	for _, attr := range c.Attributes {
		if attr.ID == id {
			return attr, true
		}
	}
	return Attribute{}, false
}

func (c *Catalogue) filter(core bool) []Attribute {
	if c == nil {
		return nil
	}
	result := make([]Attribute, 0, len(c.Attributes))
	for _, attr := range c.Attributes {
		if attr.Core == core {
			result = append(result, attr)
		}
	}
	return result
}
