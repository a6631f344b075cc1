package monitoring

import (
	"fmt"
	"strings"
)

// Identifier is the management name a Section registers under.
// Its canonical string form is "domain:type=Type[,name=Name]".
// Identifiers are comparable and may be used as map keys.
type Identifier struct {
	Domain string
	Type   string
	// Name qualifies the instance when several sections share a type. Optional.
	Name string
}

const (
	keyType = "type"
	keyName = "name"
)

// NewIdentifier builds and validates an Identifier.
func NewIdentifier(domain, typ, name string) (Identifier, error) {
	id := Identifier{Domain: domain, Type: typ, Name: name}
	if err := id.Validate(); err != nil {
		return Identifier{}, err
	}
	return id, nil
}

// MustIdentifier is like NewIdentifier but panics on invalid input.
// Useful for package-level identifiers of built-in sections.
func MustIdentifier(domain, typ, name string) Identifier {
	id, err := NewIdentifier(domain, typ, name)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseIdentifier parses the canonical string form. Property keys may appear in any order;
// only "type" and "name" are recognized.
func ParseIdentifier(s string) (Identifier, error) {
	domain, props, ok := strings.Cut(s, ":")
	if !ok {
		return Identifier{}, fmt.Errorf("%w: %q: missing ':' after domain", ErrInvalidIdentifier, s)
	}
	id := Identifier{Domain: domain}
	seen := make(map[string]bool, 2)
	for _, prop := range strings.Split(props, ",") {
		k, v, ok := strings.Cut(prop, "=")
		if !ok {
			return Identifier{}, fmt.Errorf("%w: %q: property %q is not key=value", ErrInvalidIdentifier, s, prop)
		}
		if seen[k] {
			return Identifier{}, fmt.Errorf("%w: %q: duplicate key %q", ErrInvalidIdentifier, s, k)
		}
		seen[k] = true
		switch k {
		case keyType:
			id.Type = v
		case keyName:
			if v == "" {
				return Identifier{}, fmt.Errorf("%w: %q: empty name", ErrInvalidIdentifier, s)
			}
			id.Name = v
		default:
			return Identifier{}, fmt.Errorf("%w: %q: unknown key %q", ErrInvalidIdentifier, s, k)
		}
	}
	if err := id.Validate(); err != nil {
		return Identifier{}, err
	}
	return id, nil
}

// Validate reports whether the identifier can be registered.
func (id Identifier) Validate() error {
	if id.Domain == "" {
		return fmt.Errorf("%w: empty domain", ErrInvalidIdentifier)
	}
	if id.Type == "" {
		return fmt.Errorf("%w: empty type", ErrInvalidIdentifier)
	}
	for _, part := range [...]struct{ what, v string }{
		{"domain", id.Domain},
		{keyType, id.Type},
		{keyName, id.Name},
	} {
		if i := strings.IndexAny(part.v, reservedChars); i >= 0 {
			return fmt.Errorf("%w: %s %q contains reserved character %q", ErrInvalidIdentifier, part.what, part.v, part.v[i])
		}
	}
	return nil
}

const reservedChars = ":,=*?\"\n"

// IsZero reports whether id is the zero Identifier.
func (id Identifier) IsZero() bool { return id == Identifier{} }

// String returns the canonical form.
func (id Identifier) String() string {
	var b strings.Builder
	b.Grow(len(id.Domain) + len(id.Type) + len(id.Name) + 12)
	b.WriteString(id.Domain)
	b.WriteString(":type=")
	b.WriteString(id.Type)
	if id.Name != "" {
		b.WriteString(",name=")
		b.WriteString(id.Name)
	}
	return b.String()
}

// WithName returns a copy of id qualified by name.
func (id Identifier) WithName(name string) Identifier {
	id.Name = name
	return id
}
