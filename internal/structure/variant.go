package structure

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

//go:embed variants.toml
var variantsTOML []byte

// variantValidate checks variant records after decoding and after overrides
// are applied.
var variantValidate = validator.New()

// Variant configures one demonstration page: its limits, seed data, the
// operations it exposes and the words used in its status messages.
type Variant struct {
	Name         string   `toml:"name" validate:"required,alphanum,lowercase"`
	Title        string   `toml:"title" validate:"required"`
	Noun         string   `toml:"noun" validate:"required"`
	Summary      string   `toml:"summary"`
	Layout       Layout   `toml:"layout" validate:"oneof=row column chain"`
	Ceiling      int      `toml:"ceiling" validate:"gte=1"`
	Capacity     int      `toml:"capacity" validate:"gte=1,ltefield=Ceiling"`
	Seed         []int    `toml:"seed"`
	PositionBase int      `toml:"position_base" validate:"oneof=0 1"`
	Operations   []string `toml:"operations" validate:"required,min=1,dive,oneof=append remove_end remove_front insert_at delete_at peek search traverse"`
	AppendVerb   string   `toml:"append_verb" validate:"required"`
	AppendPast   string   `toml:"append_past" validate:"required"`
	RemoveVerb   string   `toml:"remove_verb" validate:"required"`
	RemovePast   string   `toml:"remove_past" validate:"required"`
	PeekLabel    string   `toml:"peek_label"`
	PeekFront    bool     `toml:"peek_front"`
	Underflow    string   `toml:"underflow"`

	ops OpSet
}

// Layout names how a page draws its collection.
type Layout string

const (
	// LayoutRow draws cells left to right.
	LayoutRow Layout = "row"
	// LayoutColumn draws cells top to bottom, newest first.
	LayoutColumn Layout = "column"
	// LayoutChain draws nodes joined by links, starting at the head.
	LayoutChain Layout = "chain"
)

// Supports reports whether op is available on this variant.
func (v Variant) Supports(op Op) bool {
	return (v.ops | alwaysAvailable).Has(op)
}

// Ops returns the variant-specific capability set, excluding the operations
// every variant shares.
func (v Variant) Ops() OpSet { return v.ops }

// RemoveOp is the removal a variant offers: the front for a queue, the
// end for everything else.
func (v Variant) RemoveOp() Op {
	if v.Supports(OpRemoveFront) {
		return OpRemoveFront
	}
	return OpRemoveEnd
}

// Label is the noun with its first letter upper-cased, for sentence starts.
func (v Variant) Label() string {
	if v.Noun == "" {
		return ""
	}
	return strings.ToUpper(v.Noun[:1]) + v.Noun[1:]
}

func (v *Variant) prepare() error {
	if err := variantValidate.Struct(v); err != nil {
		return fmt.Errorf("variant %q: %w", v.Name, err)
	}
	if len(v.Seed) > v.Capacity {
		return fmt.Errorf("variant %q: seed has %d items but capacity is %d", v.Name, len(v.Seed), v.Capacity)
	}

	var ops OpSet
	for _, name := range v.Operations {
		op, ok := ParseOp(name)
		if !ok {
			return fmt.Errorf("variant %q: unknown operation %q", v.Name, name)
		}
		ops |= NewOpSet(op)
	}
	if ops.Has(OpPeek) && v.PeekLabel == "" {
		return fmt.Errorf("variant %q: peek requires peek_label", v.Name)
	}
	v.ops = ops
	return nil
}

// Override replaces selected fields of a built-in variant. Zero values leave
// the built-in setting in place; a non-nil Seed replaces the seed, even when
// empty.
type Override struct {
	Ceiling  int
	Capacity int
	Seed     []int
}

// Catalog is the ordered set of variants available to the UI.
type Catalog struct {
	variants []Variant
}

type variantFile struct {
	Variants []Variant `toml:"variants"`
}

// LoadCatalog decodes the built-in variant table and applies overrides keyed
// by variant name. Unknown names are an error so typos in configuration do
// not go unnoticed.
func LoadCatalog(overrides map[string]Override) (*Catalog, error) {
	var file variantFile
	if err := toml.Unmarshal(variantsTOML, &file); err != nil {
		return nil, fmt.Errorf("parsing variants.toml: %w", err)
	}

	known := make(map[string]bool, len(file.Variants))
	for i := range file.Variants {
		v := &file.Variants[i]
		known[v.Name] = true
		if o, ok := overrides[v.Name]; ok {
			if o.Ceiling > 0 {
				v.Ceiling = o.Ceiling
			}
			if o.Capacity > 0 {
				v.Capacity = o.Capacity
			}
			if o.Seed != nil {
				v.Seed = append([]int(nil), o.Seed...)
			}
		}
		if err := v.prepare(); err != nil {
			return nil, err
		}
	}

	for name := range overrides {
		if !known[name] {
			return nil, fmt.Errorf("unknown variant %q in overrides", name)
		}
	}

	return &Catalog{variants: file.Variants}, nil
}

// Variants returns the catalog entries in display order.
func (c *Catalog) Variants() []Variant {
	out := make([]Variant, len(c.variants))
	copy(out, c.variants)
	return out
}

// Lookup finds a variant by name.
func (c *Catalog) Lookup(name string) (Variant, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range c.variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Names lists variant names in display order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.variants))
	for i, v := range c.variants {
		names[i] = v.Name
	}
	return names
}
