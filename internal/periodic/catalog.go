package periodic

import (
	"fmt"
	"slices"
)

// Catalog is a read-only view over the three registries. Accessors return
// copies so callers cannot alter the embedded data.
type Catalog struct {
	elements   []Element
	bySymbol   map[string]int
	epochs     [epochCount]EpochInfo
	signatures map[string]Signature
	sigOrder   []string
}

var defaultCatalog = newCatalog(elements, epochs, signatures)

// Default returns the catalog built from the embedded registries.
func Default() *Catalog { return defaultCatalog }

// newCatalog indexes the given registries. Later duplicates of a symbol are
// ignored so the first record wins.
func newCatalog(els []Element, eps [epochCount]EpochInfo, sigs []Signature) *Catalog {
	c := &Catalog{
		elements:   slices.Clone(els),
		bySymbol:   make(map[string]int, len(els)),
		epochs:     eps,
		signatures: make(map[string]Signature, len(sigs)),
	}
	for i, e := range c.elements {
		if _, dup := c.bySymbol[e.Symbol]; !dup {
			c.bySymbol[e.Symbol] = i
		}
	}
	for _, s := range sigs {
		if _, dup := c.signatures[s.Symbol]; dup {
			continue
		}
		c.signatures[s.Symbol] = s
		c.sigOrder = append(c.sigOrder, s.Symbol)
	}
	return c
}

// Elements returns every element in registry order.
func (c *Catalog) Elements() []Element {
	return slices.Clone(c.elements)
}

// Element looks up an element by symbol.
func (c *Catalog) Element(symbol string) (Element, bool) {
	i, ok := c.bySymbol[symbol]
	if !ok {
		return Element{}, false
	}
	return c.elements[i], true
}

// Epochs returns every epoch record in registry order.
func (c *Catalog) Epochs() []EpochInfo {
	out := make([]EpochInfo, 0, epochCount)
	for _, ei := range c.epochs {
		ei.Declared = slices.Clone(ei.Declared)
		out = append(out, ei)
	}
	return out
}

// EpochInfo returns the record for e.
func (c *Catalog) EpochInfo(e Epoch) (EpochInfo, bool) {
	if !e.Valid() {
		return EpochInfo{}, false
	}
	ei := c.epochs[e]
	ei.Declared = slices.Clone(ei.Declared)
	return ei, true
}

// Members returns the elements tagged with e, in element registry order.
// Membership is derived from the element tags; EpochInfo.Declared is not
// consulted.
func (c *Catalog) Members(e Epoch) []Element {
	var out []Element
	for _, el := range c.elements {
		if el.Epoch == e {
			out = append(out, el)
		}
	}
	return out
}

// Signature returns the spectral signature for symbol, if one exists.
func (c *Catalog) Signature(symbol string) (Signature, bool) {
	s, ok := c.signatures[symbol]
	if !ok {
		return Signature{}, false
	}
	s.Lines = slices.Clone(s.Lines)
	return s, true
}

// Signatures returns every signature in registry order.
func (c *Catalog) Signatures() []Signature {
	out := make([]Signature, 0, len(c.sigOrder))
	for _, sym := range c.sigOrder {
		s, _ := c.Signature(sym)
		out = append(out, s)
	}
	return out
}

// FindingKind classifies an audit finding.
type FindingKind int

const (
	// FindingUnknownSymbol: a declared member has no element record.
	FindingUnknownSymbol FindingKind = iota
	// FindingWrongEpoch: a declared member is tagged with another epoch.
	FindingWrongEpoch
	// FindingUndeclared: an element's tag names an epoch that does not declare it.
	FindingUndeclared
	// FindingOrphanSignature: a signature has no element record.
	FindingOrphanSignature
)

// String returns a short label for the kind.
func (k FindingKind) String() string {
	switch k {
	case FindingUnknownSymbol:
		return "unknown-symbol"
	case FindingWrongEpoch:
		return "wrong-epoch"
	case FindingUndeclared:
		return "undeclared"
	case FindingOrphanSignature:
		return "orphan-signature"
	default:
		return "unknown"
	}
}

// Finding is one registry inconsistency.
type Finding struct {
	Kind   FindingKind
	Epoch  Epoch
	Symbol string
}

// Error implements error so findings can be surfaced directly.
func (f Finding) Error() string {
	switch f.Kind {
	case FindingUnknownSymbol:
		return fmt.Sprintf("%s declares %q, which has no element record", f.Epoch.Name(), f.Symbol)
	case FindingWrongEpoch:
		return fmt.Sprintf("%s declares %q, which is tagged otherwise", f.Epoch.Name(), f.Symbol)
	case FindingUndeclared:
		return fmt.Sprintf("%q is tagged %s but not declared there", f.Symbol, f.Epoch.Name())
	case FindingOrphanSignature:
		return fmt.Sprintf("signature %q has no element record", f.Symbol)
	default:
		return "unknown finding"
	}
}

// Audit cross-checks the declared epoch member lists against the element
// tags, and the spectral registry against the element registry. Findings are
// ordered by epoch, then declaration order.
func (c *Catalog) Audit() []Finding {
	var findings []Finding
	for _, ei := range c.epochs {
		declared := make(map[string]bool, len(ei.Declared))
		for _, sym := range ei.Declared {
			declared[sym] = true
			el, ok := c.Element(sym)
			switch {
			case !ok:
				findings = append(findings, Finding{Kind: FindingUnknownSymbol, Epoch: ei.Epoch, Symbol: sym})
			case el.Epoch != ei.Epoch:
				findings = append(findings, Finding{Kind: FindingWrongEpoch, Epoch: ei.Epoch, Symbol: sym})
			}
		}
		for _, el := range c.Members(ei.Epoch) {
			if !declared[el.Symbol] {
				findings = append(findings, Finding{Kind: FindingUndeclared, Epoch: ei.Epoch, Symbol: el.Symbol})
			}
		}
	}
	for _, sym := range c.sigOrder {
		if _, ok := c.bySymbol[sym]; !ok {
			findings = append(findings, Finding{Kind: FindingOrphanSignature, Symbol: sym})
		}
	}
	return findings
}
