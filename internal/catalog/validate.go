package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the catalog for problems the filter widgets cannot
// represent. All problems are reported together; nil means the catalog is
// consistent.
func Validate(c *Catalog) error {
	var errs []error

	seen := make(map[string]bool, len(c.Records))
	for i, r := range c.Records {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("record #%d: %w", i+1, ErrEmptyName))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("record %q: %w", name, ErrDuplicateRecord))
		}
		seen[name] = true
	}

	for _, d := range c.Fields {
		if !d.Key.Known() {
			errs = append(errs, fmt.Errorf("field %q: %w", d.Key, ErrUnknownField))
			continue
		}
		if len(d.Options) == 0 {
			continue
		}
		offered := make(map[string]bool, len(d.Options))
		for _, o := range d.Options {
			offered[Fold(o.Value.String())] = true
		}
		for _, r := range c.Records {
			attr, _ := r.Attribute(d.Key)
			if !attr.Multi {
				continue
			}
			for _, v := range attr.Values {
				if !offered[Fold(v)] {
					errs = append(errs, fmt.Errorf("record %q %s %q: %w", r.Name, d.Key, v, ErrUnknownOption))
				}
			}
		}
	}

	return errors.Join(errs...)
}
