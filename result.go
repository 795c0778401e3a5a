package sift

import (
	"encoding/json"
	"sort"
)

// Result holds everything extracted from one analyzed domain.
// String fields are empty when the field could not be extracted; Founders
// is nil when no founder mention was found.
type Result struct {
	// Domain is the normalized URL the analysis ran against.
	// Always populated, even on total fetch failure.
	Domain string `json:"domain"`

	CompanyName string       `json:"company_name,omitempty"`
	Description string       `json:"description,omitempty"`
	Founders    Founders     `json:"founders,omitempty"`
	Products    *ProductInfo `json:"product_info,omitempty"`

	// Err marks a whole-domain failure (primary fetch exhausted its
	// retries), distinguishing "unreachable" from "reachable but nothing
	// matched". It never causes the analysis itself to fail.
	Err error `json:"-"`
}

// Validate returns an error if the result contains invalid fields.
func (r *Result) Validate() error {
	if r.Domain == "" {
		return Errorf(EINVALID, "result domain required")
	}
	return nil
}

// ProductInfo holds product-related information extracted from structural
// selectors. Each list is ordered by first occurrence and duplicate-free.
// Empty lists are valid: they mean the page had no matching structure.
type ProductInfo struct {
	Products     []string `json:"products"`
	Features     []string `json:"features"`
	Descriptions []string `json:"descriptions"`
}

// Empty reports whether no product information was extracted at all.
func (p *ProductInfo) Empty() bool {
	return p == nil || len(p.Products) == 0 && len(p.Features) == 0 && len(p.Descriptions) == 0
}

// Founders is a set of founder names. The zero value (nil) means "none
// found" and is safe to call methods on.
type Founders map[string]struct{}

// Add inserts a name into the set, allocating it if needed, and returns
// the set.
func (f Founders) Add(name string) Founders {
	if f == nil {
		f = make(Founders)
	}
	f[name] = struct{}{}
	return f
}

// Contains reports whether the set holds the name.
func (f Founders) Contains(name string) bool {
	_, ok := f[name]
	return ok
}

// Union returns a set holding the members of both sets. A nil receiver or
// argument is treated as empty; the result is nil when both are empty.
func (f Founders) Union(other Founders) Founders {
	if len(other) == 0 {
		return f
	}
	if len(f) == 0 {
		return other
	}
	merged := make(Founders, len(f)+len(other))
	for name := range f {
		merged[name] = struct{}{}
	}
	for name := range other {
		merged[name] = struct{}{}
	}
	return merged
}

// Sorted returns the members in lexicographic order.
func (f Founders) Sorted() []string {
	if len(f) == 0 {
		return nil
	}
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalJSON renders the set as a sorted JSON array.
func (f Founders) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Sorted())
}

// UnmarshalJSON reads the set from a JSON array.
func (f *Founders) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	set := make(Founders, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	*f = set
	return nil
}
