package config

import (
	"github.com/hashicorp/go-multierror"
)

// RequiredSet is an ordered list of sections a complete document must carry.
// Validation walks it in declared order.
type RequiredSet []Section

// Declared schema versions. The required set has grown over time; choosing a
// version is a data change, not a code change.
var (
	// SchemaV1 is what early deployments required.
	SchemaV1 = RequiredSet{SectionStorage, SectionCache}

	// SchemaV2 requires every section.
	SchemaV2 = RequiredSet{
		SectionStorage,
		SectionCache,
		SectionMessaging,
		SectionUpstream,
		SectionServers,
		SectionTLS,
	}

	// CurrentSchema is the set used when none is specified.
	CurrentSchema = SchemaV2
)

// Contains reports whether s is in the set.
func (rs RequiredSet) Contains(s Section) bool {
	for _, r := range rs {
		if r == s {
			return true
		}
	}
	return false
}

// Validate returns a *MissingSectionError for the first section of set that
// is absent from doc, or nil when every required section is present.
//
// Only presence is checked. A present section with empty fields passes here
// and is reported by the resolvers when it is used.
func Validate(doc *Document, set RequiredSet) error {
	for _, s := range set {
		if !doc.Has(s) {
			return &MissingSectionError{Section: s}
		}
	}
	return nil
}

// Missing returns every section of set absent from doc, in declared order.
func Missing(doc *Document, set RequiredSet) []Section {
	var missing []Section
	for _, s := range set {
		if !doc.Has(s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// ValidateAll is like Validate but reports every missing section. The
// returned error is a *multierror.Error whose entries are
// *MissingSectionError values in declared order.
func ValidateAll(doc *Document, set RequiredSet) error {
	var errs *multierror.Error
	for _, s := range Missing(doc, set) {
		errs = multierror.Append(errs, &MissingSectionError{Section: s})
	}
	return errs.ErrorOrNil()
}
