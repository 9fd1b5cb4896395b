package validate

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/drennick/aamvactl/internal/aamva/document"
	"github.com/drennick/aamvactl/internal/aamva/registry"
)

// Policy carries the tunable validation thresholds.
type Policy struct {
	// MaxValidityYears is how far past the issue date an expiration
	// date may sit before it is flagged.
	MaxValidityYears int
}

// DefaultPolicy allows the common eight-year license term.
func DefaultPolicy() Policy {
	return Policy{MaxValidityYears: 8}
}

// Validate runs the full check sequence over every subfile and returns
// all findings. It never stops early and never returns an error; use
// ValidateStrict to turn fatal findings into one.
//
// Check order: mandatory presence, per-element value rules, cross-field
// date consistency, header/jurisdiction agreement, unrecognized codes.
func Validate(doc *document.Document, reg *registry.Registry, pol Policy) []Finding {
	var findings []Finding

	if doc == nil || doc.Count() == 0 {
		return []Finding{{Severity: SeverityFatal, Message: "document has no subfiles"}}
	}

	for _, sf := range doc.Records() {
		findings = append(findings, checkMandatory(sf, reg)...)
		findings = append(findings, checkValues(sf, reg)...)
		findings = append(findings, checkDates(sf, pol)...)
	}
	findings = append(findings, checkJurisdiction(doc, reg)...)
	for _, sf := range doc.Records() {
		findings = append(findings, checkUnrecognized(sf, reg)...)
	}

	log.Debug().
		Str("iin", doc.IIN).
		Int("findings", len(findings)).
		Bool("fatal", HasFatal(findings)).
		Msg("validate.Validate done")
	return findings
}

// ValidateStrict runs the same full pass and additionally returns a
// *ValidationError carrying the fatal findings, if there are any. The
// findings slice is always complete either way.
func ValidateStrict(doc *document.Document, reg *registry.Registry, pol Policy) ([]Finding, error) {
	findings := Validate(doc, reg, pol)
	if fatal := Fatal(findings); len(fatal) > 0 {
		return findings, &ValidationError{Findings: fatal}
	}
	return findings, nil
}

func checkMandatory(sf *document.Subfile, reg *registry.Registry) []Finding {
	var out []Finding
	for _, code := range reg.Mandatory(sf.Type) {
		if !sf.Has(code) {
			name := code
			if def, ok := reg.Lookup(code); ok {
				name = def.Name
			}
			out = append(out, Finding{
				Severity:    SeverityFatal,
				SubfileType: sf.Type,
				Code:        code,
				Message:     fmt.Sprintf("missing mandatory field (%s)", name),
			})
		}
	}
	return out
}

func checkValues(sf *document.Subfile, reg *registry.Registry) []Finding {
	var out []Finding
	for _, f := range sf.Fields {
		for _, v := range reg.ValidateValue(f.Code, f.Value) {
			out = append(out, Finding{
				Severity:    SeverityFatal,
				SubfileType: sf.Type,
				Code:        f.Code,
				Message:     "invalid value: " + v.Message,
			})
		}
	}
	return out
}

// checkDates enforces birth < issue <= expiration and the validity
// ceiling. Elements that failed value validation are skipped here so
// one bad date does not produce a second, misleading finding.
func checkDates(sf *document.Subfile, pol Policy) []Finding {
	if sf.Kind() != document.KindPrimary {
		return nil
	}
	var out []Finding
	warn := func(code, msg string) {
		out = append(out, Finding{
			Severity:    SeverityWarning,
			SubfileType: sf.Type,
			Code:        code,
			Message:     "date inconsistency: " + msg,
		})
	}

	birth, haveBirth := parseDateField(sf, "DBB")
	issue, haveIssue := parseDateField(sf, "DBD")
	expire, haveExpire := parseDateField(sf, "DBA")

	if haveBirth && haveIssue && !birth.Before(issue) {
		warn("DBB", "birth date is not before issue date")
	}
	if haveIssue && haveExpire && expire.Before(issue) {
		warn("DBA", "expiration date precedes issue date")
	}
	if haveIssue && haveExpire && pol.MaxValidityYears > 0 {
		if expire.After(issue.AddDate(pol.MaxValidityYears, 0, 0)) {
			warn("DBA", fmt.Sprintf("expiration more than %d years past issue", pol.MaxValidityYears))
		}
	}
	return out
}

func checkJurisdiction(doc *document.Document, reg *registry.Registry) []Finding {
	primary, ok := doc.Primary()
	if !ok {
		return []Finding{{Severity: SeverityFatal, Message: "document has no primary subfile"}}
	}
	jur, known := reg.Jurisdiction(doc.IIN)
	if !known {
		return []Finding{{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("issuer %s is not a known jurisdiction IIN", doc.IIN),
		}}
	}
	daj, present := primary.Get("DAJ")
	if !present {
		// Absence is already a fatal mandatory finding.
		return nil
	}
	if daj != jur.Abbrev {
		return []Finding{{
			Severity:    SeverityWarning,
			SubfileType: primary.Type,
			Code:        "DAJ",
			Message:     fmt.Sprintf("jurisdiction %s does not match issuer %s (%s)", daj, doc.IIN, jur.Abbrev),
		}}
	}
	return nil
}

func checkUnrecognized(sf *document.Subfile, reg *registry.Registry) []Finding {
	var out []Finding
	for _, f := range sf.Fields {
		if _, known := reg.Lookup(f.Code); known && !f.Unknown {
			continue
		}
		out = append(out, Finding{
			Severity:    SeverityInfo,
			SubfileType: sf.Type,
			Code:        f.Code,
			Message:     "unrecognized field code",
		})
	}
	return out
}

func parseDateField(sf *document.Subfile, code string) (time.Time, bool) {
	raw, present := sf.Get(code)
	if !present {
		return time.Time{}, false
	}
	parsed, err := registry.ParseDate(raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
