package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// Inbound payloads arrive from webhooks, imports and manual entry with
// inconsistent field naming. Alias resolution is case-insensitive.
var fieldAliases = map[string][]string{
	"first_name":        {"firstname", "first_name", "fname"},
	"last_name":         {"lastname", "last_name", "lname"},
	"phone":             {"phone", "mobile", "phone_number"},
	"email":             {"email", "email_address", "mail"},
	"source":            {"source", "lead_source", "utm_source"},
	"course_interested": {"courseinterested", "course_interested", "course"},
}

// sourceAliases maps raw source tags to their normalized form. Unmapped
// values normalize to OTHER; the raw tag is kept on the lead for rule
// matching and reporting.
var sourceAliases = map[string]string{
	"FB":        "FACEBOOK",
	"FACEBOOK":  "FACEBOOK",
	"IG":        "INSTAGRAM",
	"INSTA":     "INSTAGRAM",
	"INSTAGRAM": "INSTAGRAM",
	"WEB":       "WEBSITE",
	"WEBSITE":   "WEBSITE",
	"GOOGLE":    "GOOGLE",
	"ADWORDS":   "GOOGLE",
	"CSV":       "IMPORT",
	"IMPORT":    "IMPORT",
	"XLSX":      "IMPORT",
	"MANUAL":    "MANUAL",
	"WHATSAPP":  "WHATSAPP",
	"REFERRAL":  "REFERRAL",
}

// SourceOther is the normalized source for unmapped tags.
const SourceOther = "OTHER"

// NormalizeSource maps a raw source tag through the alias table.
func NormalizeSource(raw string) string {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if key == "" {
		return SourceOther
	}
	if normalized, ok := sourceAliases[key]; ok {
		return normalized
	}
	return SourceOther
}

// fields is an inbound payload after alias resolution: canonical keys
// plus whatever was left over, which lands in custom fields.
type fields struct {
	FirstName        string
	LastName         string
	Phone            string
	Email            string
	Source           string
	CourseInterested string
	Custom           map[string]interface{}
}

// resolveFields folds a raw payload into canonical fields. Keys are
// matched case-insensitively against the alias table; unmatched keys
// are preserved as custom fields.
func resolveFields(payload map[string]interface{}) fields {
	aliasToField := map[string]string{}
	for canonical, aliases := range fieldAliases {
		for _, a := range aliases {
			aliasToField[a] = canonical
		}
	}

	f := fields{Custom: map[string]interface{}{}}
	for key, value := range payload {
		canonical, ok := aliasToField[normalizeKey(key)]
		if !ok {
			f.Custom[key] = value
			continue
		}
		str := stringify(value)
		switch canonical {
		case "first_name":
			f.FirstName = str
		case "last_name":
			f.LastName = str
		case "phone":
			f.Phone = str
		case "email":
			f.Email = str
		case "source":
			f.Source = str
		case "course_interested":
			f.CourseInterested = str
		}
	}
	return f
}

// normalizeKey folds a payload key or sheet header into alias-table
// form: lowercase, with spaces and dashes as underscores, so
// "First Name" and "first-name" both resolve to first_name.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, " ", "_")
	return strings.ReplaceAll(key, "-", "_")
}

// stringify renders a JSON scalar as the string the CRM stores.
// Numbers arrive from encoding/json as float64; integral values drop
// the trailing ".0" so phone numbers sent as numbers stay intact.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
