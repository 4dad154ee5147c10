package quote

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leafilms/docgen/model"
)

// Placeholder replaces a file name component that sanitizes to nothing.
const Placeholder = "N_A"

var (
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N} _.()-]`)
	separators  = regexp.MustCompile(`[_\s]+`)
)

// Sanitize makes name safe for use in a file name. Characters other than
// letters, digits, space, '-', '_', '.', '(' and ')' become underscores, runs
// of underscores and whitespace collapse into one underscore and leading or
// trailing underscores are dropped. Sanitize is idempotent.
func Sanitize(name string) string {
	name = strings.TrimSpace(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = separators.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return Placeholder
	}
	return name
}

// Filename builds "{base}_{customer}_{project}_{version}_@{handle}.pdf" where
// base is "pristilbud" or "price_offer".
func Filename(lang model.Language, md model.Metadata, handle string) string {
	return fmt.Sprintf("%s_%s_%s_%s_@%s.pdf",
		lang.Pick("pristilbud", "price_offer"),
		Sanitize(md.Get(model.KeyCustomer, Placeholder)),
		Sanitize(md.Get(model.KeyProject, Placeholder)),
		Sanitize(md.Get(model.KeyVersion, "v0")),
		Sanitize(handle),
	)
}
