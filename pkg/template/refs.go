package template

// UnitRef is a value token found in a format string.
type UnitRef struct {
	// Token is the full token text, e.g. "&(second_2)".
	Token string
	Spec  ValueSpec
}

// ExtractUnitRefs returns the value tokens of format in order of appearance,
// without duplicates. Style tokens are ignored.
func ExtractUnitRefs(format string) []UnitRef {
	var refs []UnitRef
	seen := make(map[string]bool)

	for _, token := range valueToken.FindAllString(format, -1) {
		if seen[token] {
			continue
		}
		seen[token] = true
		refs = append(refs, UnitRef{Token: token, Spec: ParseValueSpec(tokenBody(token))})
	}

	return refs
}
