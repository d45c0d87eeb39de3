package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// StrOrDefault dereferences p, falling back when nil.
func StrOrDefault(fallback string, p *string) string {
	if p != nil {
		return *p
	}
	return fallback
}

// IntOrDefault dereferences p, falling back when nil.
func IntOrDefault(fallback int, p *int) int {
	if p != nil {
		return *p
	}
	return fallback
}

// Float64OrDefault dereferences p, falling back when nil.
func Float64OrDefault(fallback float64, p *float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}
