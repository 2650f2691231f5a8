//go:build !darwin

package locale

// systemPreferred has no portable fallback beyond the locale environment
// variables handled in Preferred.
func systemPreferred() []string {
	return nil
}
