package contactform

// ResetStyleInjection clears the process-wide style injection guard so tests
// can exercise the first-mount path deterministically.
func ResetStyleInjection() {
	stylesInjected.Store(false)
}
