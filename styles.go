package contactform

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/a-h/templ"
)

// StyleTagID is the marker identifier carried by the injected style element.
const StyleTagID = "contactform-styles"

var stylesInjected atomic.Bool

// StyleTag emits the widget stylesheet exactly once per process. Repeated
// mounts render nothing, the init-once equivalent of checking the document
// for the marker element before injecting.
func StyleTag() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !stylesInjected.CompareAndSwap(false, true) {
			return nil
		}
		_, err := fmt.Fprintf(w, `<style id="%s">%s</style>`, StyleTagID, widgetCSS)
		return err
	})
}

const widgetCSS = `
.cf-form{display:flex;flex-direction:column;gap:1rem;max-width:36rem;margin:0 auto;font-family:system-ui,sans-serif}
.cf-row{display:grid;grid-template-columns:1fr 1fr;gap:1rem}
.cf-field{display:flex;flex-direction:column;gap:.25rem}
.cf-field label{font-size:.875rem;font-weight:600}
.cf-field input,.cf-field select,.cf-field textarea{padding:.5rem .75rem;border:1px solid #d1d5db;border-radius:.375rem;font-size:1rem}
.cf-field input:disabled,.cf-field select:disabled,.cf-field textarea:disabled{opacity:.6}
.cf-consent{display:flex;align-items:center;gap:.5rem;font-size:.875rem}
.cf-submit{padding:.625rem 1.25rem;border:0;border-radius:.375rem;background:#111827;color:#fff;font-weight:600;cursor:pointer}
.cf-submit:disabled{opacity:.6;cursor:wait}
.cf-banner{padding:.75rem 1rem;border-radius:.375rem;font-size:.9375rem}
.cf-banner-success{background:#dcfce7;color:#166534}
.cf-banner-error{background:#fee2e2;color:#991b1b}
`
