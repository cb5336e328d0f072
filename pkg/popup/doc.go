// Package popup defines the option set of an external popup engine, and the
// projection of those options onto a plain wire record.
//
// Options is the typed model. Project turns it into a Record whose keys and
// enum literals are the engine's own. Callbacks cannot cross the host
// boundary, so Project replaces each one with a presence flag; the owning
// process keeps the original Options and routes engine events back to them
// (see internal/interop for the routing table).
//
//	opts := popup.NewTitled("Delete file?")
//	opts.Icon = popup.IconWarning
//	opts.ShowCancelButton = popup.Bool(true)
//	opts.PreConfirm = func(ctx context.Context, _ any) (popup.Verdict, error) {
//	    if err := remove(ctx); err != nil {
//	        return popup.Veto(), nil
//	    }
//	    return popup.UseDefault(), nil
//	}
//
//	rec := popup.Project(opts) // rec.PreConfirm == true, rec.Icon == "warning"
package popup
