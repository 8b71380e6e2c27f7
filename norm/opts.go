package norm

type normOpts struct {
	skipRepair bool
	diags      *[]Diag
}

type Option func(*normOpts)

// SkipRepair bypasses mixed-encoding repair for every leaf of the call;
// scalars pass into direction conversion unmodified.
func SkipRepair(v bool) Option {
	return func(o *normOpts) { o.skipRepair = v }
}

// Diagnostics supplies a sink for non-fatal diagnostics emitted when
// traversal reaches nodes it cannot transform.
func Diagnostics(sink *[]Diag) Option {
	return func(o *normOpts) { o.diags = sink }
}
