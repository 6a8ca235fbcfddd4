package report

import "sync"

// Reporter collects the diagnostics produced over the course of a single
// compilation.  Each compilation owns its own reporter: there is no shared
// reporter state between compilations, so independent compiles may run
// concurrently.  The reporter itself is synchronized so its methods can be
// safely called from multiple goroutines.
type Reporter struct {
	// The mutex used to synchronize diagnostic recording.
	m *sync.Mutex

	// The diagnostics recorded so far in order of detection.
	diags []*Diagnostic
}

// NewReporter creates a new empty reporter.
func NewReporter() *Reporter {
	return &Reporter{m: &sync.Mutex{}}
}

// Report records a diagnostic.
func (r *Reporter) Report(d *Diagnostic) {
	r.m.Lock()
	defer r.m.Unlock()

	r.diags = append(r.diags, d)
}

// Diagnostics returns all diagnostics recorded so far.
func (r *Reporter) Diagnostics() []*Diagnostic {
	r.m.Lock()
	defer r.m.Unlock()

	return r.diags
}

// ShouldProceed indicates whether or not compilation should continue past the
// current phase: ie. whether no diagnostics have been recorded.
func (r *Reporter) ShouldProceed() bool {
	r.m.Lock()
	defer r.m.Unlock()

	return len(r.diags) == 0
}

// CatchDiagnostics catches any diagnostic thrown by a `panic` during a stage
// of compilation and records it.  In effect, this handler determines where
// errors "unrecoverable" within a given subsection of the compiler should
// stop bubbling.
// NB: This function must ALWAYS be deferred.
func (r *Reporter) CatchDiagnostics() {
	if x := recover(); x != nil {
		if d, ok := x.(*Diagnostic); ok {
			r.Report(d)
		} else {
			panic(x)
		}
	}
}
