package shell

import "context"

// FakeRunner records every command it receives and plays back scripted
// results in order. Once a script is exhausted the zero result is
// returned. Test helper for the kind and kubectl wrappers.
type FakeRunner struct {
	Calls   [][]string
	Outputs [][]byte
	Errs    []error
}

func (f *FakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, append([]string{name}, args...))

	var out []byte
	if len(f.Outputs) > 0 {
		out, f.Outputs = f.Outputs[0], f.Outputs[1:]
	}
	var err error
	if len(f.Errs) > 0 {
		err, f.Errs = f.Errs[0], f.Errs[1:]
	}
	return out, err
}
