package core

import (
	"errors"
	"strings"
	"testing"
)

type recorder struct {
	errs   []*Error
	panics []*PanicError
	builds []*BuildError
}

func (r *recorder) HandleError(err *Error)           { r.errs = append(r.errs, err) }
func (r *recorder) HandlePanic(err *PanicError)      { r.panics = append(r.panics, err) }
func (r *recorder) HandleBuildError(err *BuildError) { r.builds = append(r.builds, err) }

func withRecorder(t *testing.T) *recorder {
	t.Helper()
	r := &recorder{}
	SetHandler(r)
	t.Cleanup(func() { SetHandler(nil) })
	return r
}

func TestReportStampsAndRoutes(t *testing.T) {
	r := withRecorder(t)
	cause := errors.New("closed")

	Report(&Error{Op: "app.read", Kind: KindInput, Err: cause})
	ReportPanic(&PanicError{Op: "crash", Value: "boom"})
	ReportBuildError(&BuildError{View: "main.form", Err: cause})
	Report(nil)

	if len(r.errs) != 1 || len(r.panics) != 1 || len(r.builds) != 1 {
		t.Fatalf("routed %d/%d/%d", len(r.errs), len(r.panics), len(r.builds))
	}
	if r.errs[0].Timestamp.IsZero() || r.panics[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if !errors.Is(r.errs[0], cause) || !errors.Is(r.builds[0], cause) {
		t.Error("cause not unwrapped")
	}
	if got := r.errs[0].Error(); got != "app.read [input]: closed" {
		t.Errorf("Error() = %q", got)
	}
}

func TestBuildErrorMessages(t *testing.T) {
	tests := []struct {
		err  *BuildError
		want string
	}{
		{&BuildError{View: "v", Recovered: "nil map"}, "panic in v.Body(): nil map"},
		{&BuildError{View: "v", Err: errors.New("bad")}, "error in v.Body(): bad"},
		{&BuildError{View: "v"}, "unknown error in v.Body()"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got %q want %q", got, tt.want)
		}
	}
}

func TestAssert(t *testing.T) {
	r := withRecorder(t)

	Assert(true, "never")
	Assert(false, "width %d", -1)
	if len(r.errs) != 1 || r.errs[0].Kind != KindInvariant {
		t.Fatalf("assert not reported: %v", r.errs)
	}
	if !strings.Contains(r.errs[0].Error(), "width -1") {
		t.Errorf("message %q", r.errs[0].Error())
	}

	SetAssertPanics(true)
	defer SetAssertPanics(false)
	defer func() {
		if recover() == nil {
			t.Error("assert did not panic")
		}
	}()
	Assert(false, "fatal")
}

func TestHandleCrashRunsTeardown(t *testing.T) {
	r := withRecorder(t)
	tornDown := false
	SetCrashTeardown(func() { tornDown = true })
	defer SetCrashTeardown(nil)

	code := -1
	exitFunc = func(c int) { code = c }
	defer func() { exitFunc = osExit }()

	HandleCrash("boom")
	if !tornDown {
		t.Error("teardown not called")
	}
	if code != 1 {
		t.Errorf("exit code %d", code)
	}
	if len(r.panics) != 1 || r.panics[0].Value != "boom" {
		t.Errorf("panic not reported: %v", r.panics)
	}

	HandleCrash(nil)
	if len(r.panics) != 1 {
		t.Error("nil recovery reported")
	}
}

func TestErrorKindString(t *testing.T) {
	if KindBuild.String() != "build" || ErrorKind(99).String() != "unknown" {
		t.Error("kind names")
	}
}

func TestLogHandlerWithoutLoggerDiscards(t *testing.T) {
	h := &LogHandler{}
	if h.logger() != discardLogger {
		t.Error("handler without a logger must not fall back to stderr")
	}
	h.HandleBuildError(&BuildError{View: "v", Recovered: "boom"})
}

func stackFromHelper() string { return CaptureStack() }

func TestCaptureStackSkipsCaller(t *testing.T) {
	s := stackFromHelper()
	if strings.Contains(s, "stackFromHelper") {
		t.Errorf("Expected helper frame skipped, got %s", s)
	}
	if !strings.Contains(s, "TestCaptureStackSkipsCaller") {
		t.Errorf("Expected test frame, got %s", s)
	}
}
