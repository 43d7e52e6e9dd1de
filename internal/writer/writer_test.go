package writer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/fenwick-labs/stanwire/internal/testutil"
	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

func dialRole(t *testing.T, srv *testutil.FrameServer, role Role) *SocketWriter {
	t.Helper()
	w, err := Dial(srv.Path, role)
	testutil.AssertNoError(t, err)
	srv.WaitAccepted(t, 1)
	t.Cleanup(func() { w.Close() })
	return w
}

// drainFrames closes the writer and returns everything the server decoded.
func drainFrames(t *testing.T, srv *testutil.FrameServer, w *SocketWriter) []*writerpb.WriterMessage {
	t.Helper()
	testutil.AssertNoError(t, w.Close())
	return srv.Drain(t)
}

func assertProtocolErr(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, ErrProtocol) {
		t.Fatalf("expected ErrProtocol, got %v", err)
	}
}

func doubleFeature(name string, values ...float64) *writerpb.WriterMessage_Feature {
	f := &writerpb.WriterMessage_Feature{
		Payload: &writerpb.WriterMessage_Feature_DoubleList{
			DoubleList: &writerpb.WriterMessage_DoubleList{Value: values},
		},
	}
	if name != "" {
		f.Name = proto.String(name)
	}
	return f
}

func bytesFeature(values ...string) *writerpb.WriterMessage_Feature {
	raw := make([][]byte, len(values))
	for i, v := range values {
		raw[i] = []byte(v)
	}
	return &writerpb.WriterMessage_Feature{
		Payload: &writerpb.WriterMessage_Feature_BytesList{
			BytesList: &writerpb.WriterMessage_BytesList{Value: raw},
		},
	}
}

func TestDial_ConnectFailure(t *testing.T) {
	_, err := Dial(filepath.Join(t.TempDir(), "missing.sock"), RoleSample)
	testutil.AssertError(t, err)
}

func TestDial_UnknownRole(t *testing.T) {
	_, err := Dial("irrelevant", Role(42))
	testutil.AssertError(t, err)
}

func TestInitWriter_ValueVector(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleInit)

	testutil.AssertNoError(t, w.WriteValues([]float64{0.1, -0.2, 3.0}))

	frames := drainFrames(t, srv, w)
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	want := &writerpb.WriterMessage{
		Topic:   writerpb.WriterMessage_INITIALIZATION,
		Feature: []*writerpb.WriterMessage_Feature{doubleFeature("", 0.1, -0.2, 3.0)},
	}
	if diff := cmp.Diff(want, frames[0], protocmp.Transform()); diff != "" {
		t.Errorf("init frame mismatch (-want +got):\n%s", diff)
	}
}

func TestInitWriter_RejectsOtherEvents(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleInit)

	assertProtocolErr(t, w.WriteNames([]string{"lp__"}))
	assertProtocolErr(t, w.WriteMessage("Gradient evaluation took 0.01 seconds"))
	assertProtocolErr(t, w.WriteEmpty())

	if frames := drainFrames(t, srv, w); len(frames) != 0 {
		t.Errorf("rejected events produced %d frames, want 0", len(frames))
	}
}

func TestSampleWriter_HeaderThenDraw(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleSample)

	testutil.AssertNoError(t, w.WriteNames([]string{"lp__", "y"}))
	testutil.AssertNoError(t, w.WriteValues([]float64{-3.16745e-06, 0.00251692}))

	frames := drainFrames(t, srv, w)
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1 (header must be silent)", len(frames))
	}
	want := &writerpb.WriterMessage{
		Topic: writerpb.WriterMessage_SAMPLE,
		Feature: []*writerpb.WriterMessage_Feature{
			doubleFeature("lp__", -3.16745e-06),
			doubleFeature("y", 0.00251692),
		},
	}
	if diff := cmp.Diff(want, frames[0], protocmp.Transform()); diff != "" {
		t.Errorf("draw frame mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleWriter_AdaptationRun(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleSample)

	lines := []string{
		"Adaptation terminated",
		"Step size = 0.8",
		"Diagonal elements of inverse mass matrix:",
		"0.961989",
	}

	testutil.AssertNoError(t, w.WriteNames([]string{"lp__", "y"}))
	for _, line := range lines {
		testutil.AssertNoError(t, w.WriteMessage(line))
	}
	testutil.AssertNoError(t, w.WriteValues([]float64{1.0, 2.0}))

	if state := w.policy.(*samplePolicy).state; state != adaptAfter {
		t.Errorf("final adaptation state = %s, want %s", state, adaptAfter)
	}

	frames := drainFrames(t, srv, w)
	if len(frames) != len(lines)+1 {
		t.Fatalf("got %d frames, want %d", len(frames), len(lines)+1)
	}
	for i, line := range lines {
		want := &writerpb.WriterMessage{
			Topic:   writerpb.WriterMessage_SAMPLE,
			Feature: []*writerpb.WriterMessage_Feature{bytesFeature(line)},
		}
		if diff := cmp.Diff(want, frames[i], protocmp.Transform()); diff != "" {
			t.Errorf("text frame %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	wantDraw := &writerpb.WriterMessage{
		Topic: writerpb.WriterMessage_SAMPLE,
		Feature: []*writerpb.WriterMessage_Feature{
			doubleFeature("lp__", 1.0),
			doubleFeature("y", 2.0),
		},
	}
	if diff := cmp.Diff(wantDraw, frames[len(lines)], protocmp.Transform()); diff != "" {
		t.Errorf("draw frame mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleWriter_DrawDuringAdaptationRejected(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleSample)

	testutil.AssertNoError(t, w.WriteNames([]string{"lp__", "y"}))
	testutil.AssertNoError(t, w.WriteMessage("Adaptation terminated"))

	assertProtocolErr(t, w.WriteValues([]float64{1.0, 2.0}))

	// After the mass matrix header the report is still open.
	testutil.AssertNoError(t, w.WriteMessage("Diagonal elements of inverse mass matrix:"))
	assertProtocolErr(t, w.WriteValues([]float64{1.0, 2.0}))

	// Only the two text lines should have reached the socket.
	if frames := drainFrames(t, srv, w); len(frames) != 2 {
		t.Errorf("got %d frames, want 2", len(frames))
	}
}

func TestSampleWriter_SecondHeaderRejected(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleSample)

	testutil.AssertNoError(t, w.WriteNames([]string{"lp__", "y"}))
	assertProtocolErr(t, w.WriteNames([]string{"lp__", "y"}))

	if frames := drainFrames(t, srv, w); len(frames) != 0 {
		t.Errorf("headers produced %d frames, want 0", len(frames))
	}
}

func TestSampleWriter_ValuesRequireHeader(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleSample)

	assertProtocolErr(t, w.WriteValues([]float64{1.0}))
}

func TestSampleWriter_ArityMismatch(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleSample)

	testutil.AssertNoError(t, w.WriteNames([]string{"lp__", "y"}))
	assertProtocolErr(t, w.WriteValues([]float64{1.0}))
	assertProtocolErr(t, w.WriteValues([]float64{1.0, 2.0, 3.0}))
}

func TestSampleWriter_EmptySignalIsNoOp(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleSample)

	testutil.AssertNoError(t, w.WriteEmpty())
	if frames := drainFrames(t, srv, w); len(frames) != 0 {
		t.Errorf("empty signal produced %d frames, want 0", len(frames))
	}
}

func TestDiagnosticWriter_NamesAsDataAfterHeader(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleDiagnostic)

	testutil.AssertNoError(t, w.WriteNames([]string{"a", "b"}))
	testutil.AssertNoError(t, w.WriteNames([]string{"c", "d"}))

	frames := drainFrames(t, srv, w)
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1 (first header must be silent)", len(frames))
	}
	want := &writerpb.WriterMessage{
		Topic:   writerpb.WriterMessage_DIAGNOSTIC,
		Feature: []*writerpb.WriterMessage_Feature{bytesFeature("c", "d")},
	}
	if diff := cmp.Diff(want, frames[0], protocmp.Transform()); diff != "" {
		t.Errorf("names-as-data frame mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosticWriter_ValuesZipped(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleDiagnostic)

	testutil.AssertNoError(t, w.WriteNames([]string{"a", "b"}))
	testutil.AssertNoError(t, w.WriteValues([]float64{1.5, 2.5}))

	frames := drainFrames(t, srv, w)
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	want := &writerpb.WriterMessage{
		Topic: writerpb.WriterMessage_DIAGNOSTIC,
		Feature: []*writerpb.WriterMessage_Feature{
			doubleFeature("a", 1.5),
			doubleFeature("b", 2.5),
		},
	}
	if diff := cmp.Diff(want, frames[0], protocmp.Transform()); diff != "" {
		t.Errorf("diagnostic frame mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosticWriter_TextLine(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleDiagnostic)

	testutil.AssertNoError(t, w.WriteMessage("Elapsed Time: 0.005 seconds"))

	frames := drainFrames(t, srv, w)
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	want := &writerpb.WriterMessage{
		Topic:   writerpb.WriterMessage_DIAGNOSTIC,
		Feature: []*writerpb.WriterMessage_Feature{bytesFeature("Elapsed Time: 0.005 seconds")},
	}
	if diff := cmp.Diff(want, frames[0], protocmp.Transform()); diff != "" {
		t.Errorf("text frame mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosticWriter_ValuesRequireHeaderAndArity(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleDiagnostic)

	assertProtocolErr(t, w.WriteValues([]float64{1.0}))
	testutil.AssertNoError(t, w.WriteNames([]string{"a", "b"}))
	assertProtocolErr(t, w.WriteValues([]float64{1.0, 2.0, 3.0}))
}

func TestDiagnosticWriter_EmptySignalIsNoOp(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleDiagnostic)

	testutil.AssertNoError(t, w.WriteEmpty())
	if frames := drainFrames(t, srv, w); len(frames) != 0 {
		t.Errorf("empty signal produced %d frames, want 0", len(frames))
	}
}

func TestRole_Topic(t *testing.T) {
	tests := []struct {
		role Role
		want writerpb.WriterMessage_Topic
	}{
		{RoleInit, writerpb.WriterMessage_INITIALIZATION},
		{RoleSample, writerpb.WriterMessage_SAMPLE},
		{RoleDiagnostic, writerpb.WriterMessage_DIAGNOSTIC},
		{Role(42), writerpb.WriterMessage_TOPIC_UNSPECIFIED},
	}
	for _, tt := range tests {
		if got := tt.role.Topic(); got != tt.want {
			t.Errorf("%s.Topic() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestWriteAfterClose(t *testing.T) {
	srv := testutil.StartFrameServer(t)
	w := dialRole(t, srv, RoleInit)

	testutil.AssertNoError(t, w.Close())
	testutil.AssertError(t, w.WriteValues([]float64{1.0}))
}
