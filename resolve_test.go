package logger_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/murolem/logger"
)

func logLines(buf *bytes.Buffer) []string {
	out := buf.String()
	if out == "" {
		return nil
	}
	var lines []string
	for _, line := range bytes.Split([]byte(out), []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		lines = append(lines, string(line))
	}
	return lines
}

func TestBagWithRecognizedKeysIsOptions(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	_ = log.Info("m", map[string]any{"additional": 123})

	want := []string{"[info] m", "[info] additional data:", "123"}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestBagWithForeignKeyIsAdditional(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	_ = log.Info("m", map[string]any{"additional": 123, "hello": "world"})

	got := logLines(&buf)
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(got), got)
	}
	// The whole map is the payload, rendered verbatim.
	if got[1] != "[info] additional data:" {
		t.Fatalf("expected additional data note, got %q", got[1])
	}
	if got[2] != "map[additional:123 hello:world]" {
		t.Fatalf("expected whole map as payload, got %q", got[2])
	}
}

func TestEmptyMapIsAdditional(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	_ = log.Info("m", map[string]any{})

	want := []string{"[info] m", "[info] additional data:", "map[]"}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestTypedOptionsBypassShapeDispatch(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	_ = log.Info("m", logger.Options{Additional: "payload"})

	want := []string{"[info] m", "[info] additional data:", "payload"}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestScalarThirdArgIsAdditional(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	_ = log.Info("m", 7)

	want := []string{"[info] m", "[info] additional data:", "7"}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestFourthArgConfiguresAdditional(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	_ = log.Info("m", map[string]any{"foo": "bar"}, map[string]any{"stringifyAdditional": true})

	want := []string{
		"[info] m",
		"[info] additional data:",
		"{",
		`  "foo": "bar"`,
		"}",
	}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestFourthArgAdditionalEntryIgnored(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	// arg3 claimed the additional slot; the bag's own entry has no room.
	_ = log.Info("m", "real", map[string]any{"additional": "impostor"})

	want := []string{"[info] m", "[info] additional data:", "real"}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestFourthArgIgnoredAfterOptionsBag(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	// A pure options bag consumes arg3 entirely; arg4 has no slot left.
	_ = log.Info("m", map[string]any{"additional": 1}, map[string]any{"alwaysLogAdditional": true})

	want := []string{"[info] m", "[info] additional data:", "1"}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestNilAdditionalNotLoggedByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	_ = log.Info("m", nil)

	want := []string{"[info] m"}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestAlwaysLogAdditionalForcesNil(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	_ = log.Info("m", map[string]any{"alwaysLogAdditional": true})

	want := []string{"[info] m", "[info] additional data:", "<nil>"}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestExtraArgumentsBeyondFourthIgnored(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)
	_ = log.Info("m", "payload", map[string]any{}, "ignored", "also ignored")

	want := []string{"[info] m", "[info] additional data:", "payload"}
	if diff := cmp.Diff(want, logLines(&buf)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}
