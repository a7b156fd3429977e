package infer

import (
	"testing"

	"github.com/typeforge/typeforge/pkg/sample"
)

func TestFingerprint_FieldOrderIrrelevant(t *testing.T) {
	a := sample.Object(
		sample.F("x", sample.Number(1)),
		sample.F("y", sample.String("s")),
	)
	b := sample.Object(
		sample.F("y", sample.String("other")),
		sample.F("x", sample.Number(99)),
	)

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("fingerprint must depend on the sorted (name, kind) set only")
	}
}

func TestFingerprint_KindSensitive(t *testing.T) {
	a := sample.Object(sample.F("x", sample.Number(1)))
	b := sample.Object(sample.F("x", sample.String("1")))

	if Fingerprint(a) == Fingerprint(b) {
		t.Error("different field kinds must fingerprint differently")
	}
}

func TestFingerprint_NameSensitive(t *testing.T) {
	a := sample.Object(sample.F("x", sample.Number(1)))
	b := sample.Object(sample.F("y", sample.Number(1)))

	if Fingerprint(a) == Fingerprint(b) {
		t.Error("different field names must fingerprint differently")
	}
}

func TestFingerprint_CoarseOnly(t *testing.T) {
	// Nested structure does not participate: both are (child, object).
	a := sample.Object(sample.F("child", sample.Object(sample.F("deep", sample.Number(1)))))
	b := sample.Object(sample.F("child", sample.Object(sample.F("other", sample.Bool(true)))))

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("fingerprint must use coarse kinds, not nested structure")
	}
}

func TestFingerprint_EmptyObject(t *testing.T) {
	if Fingerprint(sample.Object()) == "" {
		t.Error("empty objects still fingerprint")
	}
	if Fingerprint(sample.Object()) != Fingerprint(sample.Object()) {
		t.Error("fingerprint must be deterministic")
	}
}
