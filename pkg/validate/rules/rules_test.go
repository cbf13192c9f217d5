package rules

import (
	"strings"
	"testing"

	"github.com/dcmspec/dcmspec-go/internal/dicttest"
	"github.com/dcmspec/dcmspec-go/pkg/dataset"
	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/validate"
	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

func countSeverity(results []diag.Result, sev diag.Severity) int {
	n := 0
	for _, r := range results {
		if r.Severity == sev {
			n++
		}
	}
	return n
}

func TestDefaultRegistryOrder(t *testing.T) {
	reg := NewDefaultRegistry(dicttest.New(t))

	want := []string{"FILE-001", "FILE-002", "UID-001", "UID-002", "VR-001", "VR-002", "TAG-001", "TAG-002", "TAG-003"}
	all := reg.AllRules()
	if len(all) != len(want) {
		t.Fatalf("got %d rules, want %d", len(all), len(want))
	}
	for i, r := range all {
		if r.ID() != want[i] {
			t.Errorf("rule %d = %s, want %s", i, r.ID(), want[i])
		}
		_, isFile := r.(validate.FileRule)
		_, isElement := r.(validate.ElementRule)
		if isFile == isElement {
			t.Errorf("%s must be exactly one of FileRule or ElementRule", r.ID())
		}
	}
}

func TestFILE001_Preamble(t *testing.T) {
	rule := NewFILE001()

	if got := rule.CheckFile(dataset.NewFile(true, dataset.New())); len(got) != 0 {
		t.Errorf("expected no result with preamble, got %v", got)
	}

	got := rule.CheckFile(dataset.NewFile(false, dataset.New()))
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Severity != diag.SeverityNotice || got[0].Message != "No prefix header was found" {
		t.Errorf("unexpected result %v", got[0])
	}
}

func TestFILE002_TransferSyntaxPresent(t *testing.T) {
	rule := NewFILE002()

	tests := []struct {
		name  string
		ds    *dataset.DataSet
		wants bool
	}{
		{"missing data set", nil, true},
		{"missing element", dataset.New(), true},
		{"empty value", dataset.New(dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 0, "")), true},
		{"non-string value", dataset.New(dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 2, int64(1))), true},
		{"present", dataset.New(dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 18, "1.2.840.10008.1.2")), false},
		{"nul padded", dataset.New(dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 18, "1.2.840.10008.1.2\x00")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.CheckFile(dataset.NewFile(true, tt.ds))
			if (len(got) > 0) != tt.wants {
				t.Fatalf("CheckFile() = %v, want result=%v", got, tt.wants)
			}
			if tt.wants && (got[0].Message != "Undefined Transfer Syntax" || got[0].Severity != diag.SeverityWarning) {
				t.Errorf("unexpected result %v", got[0])
			}
		})
	}
}

func TestUID001_TransferSyntaxSupported(t *testing.T) {
	rule := NewUID001(dicttest.New(t))

	tests := []struct {
		name    string
		element *dataset.Element
		message string
	}{
		{"supported", dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 18, "1.2.840.10008.1.2"), ""},
		{"padded", dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 20, "1.2.840.10008.1.2.1\x00"), ""},
		{"unsupported", dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 6, "9.9.9"), "Transfer Syntax 9.9.9 is not supported"},
		{"a SOP Class", dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 18, "1.2.840.10008.1.1"), "Transfer Syntax 1.2.840.10008.1.1 is not supported"},
		{"other element", dataset.NewNamedElement("SOPClassUID", "00080016", vr.UI, 6, "9.9.9"), ""},
		{"non-string value", dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 4, []string{"9.9.9"}), ""},
		{"nil value", dataset.NewNamedElement("TransferSyntaxUID", "00020010", vr.UI, 0, nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.CheckElement(tt.element)
			if tt.message == "" {
				if len(got) != 0 {
					t.Errorf("expected no result, got %v", got)
				}
				return
			}
			if len(got) != 1 || got[0].Message != tt.message || got[0].Severity != diag.SeverityWarning {
				t.Errorf("CheckElement() = %v, want warning %q", got, tt.message)
			}
		})
	}
}

func TestUID002_SOPClassSupported(t *testing.T) {
	rule := NewUID002(dicttest.New(t))

	if got := rule.CheckElement(dataset.NewNamedElement("SOPClassUID", "00080016", vr.UI, 18, "1.2.840.10008.1.1")); len(got) != 0 {
		t.Errorf("expected Verification to be supported, got %v", got)
	}

	got := rule.CheckElement(dataset.NewNamedElement("SOPClassUID", "00080016", vr.UI, 18, "1.2.840.10008.1.2"))
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Message != "SOP Class 1.2.840.10008.1.2 is not supported" {
		t.Errorf("unexpected message %q", got[0].Message)
	}
	if strings.Contains(got[0].Message, "Transfer Syntax") {
		t.Error("SOP Class message must not reuse the Transfer Syntax wording")
	}

	if got := rule.CheckElement(dataset.NewNamedElement("SOPClassUID", "00080016", vr.UI, 2, 42)); len(got) != 0 {
		t.Errorf("non-string value must skip the rule, got %v", got)
	}
}

func TestVR001_FixedLength(t *testing.T) {
	rule := NewVR001()

	for _, v := range vr.All() {
		limit := vr.FixedLength(v)
		if limit == 0 {
			if got := rule.CheckElement(dataset.NewNamedElement("X", "00100010", v, 1<<20, nil)); len(got) != 0 {
				t.Errorf("%s has no fixed length but got %v", v, got)
			}
			continue
		}
		t.Run(v.String(), func(t *testing.T) {
			at := rule.CheckElement(dataset.NewNamedElement("X", "00100010", v, limit, nil))
			if len(at) != 0 {
				t.Errorf("length == %d: expected no result, got %v", limit, at)
			}

			over := rule.CheckElement(dataset.NewNamedElement("X", "00100010", v, limit+1, nil))
			if countSeverity(over, diag.SeverityError) != 1 || len(over) != 1 {
				t.Fatalf("length == %d: expected exactly one error, got %v", limit+1, over)
			}
			if !strings.Contains(over[0].Message, v.String()) {
				t.Errorf("message %q does not mention %s", over[0].Message, v)
			}
		})
	}
}

func TestVR001_Message(t *testing.T) {
	got := NewVR001().CheckElement(dataset.NewNamedElement("Rows", "00280010", vr.US, 4, nil))
	if len(got) != 1 || got[0].Message != "Invalid VR length of US element [Rows] (4 > 2)" {
		t.Errorf("unexpected results %v", got)
	}
}

func TestVR002_MaxLength(t *testing.T) {
	rule := NewVR002()

	for _, v := range vr.All() {
		limit := vr.MaxLength(v)
		if limit == 0 {
			continue
		}
		t.Run(v.String(), func(t *testing.T) {
			at := rule.CheckElement(dataset.NewNamedElement("X", "00100010", v, limit, nil))
			if len(at) != 0 {
				t.Errorf("length == %d: expected no result, got %v", limit, at)
			}

			over := rule.CheckElement(dataset.NewNamedElement("X", "00100010", v, limit+1, nil))
			if countSeverity(over, diag.SeverityWarning) != 1 || len(over) != 1 {
				t.Fatalf("length == %d: expected exactly one warning, got %v", limit+1, over)
			}
		})
	}

	for _, v := range []vr.VR{vr.OD, vr.OF, vr.UT} {
		if got := rule.CheckElement(dataset.NewNamedElement("X", "00100010", v, 1<<30, nil)); len(got) != 0 {
			t.Errorf("%s is unbounded but got %v", v, got)
		}
	}
}

func TestVR002_Message(t *testing.T) {
	got := NewVR002().CheckElement(dataset.NewNamedElement("PatientID", "00100020", vr.LO, 65, nil))
	if len(got) != 1 || got[0].Message != "Invalid max VR length of LO element [PatientID] (65 > 64)" {
		t.Errorf("unexpected results %v", got)
	}
}

func TestTAG001_Retired(t *testing.T) {
	rule := NewTAG001(dicttest.New(t))

	got := rule.CheckElement(dataset.NewNamedElement("CommandLengthToEnd", "00000001", vr.UL, 4, int64(0)))
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %v", got)
	}
	if got[0].Severity != diag.SeverityNotice || got[0].Message != "Tag (0000,0001) CommandLengthToEnd is retired" {
		t.Errorf("unexpected result %v", got[0])
	}

	if got := rule.CheckElement(dataset.NewNamedElement("PatientName", "00100010", vr.PN, 8, "Doe^John")); len(got) != 0 {
		t.Errorf("current tag reported as retired: %v", got)
	}
}

func TestTAG002_Unknown(t *testing.T) {
	rule := NewTAG002(dicttest.New(t))

	tests := []struct {
		name    string
		element *dataset.Element
		wants   bool
	}{
		{"named unknown", dataset.NewNamedElement("Unknown", "00091001", vr.LO, 4, "ACME"), true},
		{"absent code", dataset.NewNamedElement("VendorThing", "00091001", vr.LO, 4, "ACME"), true},
		{"known", dataset.NewNamedElement("PatientName", "00100010", vr.PN, 8, "Doe^John"), false},
		{"repeating group not matched", dataset.NewNamedElement("Unknown", "60003000", vr.OB, 4, nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.CheckElement(tt.element)
			if (len(got) == 1) != tt.wants {
				t.Fatalf("CheckElement() = %v, want result=%v", got, tt.wants)
			}
			if tt.wants && got[0].Message != "Unknown tag, may be private" {
				t.Errorf("unexpected message %q", got[0].Message)
			}
		})
	}
}

func TestTAG003_VRMismatch(t *testing.T) {
	rule := NewTAG003(dicttest.New(t))

	got := rule.CheckElement(dataset.NewNamedElement("PatientName", "00100010", vr.LO, 8, "Doe^John"))
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %v", got)
	}
	if got[0].Severity != diag.SeverityError || got[0].Message != "Value Representation mismatch, PN required" {
		t.Errorf("unexpected result %v", got[0])
	}

	exempt := []*dataset.Element{
		dataset.NewNamedElement("PatientName", "00100010", vr.PN, 8, "Doe^John"),
		dataset.NewNamedElement("Unknown", "00100010", vr.LO, 8, "Doe^John"),
		dataset.NewNamedElement("VendorThing", "00091001", vr.LO, 4, "ACME"),
		dataset.NewNamedElement("SmallestImagePixelValue", "00280106", vr.US, 2, int64(0)),
	}
	for _, e := range exempt {
		if got := rule.CheckElement(e); len(got) != 0 {
			t.Errorf("%s %s: unexpected %v", e.Tag(), e.VR(), got)
		}
	}
}

func TestUnknownElementYieldsSingleNotice(t *testing.T) {
	v := validate.New(NewDefaultRegistry(dicttest.New(t)))

	got := v.ValidateElement(dataset.NewElement(dicttest.New(t), "00091001", vr.SH, 4, "ACME"))
	if len(got) != 1 || got[0].Severity != diag.SeverityNotice || !strings.Contains(got[0].Message, "may be private") {
		t.Errorf("ValidateElement() = %v, want one private-tag notice", got)
	}
}

func TestRetiredElementYieldsSingleRetiredNotice(t *testing.T) {
	d := dicttest.New(t)
	v := validate.New(NewDefaultRegistry(d))

	clean := v.ValidateElement(dataset.NewElement(d, "00000001", vr.UL, 4, int64(0)))
	if len(clean) != 1 || clean[0].Severity != diag.SeverityNotice || !strings.Contains(clean[0].Message, "retired") {
		t.Fatalf("ValidateElement() = %v, want one retired notice", clean)
	}

	// Other problems on the same element do not change the retired notice.
	noisy := v.ValidateElement(dataset.NewElement(d, "00000001", vr.US, 8, int64(0)))
	retired := 0
	for _, r := range noisy {
		if strings.Contains(r.Message, "retired") {
			retired++
			if r.Severity != diag.SeverityNotice {
				t.Errorf("retired result severity = %v", r.Severity)
			}
		}
	}
	if retired != 1 || len(noisy) < 2 {
		t.Errorf("ValidateElement() = %v, want one retired notice among other results", noisy)
	}
}
