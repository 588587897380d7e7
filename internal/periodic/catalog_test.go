package periodic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func symbols(els []Element) []string {
	out := make([]string, 0, len(els))
	for _, e := range els {
		out = append(out, e.Symbol)
	}
	return out
}

func TestDefaultCatalogCounts(t *testing.T) {
	t.Parallel()
	c := Default()

	if got := len(c.Elements()); got != 39 {
		t.Errorf("len(Elements()) = %d, want 39", got)
	}
	if got := len(c.Epochs()); got != 6 {
		t.Errorf("len(Epochs()) = %d, want 6", got)
	}
	if got := len(c.Signatures()); got != 14 {
		t.Errorf("len(Signatures()) = %d, want 14", got)
	}
}

func TestElementLookup(t *testing.T) {
	t.Parallel()
	c := Default()

	tests := []struct {
		symbol    string
		wantOK    bool
		wantName  string
		wantYear  int
		wantEpoch Epoch
	}{
		{"C", true, "Carbone", -25000, EpochAntiquity},
		{"Na", true, "Sodium", 1807, EpochSpectroscopic},
		{"Tc", true, "Technétium", 1937, EpochModern},
		{"Tl", false, "", 0, 0},
		{"", false, "", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			t.Parallel()
			el, ok := c.Element(tt.symbol)
			if ok != tt.wantOK {
				t.Fatalf("Element(%q) ok = %v, want %v", tt.symbol, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if el.Name != tt.wantName || el.Year != tt.wantYear || el.Epoch != tt.wantEpoch {
				t.Errorf("Element(%q) = %+v", tt.symbol, el)
			}
		})
	}
}

func TestMembersAntiquityOrder(t *testing.T) {
	t.Parallel()
	got := symbols(Default().Members(EpochAntiquity))
	want := []string{"C", "S", "Fe", "Cu", "Ag", "Sn", "Au", "Hg", "Pb"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Members(Antiquity) mismatch (-want +got):\n%s", diff)
	}
}

func TestMembersPartitionElements(t *testing.T) {
	t.Parallel()
	c := Default()
	total := 0
	for _, e := range AllEpochs() {
		for _, el := range c.Members(e) {
			if el.Epoch != e {
				t.Errorf("Members(%s) returned %s tagged %s", e, el.Symbol, el.Epoch)
			}
		}
		total += len(c.Members(e))
	}
	if total != len(c.Elements()) {
		t.Errorf("members total = %d, want %d", total, len(c.Elements()))
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()
	c := Default()

	els := c.Elements()
	els[0].Name = "mutated"
	if el, _ := c.Element(els[0].Symbol); el.Name == "mutated" {
		t.Error("Elements() exposed the registry slice")
	}

	sig, ok := c.Signature("Na")
	if !ok {
		t.Fatal("expected Na signature")
	}
	sig.Lines[0] = "mutated"
	if again, _ := c.Signature("Na"); again.Lines[0] == "mutated" {
		t.Error("Signature() exposed the registry lines")
	}

	ei, _ := c.EpochInfo(EpochAntiquity)
	ei.Declared[0] = "mutated"
	if again, _ := c.EpochInfo(EpochAntiquity); again.Declared[0] == "mutated" {
		t.Error("EpochInfo() exposed the declared list")
	}
}

func TestEpochInfoColors(t *testing.T) {
	t.Parallel()
	want := []string{"#f5deb3", "#deb887", "#f4a460", "#cd853f", "#d2691e", "#a0522d"}
	for i, ei := range Default().Epochs() {
		if got := ei.Color.Hex(); got != want[i] {
			t.Errorf("%s color = %s, want %s", ei.Name(), got, want[i])
		}
	}
}

func TestParseEpoch(t *testing.T) {
	t.Parallel()
	for _, e := range AllEpochs() {
		got, ok := ParseEpoch(e.Name())
		if !ok || got != e {
			t.Errorf("ParseEpoch(%q) = (%v, %v), want (%v, true)", e.Name(), got, ok, e)
		}
	}
	if _, ok := ParseEpoch("Jurassic"); ok {
		t.Error("ParseEpoch should reject unknown names")
	}
	if got := Epoch(42).Name(); got != "unknown" {
		t.Errorf("Epoch(42).Name() = %q, want unknown", got)
	}
}

func TestAuditShippedData(t *testing.T) {
	t.Parallel()
	findings := Default().Audit()

	counts := make(map[FindingKind]int)
	for _, f := range findings {
		counts[f.Kind]++
		if f.Error() == "" {
			t.Errorf("finding %+v has empty message", f)
		}
	}

	want := map[FindingKind]int{
		FindingUnknownSymbol:   15,
		FindingOrphanSignature: 1,
	}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("audit counts mismatch (-want +got):\n%s", diff)
	}
}

func TestAuditDetectsTagDrift(t *testing.T) {
	t.Parallel()
	els := []Element{
		{"A", "Alpha", 100, "x", EpochAntiquity},
		{"B", "Beta", 1200, "y", EpochMiddleAges},
	}
	var eps [epochCount]EpochInfo
	for i := range eps {
		eps[i].Epoch = Epoch(i)
	}
	eps[EpochAntiquity].Declared = []string{"A", "B"}
	c := newCatalog(els, eps, nil)

	want := []Finding{
		{Kind: FindingWrongEpoch, Epoch: EpochAntiquity, Symbol: "B"},
		{Kind: FindingUndeclared, Epoch: EpochMiddleAges, Symbol: "B"},
	}
	if diff := cmp.Diff(want, c.Audit()); diff != "" {
		t.Errorf("Audit() mismatch (-want +got):\n%s", diff)
	}
}

func TestRGBFormatting(t *testing.T) {
	t.Parallel()
	c := RGB{255, 255, 0}
	if got := c.Hex(); got != "#ffff00" {
		t.Errorf("Hex() = %q", got)
	}
	if got := c.String(); got != "(255, 255, 0)" {
		t.Errorf("String() = %q", got)
	}
	parsed, err := ParseHex("#A0522D")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if parsed != (RGB{160, 82, 45}) {
		t.Errorf("ParseHex = %v", parsed)
	}
	if _, err := ParseHex("nope"); err == nil {
		t.Error("ParseHex should fail on garbage")
	}
}

func TestRGBBlendEndpoints(t *testing.T) {
	t.Parallel()
	white := RGB{255, 255, 255}
	c := RGB{10, 20, 30}
	if got := c.Blend(white, 0); got != c {
		t.Errorf("Blend(t=0) = %v, want %v", got, c)
	}
	if got := c.Blend(white, 1); got != white {
		t.Errorf("Blend(t=1) = %v, want %v", got, white)
	}
}

func TestRGBTextRoundTrip(t *testing.T) {
	t.Parallel()
	in := RGB{210, 105, 30}
	text, err := in.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "#d2691e" {
		t.Errorf("MarshalText = %q", text)
	}
	var out RGB
	if err := out.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}
