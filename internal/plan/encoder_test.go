package plan

import (
	"go/types"
	"testing"

	"builder-generator/internal/schema"
)

func intRecord(name string, fields ...schema.Field) *schema.Record {
	rec := &schema.Record{
		PkgPath: "test/pkg",
		PkgName: "pkg",
		Name:    name,
	}
	rec.Fields = append(rec.Fields, fields...)

	return rec
}

func intSchemaField(name string, index int, class schema.Classification) schema.Field {
	return schema.Field{
		Name:           name,
		Index:          index,
		Type:           types.Typ[types.Int],
		Classification: class,
	}
}

func TestEncodeNames(t *testing.T) {
	rec := intRecord("Point",
		intSchemaField("X", 0, schema.Required),
		intSchemaField("Y", 1, schema.OptionalZero),
		intSchemaField("Z", 2, schema.OptionalDefault),
	)

	p := Encode(rec)

	if p.BuilderName != "PointBuilder" {
		t.Errorf("builder name: got %q", p.BuilderName)
	}

	if p.ConstructorName != "NewPointBuilder" {
		t.Errorf("constructor name: got %q", p.ConstructorName)
	}

	if p.FinalizerName != "PointBuild" {
		t.Errorf("finalizer name: got %q", p.FinalizerName)
	}

	if len(p.Slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(p.Slots))
	}

	x := p.Slots[0]
	if x.Unset != "pointXUnset" || x.Set != "pointXSet" || x.State != "pointXState" {
		t.Errorf("X markers: got %q/%q/%q", x.Unset, x.Set, x.State)
	}

	if x.SetterName != "PointSetX" || x.FromSetterName != "PointSetXFrom" {
		t.Errorf("X setters: got %q/%q", x.SetterName, x.FromSetterName)
	}

	if x.Param != "PX" || x.Storage != "vX" {
		t.Errorf("X param/storage: got %q/%q", x.Param, x.Storage)
	}
}

func TestEncodeMarkersKeyOnFieldIdentity(t *testing.T) {
	// Two fields with the same declared type must still get distinct
	// marker pairs, or their set-status would conflate.
	rec := intRecord("Pair",
		intSchemaField("First", 0, schema.Required),
		intSchemaField("Second", 1, schema.Required),
	)

	p := Encode(rec)

	if p.Slots[0].Unset == p.Slots[1].Unset {
		t.Errorf("markers conflated: both slots use %q", p.Slots[0].Unset)
	}

	if p.Slots[0].Set == p.Slots[1].Set {
		t.Errorf("set markers conflated: both slots use %q", p.Slots[0].Set)
	}
}

func TestEncodeCaseFoldCollision(t *testing.T) {
	// Unexported "x" and exported "X" both capitalize to "X"; the second
	// slot must be disambiguated.
	rec := intRecord("Odd",
		intSchemaField("x", 0, schema.Required),
		intSchemaField("X", 1, schema.Required),
	)

	p := Encode(rec)

	if p.Slots[0].Fragment == p.Slots[1].Fragment {
		t.Fatalf("fragments collide: %q", p.Slots[0].Fragment)
	}

	if p.Slots[1].Fragment != "X1" {
		t.Errorf("expected disambiguated fragment X1, got %q", p.Slots[1].Fragment)
	}

	if p.Slots[0].SetterName == p.Slots[1].SetterName {
		t.Errorf("setter names collide: %q", p.Slots[0].SetterName)
	}
}

func TestEncodeFlagsOnlyForExpressionDefaults(t *testing.T) {
	rec := intRecord("Point",
		intSchemaField("X", 0, schema.Required),
		intSchemaField("Y", 1, schema.OptionalZero),
		intSchemaField("Z", 2, schema.OptionalDefault),
	)

	p := Encode(rec)

	if p.Slots[0].NeedsFlag() {
		t.Error("required slot should not carry a set-flag")
	}

	if p.Slots[1].NeedsFlag() {
		t.Error("zero-default slot should not carry a set-flag")
	}

	if !p.Slots[2].NeedsFlag() {
		t.Error("expression-default slot must carry a set-flag")
	}
}

func TestEncodeSlotPartitions(t *testing.T) {
	rec := intRecord("Point",
		intSchemaField("X", 0, schema.Required),
		intSchemaField("Y", 1, schema.OptionalZero),
		intSchemaField("Z", 2, schema.OptionalDefault),
	)

	p := Encode(rec)

	if got := len(p.RequiredSlots()); got != 1 {
		t.Errorf("expected 1 required slot, got %d", got)
	}

	if got := len(p.OptionalSlots()); got != 2 {
		t.Errorf("expected 2 optional slots, got %d", got)
	}

	free := p.FreeSlots(1)
	if len(free) != 2 {
		t.Fatalf("expected 2 free slots, got %d", len(free))
	}

	for _, s := range free {
		if s.Index == 1 {
			t.Error("transitioned slot must not be free in its own setter")
		}
	}

	markers := p.UnsetMarkers()
	want := []string{"pointXUnset", "pointYUnset", "pointZUnset"}

	for i, m := range markers {
		if m != want[i] {
			t.Errorf("unset marker %d: expected %q, got %q", i, want[i], m)
		}
	}
}
