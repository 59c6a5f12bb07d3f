package chromix

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestBlobRecordRoundTrip(t *testing.T) {
	orig := Blob{
		Position: Pt(123.456, -7.89),
		Color:    RGB{R: 0.25, G: 0.5, B: 0.75},
		Radius:   31.5,
	}

	got, err := orig.Record().Blob()
	if err != nil {
		t.Fatalf("round trip error: %v", err)
	}

	// Position and radius round-trip at full precision; color is quantized
	// to 8 bits per channel by the hex representation.
	if got.Position != orig.Position {
		t.Errorf("position = %+v, want %+v", got.Position, orig.Position)
	}
	if got.Radius != orig.Radius {
		t.Errorf("radius = %v, want %v", got.Radius, orig.Radius)
	}
	const quantum = 0.5/255 + 1e-9
	if math.Abs(got.Color.R-orig.Color.R) > quantum ||
		math.Abs(got.Color.G-orig.Color.G) > quantum ||
		math.Abs(got.Color.B-orig.Color.B) > quantum {
		t.Errorf("color = %+v, want %+v within 8-bit quantization", got.Color, orig.Color)
	}
}

func TestBlobRecordInvalid(t *testing.T) {
	tests := []struct {
		name   string
		record BlobRecord
	}{
		{"zero radius", BlobRecord{Color: "#ff0000", Radius: 0}},
		{"negative radius", BlobRecord{Color: "#ff0000", Radius: -5}},
		{"bad color", BlobRecord{Color: "#zzzzzz", Radius: 10}},
		{"empty color", BlobRecord{Color: "", Radius: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.record.Blob(); err == nil {
				t.Errorf("record %+v decoded without error", tt.record)
			}
		})
	}
}

func TestPaletteDocumentRoundTrip(t *testing.T) {
	p := NewPalette("sunset", []Blob{
		{Position: Pt(10, 20), Color: Red, Radius: 15},
		{Position: Pt(30, 40), Color: RGB{R: 1, G: 0.5, B: 0}, Radius: 25},
	})

	got := PaletteFromDocument(p.Document())
	if got.ID() != p.ID() {
		t.Errorf("ID = %v, want %v", got.ID(), p.ID())
	}
	if got.Name() != "sunset" {
		t.Errorf("Name = %q, want %q", got.Name(), "sunset")
	}
	if got.Len() != 2 {
		t.Fatalf("Len = %d, want 2", got.Len())
	}
	if got.Blobs()[0].Color != Red {
		t.Errorf("blob 0 color = %+v, want red", got.Blobs()[0].Color)
	}
}

func TestPaletteFromDocumentBadID(t *testing.T) {
	p := PaletteFromDocument(PaletteDocument{ID: "not-a-uuid", Name: "x"})
	if p.ID().String() == "not-a-uuid" {
		t.Error("invalid ID accepted verbatim")
	}
	if p.ID() == uuid.Nil {
		t.Error("invalid ID produced the zero UUID instead of a fresh one")
	}
}

func TestEncodeDecodeDocuments(t *testing.T) {
	docs := []PaletteDocument{
		{
			Name: "warm",
			Blobs: []BlobRecord{
				{Pos: PointRecord{X: 1, Y: 2}, Color: "#ff8000", Radius: 12},
			},
			ColorHistory: []string{"#ff0000", "#00ff00"},
		},
		{Name: "empty"},
	}

	data, err := EncodeDocuments(docs)
	if err != nil {
		t.Fatalf("EncodeDocuments error: %v", err)
	}

	got, err := DecodeDocuments(data)
	if err != nil {
		t.Fatalf("DecodeDocuments error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d documents, want 2", len(got))
	}
	if got[0].Name != "warm" || len(got[0].Blobs) != 1 {
		t.Errorf("document 0 = %+v", got[0])
	}
	if len(got[0].ColorHistory) != 2 {
		t.Errorf("history = %v, want 2 entries", got[0].ColorHistory)
	}
	if got[1].Name != "empty" || len(got[1].Blobs) != 0 {
		t.Errorf("document 1 = %+v", got[1])
	}
}

func TestDecodeDocumentsSkipsMalformedRecords(t *testing.T) {
	// The second record is missing its radius, the third its position; both
	// are dropped individually, the rest of the palette loads.
	data := `[
	  {
	    "name": "partial",
	    "blobs": [
	      {"pos": {"x": 1, "y": 2}, "color": "#ff0000", "radius": 10},
	      {"pos": {"x": 3, "y": 4}, "color": "#00ff00"},
	      {"color": "#0000ff", "radius": 5},
	      {"pos": {"x": 5, "y": 6}, "color": "#ffffff", "radius": 8}
	    ]
	  }
	]`

	got, err := DecodeDocuments([]byte(data))
	if err != nil {
		t.Fatalf("DecodeDocuments error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("decoded %d documents, want 1", len(got))
	}
	if len(got[0].Blobs) != 2 {
		t.Fatalf("kept %d blob records, want 2", len(got[0].Blobs))
	}
	if got[0].Blobs[0].Color != "#ff0000" || got[0].Blobs[1].Color != "#ffffff" {
		t.Errorf("wrong records survived: %+v", got[0].Blobs)
	}
}

func TestDecodeDocumentsMalformedJSON(t *testing.T) {
	if _, err := DecodeDocuments([]byte("{not json")); err == nil {
		t.Error("malformed JSON decoded without error")
	}
}

func TestLoadDocuments(t *testing.T) {
	data := `[
	  {
	    "name": "first",
	    "blobs": [{"pos": {"x": 1, "y": 2}, "color": "#ff0000", "radius": 10}],
	    "colorHistory": ["#00ff00", "#bogus!", "#0000ff"]
	  },
	  {"name": "second", "blobs": []}
	]`

	store, history, err := LoadDocuments([]byte(data))
	if err != nil {
		t.Fatalf("LoadDocuments error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("store holds %d palettes, want 2", store.Len())
	}
	p, _ := store.Palette(0)
	if p.Name() != "first" || p.Len() != 1 {
		t.Errorf("palette 0 = %q with %d blobs", p.Name(), p.Len())
	}
	// The malformed history entry is skipped, not fatal.
	if len(history) != 2 || history[0] != Green || history[1] != Blue {
		t.Errorf("history = %+v, want [green, blue]", history)
	}
	if store.ActiveIndex() != -1 {
		t.Errorf("fresh store active index = %d, want -1", store.ActiveIndex())
	}
}

func TestDocumentJSONShape(t *testing.T) {
	docs := []PaletteDocument{{
		Name:  "shape",
		Blobs: []BlobRecord{{Pos: PointRecord{X: 1.5, Y: 2.5}, Color: "#abcdef", Radius: 7}},
	}}
	data, err := EncodeDocuments(docs)
	if err != nil {
		t.Fatalf("EncodeDocuments error: %v", err)
	}

	for _, key := range []string{`"name"`, `"blobs"`, `"pos"`, `"color"`, `"radius"`, `"#abcdef"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("encoded document missing %s:\n%s", key, data)
		}
	}
	if strings.Contains(string(data), `"colorHistory"`) {
		t.Error("empty color history serialized instead of omitted")
	}
}
