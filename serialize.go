package chromix

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// PointRecord is the wire shape of a blob position.
type PointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BlobRecord is the wire shape of a blob: full-precision position and
// radius, color quantized to 8 bits per channel by the hex representation.
type BlobRecord struct {
	Pos    PointRecord `json:"pos"`
	Color  string      `json:"color"`
	Radius float64     `json:"radius"`
}

// PaletteDocument is the persistence shape of one palette: a named list of
// blob records plus a flat color-history list of hex strings. The on-disk
// format itself (files, dialogs) belongs to the host; chromix only
// round-trips this shape.
type PaletteDocument struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name"`
	Blobs        []BlobRecord `json:"blobs"`
	ColorHistory []string     `json:"colorHistory,omitempty"`
}

// blobRecordWire mirrors BlobRecord with pointer fields so decoding can
// tell a missing field from a zero value.
type blobRecordWire struct {
	Pos    *PointRecord `json:"pos"`
	Color  *string      `json:"color"`
	Radius *float64     `json:"radius"`
}

// Record converts a blob to its wire shape.
func (b Blob) Record() BlobRecord {
	return BlobRecord{
		Pos:    PointRecord{X: b.Position.X, Y: b.Position.Y},
		Color:  b.Color.Hex(),
		Radius: b.Radius,
	}
}

// Blob converts a record back to a blob. Returns an error for a
// non-positive radius or an unparseable color.
func (r BlobRecord) Blob() (Blob, error) {
	if r.Radius <= 0 {
		return Blob{}, fmt.Errorf("chromix: invalid blob radius %v", r.Radius)
	}
	c, err := ParseHex(r.Color)
	if err != nil {
		return Blob{}, err
	}
	return Blob{
		Position: Pt(r.Pos.X, r.Pos.Y),
		Color:    c,
		Radius:   r.Radius,
	}, nil
}

// Document converts the palette to its persistence shape.
func (p *Palette) Document() PaletteDocument {
	doc := PaletteDocument{
		ID:    p.id.String(),
		Name:  p.name,
		Blobs: make([]BlobRecord, len(p.blobs)),
	}
	for i, b := range p.blobs {
		doc.Blobs[i] = b.Record()
	}
	return doc
}

// PaletteFromDocument rebuilds a palette from its persistence shape.
// Malformed blob records — missing position, color or radius, or an
// unparseable color — are skipped individually with a warning; the rest of
// the palette loads. A missing or invalid ID gets a fresh one.
func PaletteFromDocument(doc PaletteDocument) *Palette {
	p := NewPalette(doc.Name, nil)
	if id, err := uuid.Parse(doc.ID); err == nil {
		p.id = id
	}
	p.blobs = decodeBlobRecords(doc.Blobs, doc.Name)
	return p
}

// decodeBlobRecords validates each record and converts the well-formed ones.
func decodeBlobRecords(records []BlobRecord, palette string) []Blob {
	blobs := make([]Blob, 0, len(records))
	for i, r := range records {
		b, err := r.Blob()
		if err != nil {
			Logger().Warn("skipping malformed blob record",
				"palette", palette, "index", i, "err", err)
			continue
		}
		blobs = append(blobs, b)
	}
	return blobs
}

// EncodeDocuments marshals palette documents to JSON.
func EncodeDocuments(docs []PaletteDocument) ([]byte, error) {
	return json.MarshalIndent(docs, "", "  ")
}

// DecodeDocuments unmarshals palette documents from JSON. Individual blob
// records with missing fields are dropped with a warning rather than
// failing the whole load; only malformed JSON is fatal.
func DecodeDocuments(data []byte) ([]PaletteDocument, error) {
	var raw []struct {
		ID           string            `json:"id"`
		Name         string            `json:"name"`
		Blobs        []json.RawMessage `json:"blobs"`
		ColorHistory []string          `json:"colorHistory"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("chromix: decode palettes: %w", err)
	}

	docs := make([]PaletteDocument, len(raw))
	for i, rd := range raw {
		doc := PaletteDocument{
			ID:           rd.ID,
			Name:         rd.Name,
			ColorHistory: rd.ColorHistory,
		}
		for j, msg := range rd.Blobs {
			var wire blobRecordWire
			if err := json.Unmarshal(msg, &wire); err != nil {
				Logger().Warn("skipping malformed blob record",
					"palette", rd.Name, "index", j, "err", err)
				continue
			}
			if wire.Pos == nil || wire.Color == nil || wire.Radius == nil {
				Logger().Warn("skipping blob record with missing fields",
					"palette", rd.Name, "index", j)
				continue
			}
			doc.Blobs = append(doc.Blobs, BlobRecord{
				Pos:    *wire.Pos,
				Color:  *wire.Color,
				Radius: *wire.Radius,
			})
		}
		docs[i] = doc
	}
	return docs, nil
}

// LoadDocuments decodes documents and installs them into a fresh store.
// The first document's color history, if any, is returned alongside.
func LoadDocuments(data []byte) (*PaletteStore, []RGB, error) {
	docs, err := DecodeDocuments(data)
	if err != nil {
		return nil, nil, err
	}

	store := NewPaletteStore()
	var history []RGB
	for i, doc := range docs {
		p := PaletteFromDocument(doc)
		store.palettes = append(store.palettes, p)
		if i == 0 {
			for _, hex := range doc.ColorHistory {
				c, err := ParseHex(hex)
				if err != nil {
					Logger().Warn("skipping malformed history color", "color", hex, "err", err)
					continue
				}
				history = append(history, c)
			}
		}
	}
	return store, history, nil
}
