// Package text provides font registration and text measurement.
//
// Fonts are registered from raw TrueType/OpenType data and referenced by
// [graphics.FontID]. Measurement degrades gracefully: text measured with an
// unknown font reports zero size instead of failing, so a missing font never
// breaks layout.
package text

import (
	stderrors "errors"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-keel/keel/pkg/errors"
	"github.com/go-keel/keel/pkg/graphics"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
)

// Measurer resolves text dimensions for layout. The scene passes one to
// widgets so measurement and painting agree on text size.
type Measurer interface {
	// MeasureText measures text wrapped to maxWidth. maxWidth <= 0 or
	// infinite means no wrapping.
	MeasureText(text string, id graphics.FontID, size, maxWidth float64) graphics.Size
	// LineHeight returns the height of one line at the given size.
	LineHeight(id graphics.FontID, size float64) float64
	// AdvanceWidth returns the horizontal advance of a single unwrapped run.
	AdvanceWidth(text string, id graphics.FontID, size float64) float64
}

type faceKey struct {
	id   graphics.FontID
	size float64
}

// Registry owns parsed fonts and caches faces per size.
// It implements Measurer. The zero value is not usable; call NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	fonts  map[graphics.FontID]*opentype.Font
	faces  map[faceKey]font.Face
	nextID graphics.FontID
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts:  make(map[graphics.FontID]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
		nextID: 1,
	}
}

// Register parses TrueType/OpenType data and returns an ID for it.
func (r *Registry) Register(data []byte) (graphics.FontID, error) {
	if len(data) == 0 {
		return 0, stderrors.New("font data required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		errors.Report(&errors.UIError{
			Op:   "text.Registry.Register",
			Kind: errors.KindFont,
			Err:  err,
		})
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.fonts[id] = parsed
	return id, nil
}

// face returns a cached font.Face for the given font and size, or nil when
// the font is unknown.
func (r *Registry) face(id graphics.FontID, size float64) font.Face {
	if size <= 0 {
		size = defaultFontSize
	}
	key := faceKey{id: id, size: size}

	r.mu.RLock()
	face, ok := r.faces[key]
	r.mu.RUnlock()
	if ok {
		return face
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if face, ok := r.faces[key]; ok {
		return face
	}
	parsed, ok := r.fonts[id]
	if !ok {
		return nil
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		errors.Report(&errors.UIError{
			Op:   "text.Registry.face",
			Kind: errors.KindFont,
			Err:  err,
		})
		return nil
	}
	r.faces[key] = face
	return face
}

// MeasureText measures text wrapped to maxWidth using the registered font.
// Unknown fonts measure as zero size.
func (r *Registry) MeasureText(text string, id graphics.FontID, size, maxWidth float64) graphics.Size {
	layout := r.Layout(text, id, size, maxWidth)
	return layout.Size
}

// LineHeight returns the line height of the registered font at the given
// size, or zero when the font is unknown.
func (r *Registry) LineHeight(id graphics.FontID, size float64) float64 {
	face := r.face(id, size)
	if face == nil {
		return 0
	}
	metrics := face.Metrics()
	return fixedToFloat(metrics.Height)
}

// AdvanceWidth returns the advance of a single unwrapped run, or zero when
// the font is unknown.
func (r *Registry) AdvanceWidth(text string, id graphics.FontID, size float64) float64 {
	face := r.face(id, size)
	if face == nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, text))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
