// Package pptx writes slide plans to PowerPoint files with GoPPT.
package pptx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/logger"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/render"
	deckerrors "github.com/alexisbeaulieu97/deckgen/pkg/errors"
)

const (
	emuPerInch = 914400

	// GoPPT lays slides out on a 16:9 page.
	pageWidth  = 10.0
	pageHeight = 5.625
)

// Sink renders documents to <Dir>/<Name>.pptx.
type Sink struct {
	Dir    string
	Assets render.Assets
	Logger *logger.Logger
}

// New returns a sink writing to dir and resolving assets from assetDir.
func New(dir, assetDir string, log *logger.Logger) *Sink {
	return &Sink{Dir: dir, Assets: render.Assets{Dir: assetDir}, Logger: log}
}

// Render implements render.Sink.
func (s *Sink) Render(ctx context.Context, doc render.Document) (string, error) {
	p := ppt.New()
	props := p.GetDocumentProperties()
	props.Title = doc.Title
	props.Creator = doc.Author

	frame := letterbox()
	for i, planned := range doc.Slides {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		if err := s.drawSlide(slide, frame, planned); err != nil {
			return "", deckerrors.NewRenderError(i, err)
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return "", deckerrors.NewRenderError(-1, fmt.Errorf("create writer: %w", err))
	}
	writer, ok := w.(*ppt.PPTXWriter)
	if !ok {
		return "", deckerrors.NewRenderError(-1, fmt.Errorf("unexpected writer %T", w))
	}
	var buf bytes.Buffer
	if err := writer.WriteTo(&buf); err != nil {
		return "", deckerrors.NewRenderError(-1, fmt.Errorf("encode presentation: %w", err))
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", deckerrors.NewRenderError(-1, err)
	}
	path := filepath.Join(s.Dir, doc.Name+".pptx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", deckerrors.NewRenderError(-1, err)
	}

	s.Logger.WithFields(map[string]any{
		"path":   path,
		"slides": len(doc.Slides),
	}).Debug("presentation written")
	return path, nil
}

// transform maps plan inches onto the page.
type transform struct {
	scale   float64
	offsetX float64
	offsetY float64
}

func letterbox() transform {
	scale := math.Min(pageWidth/plan.CanvasWidth, pageHeight/plan.CanvasHeight)
	return transform{
		scale:   scale,
		offsetX: (pageWidth - plan.CanvasWidth*scale) / 2,
		offsetY: (pageHeight - plan.CanvasHeight*scale) / 2,
	}
}

func emu(in float64) int64 {
	return int64(math.Round(in * emuPerInch))
}

func (t transform) place(b plan.Box) (x, y, w, h int64) {
	return emu(t.offsetX + b.Left*t.scale),
		emu(t.offsetY + b.Top*t.scale),
		emu(b.Width * t.scale),
		emu(b.Height * t.scale)
}

func (t transform) points(size float64) int {
	return max(1, int(math.Round(size*t.scale)))
}

func (s *Sink) drawSlide(slide *ppt.Slide, t transform, planned plan.Slide) error {
	// The background is painted across the whole page, bars included.
	if planned.Background.Type != plan.FillNone {
		bg := slide.CreateRichTextShape()
		bg.SetName("background")
		bg.SetOffsetX(0).SetOffsetY(0)
		bg.SetWidth(emu(pageWidth)).SetHeight(emu(pageHeight))
		bg.SetFill(fill(planned.Background))
	}

	for _, shape := range planned.Shapes {
		switch shape.Kind {
		case plan.KindPicture:
			s.drawPicture(slide, t, planned.Index, shape)
		default:
			drawShape(slide, t, shape)
		}
	}

	if planned.Notes != "" {
		slide.SetNotes(planned.Notes)
	}
	return nil
}

func (s *Sink) drawPicture(slide *ppt.Slide, t transform, index int, shape plan.Shape) {
	log := s.Logger.WithFields(map[string]any{"slide": index, "asset": shape.AssetPath})
	path, err := s.Assets.Resolve(shape.AssetPath)
	if err != nil {
		log.Warn(err, "skipping picture")
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn(errors.Join(deckerrors.ErrMissingAsset, err), "skipping unreadable picture")
		return
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		log.Warn(fmt.Errorf("%s is %s: %w", path, mime, deckerrors.ErrMissingAsset), "skipping non-image asset")
		return
	}
	pic := slide.CreateDrawingShape()
	pic.SetImageData(data, mime.String())
	x, y, w, h := t.place(shape.Box)
	pic.SetOffsetX(x).SetOffsetY(y)
	pic.SetWidth(w).SetHeight(h)
	pic.SetName(shape.Name)
}

// GoPPT names presets after their DrawingML prst value and has no constant
// for the right triangle.
const autoShapeRightTriangle ppt.AutoShapeType = "rtTriangle"

func geometryOf(shape plan.Shape) (ppt.AutoShapeType, bool) {
	kind := shape.Kind
	if kind == plan.KindPicturePlaceholder {
		kind = shape.Geometry
	}
	switch kind {
	case plan.KindRoundedRectangle:
		return ppt.AutoShapeRoundedRect, true
	case plan.KindOval:
		return ppt.AutoShapeEllipse, true
	case plan.KindRightTriangle:
		return autoShapeRightTriangle, true
	}
	return "", false
}

func drawShape(slide *ppt.Slide, t transform, shape plan.Shape) {
	x, y, w, h := t.place(shape.Box)

	// Outlined geometry without text is a preset AutoShape. Everything else
	// is a rich text frame.
	if geom, ok := geometryOf(shape); ok && !shape.HasText() {
		auto := ppt.NewAutoShape().SetAutoShapeType(geom)
		auto.SetName(shape.Name)
		auto.SetPosition(x, y)
		auto.SetSize(w, h)
		auto.SetRotation(shape.Rotation)
		auto.SetFill(fill(shape.Fill))
		applyBorder(auto.GetBorder(), t, shape.Border)
		slide.AddShape(auto)
		return
	}

	box := slide.CreateRichTextShape()
	box.SetName(shape.Name)
	box.SetOffsetX(x).SetOffsetY(y)
	box.SetWidth(w).SetHeight(h)
	box.SetRotation(shape.Rotation)
	if shape.Fill.Type != plan.FillNone {
		box.SetFill(fill(shape.Fill))
	}
	applyBorder(box.GetBorder(), t, shape.Border)
	if shape.Kind == plan.KindPicturePlaceholder {
		box.SetDescription("picture placeholder")
	}
	if shape.HasText() {
		writeText(box, t, shape.Text)
	}
}

func writeText(box *ppt.RichTextShape, t transform, text *plan.Text) {
	box.SetWordWrap(text.WordWrap)
	box.SetAutoFit(ppt.AutoFitNone)
	switch text.Anchor {
	case plan.AnchorMiddle:
		box.SetTextAnchor(ppt.TextAnchorMiddle)
	case plan.AnchorBottom:
		box.SetTextAnchor(ppt.TextAnchorBottom)
	default:
		box.SetTextAnchor(ppt.TextAnchorTop)
	}

	for i, para := range text.Paragraphs {
		var p *ppt.Paragraph
		if i == 0 {
			p = box.GetActiveParagraph()
		} else {
			p = box.CreateParagraph()
		}
		switch para.Align {
		case plan.AlignCenter:
			p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
		case plan.AlignRight:
			p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
		}
		for _, run := range para.Runs {
			tr := p.CreateTextRun(run.Text)
			font := tr.GetFont()
			if run.Size > 0 {
				font.SetSize(t.points(run.Size))
			}
			font.SetBold(run.Bold).SetColor(argb(run.Color))
			font.Italic = run.Italic
			if run.Font != "" {
				font.Name = run.Font
			}
		}
	}
}

func applyBorder(b *ppt.Border, t transform, border *plan.Border) {
	if b == nil {
		return
	}
	if border == nil || border.Width <= 0 {
		b.Style = ppt.BorderNone
		return
	}
	b.Style = ppt.BorderSolid
	b.Color = argb(border.Color)
	b.Width = t.points(border.Width)
}

func fill(f plan.Fill) *ppt.Fill {
	out := ppt.NewFill()
	switch f.Type {
	case plan.FillSolid:
		out.SetSolid(argb(f.Color))
	case plan.FillGradient:
		out.Type = ppt.FillGradientLinear
		out.Color = argb(f.Color)
		out.EndColor = argb(f.End)
		out.Rotation = f.Angle
	default:
		out.Type = ppt.FillNone
	}
	return out
}

func argb(c color.RGB) ppt.Color {
	return ppt.NewColor(c.ARGB())
}
