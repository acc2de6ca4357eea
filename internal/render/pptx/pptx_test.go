package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/logger"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/render"
	deckerrors "github.com/alexisbeaulieu97/deckgen/pkg/errors"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func sampleDocument() render.Document {
	title := plan.Slide{
		Index:      0,
		Role:       plan.RoleTitle,
		Background: plan.Gradient(color.New(255, 94, 77), color.New(255, 154, 0), 90),
		Shapes: []plan.Shape{
			plan.Picture(plan.FullBleed(), "title.png"),
			plan.TextBox("title", plan.At(1, 2.5, 8, 2), plan.Line(plan.AlignCenter, plan.Run{Text: "Quarterly Review", Size: 54, Bold: true})),
		},
	}
	placeholder := plan.Placeholder(plan.At(6, 2, 3.5, 4), color.New(60, 60, 60), &plan.Border{Color: color.White, Width: 2}).Shaped(plan.KindOval)
	content := plan.Slide{
		Index:      1,
		Role:       plan.RoleContent,
		Variant:    "right",
		Background: plan.Solid(color.Black),
		Shapes: []plan.Shape{
			plan.Rect(plan.KindRectangle, plan.At(0, 0, 10, 1.2), color.New(255, 215, 0)),
			plan.Rect(plan.KindRightTriangle, plan.At(0, 4.5, 10, 3), color.New(128, 0, 32)),
			plan.TextBox("bullets", plan.At(0.5, 1.8, 5, 5), plan.Line(plan.AlignLeft, plan.Run{Text: "• Revenue grew", Size: 18})),
			placeholder,
			plan.Picture(plan.At(0, 0, 1, 1), "nowhere.png"),
		},
		Notes: "Talk about revenue.",
	}
	return render.Document{Name: "review", Title: "Quarterly Review", Author: "Ana", Slides: []plan.Slide{title, content}}
}

func TestSinkWritesPresentation(t *testing.T) {
	t.Parallel()

	assets := t.TempDir()
	writePNG(t, filepath.Join(assets, "title.png"))
	out := t.TempDir()

	var logs bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &logs})
	require.NoError(t, err)

	sink := New(out, assets, log)
	path, err := sink.Render(context.Background(), sampleDocument())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "review.pptx"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("PK")), "pptx files are zip archives")

	// The missing picture is skipped, not fatal.
	assert.Contains(t, logs.String(), "skipping picture")
	assert.Contains(t, logs.String(), "nowhere.png")
}

// archiveParts returns the contents of every zip entry under prefix.
func archiveParts(t *testing.T, path, prefix string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	parts := map[string]string{}
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		parts[f.Name] = string(body)
	}
	return parts
}

func anyContains(parts map[string]string, needle string) bool {
	for _, body := range parts {
		if strings.Contains(body, needle) {
			return true
		}
	}
	return false
}

func TestSinkWritesNotesAndPresetShapes(t *testing.T) {
	t.Parallel()

	assets := t.TempDir()
	writePNG(t, filepath.Join(assets, "title.png"))

	path, err := New(t.TempDir(), assets, logger.Nop()).Render(context.Background(), sampleDocument())
	require.NoError(t, err)

	notes := archiveParts(t, path, "ppt/notesSlides/")
	require.NotEmpty(t, notes)
	assert.True(t, anyContains(notes, "Talk about revenue."), "speaker notes are stored with the slide")

	slides := archiveParts(t, path, "ppt/slides/slide")
	assert.True(t, anyContains(slides, "rtTriangle"), "right triangles use the rtTriangle preset")
	assert.True(t, anyContains(slides, "ellipse"), "oval placeholders use the ellipse preset")
}

func TestSinkSkipsNonImageAsset(t *testing.T) {
	t.Parallel()

	assets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assets, "title.png"), []byte("not an image at all"), 0o644))

	var logs bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &logs})
	require.NoError(t, err)

	_, err = New(t.TempDir(), assets, log).Render(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "skipping non-image asset")
}

func TestSinkHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := New(dir, t.TempDir(), logger.Nop()).Render(ctx, sampleDocument())
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "review.pptx"))
	require.True(t, os.IsNotExist(statErr))
}

func TestSinkReportsUnwritableDirectory(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := New(file, t.TempDir(), logger.Nop()).Render(context.Background(), sampleDocument())
	var renderErr *deckerrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, -1, renderErr.Slide)
}

func TestLetterboxCentresCanvas(t *testing.T) {
	t.Parallel()

	tr := letterbox()
	assert.InDelta(t, 0.75, tr.scale, 1e-9)
	assert.InDelta(t, 1.25, tr.offsetX, 1e-9)
	assert.InDelta(t, 0, tr.offsetY, 1e-9)

	x, y, w, h := tr.place(plan.FullBleed())
	assert.Equal(t, emu(1.25), x)
	assert.Equal(t, int64(0), y)
	assert.Equal(t, emu(7.5), w)
	assert.Equal(t, emu(5.625), h)

	assert.Equal(t, 27, tr.points(36))
	assert.Equal(t, 1, tr.points(0.5))
}

func TestGeometryOf(t *testing.T) {
	t.Parallel()

	_, ok := geometryOf(plan.Rect(plan.KindRectangle, plan.At(0, 0, 1, 1), color.White))
	assert.False(t, ok)

	ph := plan.Placeholder(plan.At(0, 0, 1, 1), color.White, nil)
	_, ok = geometryOf(ph)
	assert.False(t, ok)

	_, ok = geometryOf(ph.Shaped(plan.KindRoundedRectangle))
	assert.True(t, ok)

	_, ok = geometryOf(plan.Rect(plan.KindOval, plan.At(0, 0, 1, 1), color.White))
	assert.True(t, ok)

	geom, ok := geometryOf(plan.Rect(plan.KindRightTriangle, plan.At(0, 0, 1, 1), color.White))
	assert.True(t, ok)
	assert.Equal(t, ppt.AutoShapeType("rtTriangle"), geom)
}
