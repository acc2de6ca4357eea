package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

var sampleBullets = []string{
	"Revenue grew 18% year over year",
	"Churn fell below 3% for the first time",
	"Two new regions launched in Q3",
	"Hiring plan is on track",
	"Board approved the 2027 roadmap",
}

func sample(images bool) Content {
	return Content{Title: "Quarterly Review", Bullets: sampleBullets, Presenter: "Avery Stone", IncludeImages: images}
}

func mustTheme(t *testing.T, name string) theme.Theme {
	t.Helper()
	th, ok := theme.Lookup(name)
	require.True(t, ok, name)
	return th
}

func customTheme(t *testing.T) theme.Theme {
	t.Helper()
	th, err := theme.FromCustomStyle(theme.CustomStyleRequest{
		BackgroundColor: "#101820",
		TextColor:       "#fafafa",
		AccentColor:     "#fee715",
		PrimaryColor:    "#fee715",
	})
	require.NoError(t, err)
	return th
}

func allThemes(t *testing.T) []theme.Theme {
	var out []theme.Theme
	for _, s := range theme.List() {
		out = append(out, mustTheme(t, s.ID))
	}
	return append(out, customTheme(t))
}

func stepsFor(th theme.Theme) []layout.Step {
	var steps []layout.Step
	var state layout.CycleState
	n := len(th.Positions()) * 2
	for i := 0; i < n; i++ {
		steps = append(steps, state.Next(th))
	}
	return steps
}

func hasText(slide plan.Slide) bool {
	for _, s := range slide.Shapes {
		if s.HasText() {
			return true
		}
	}
	return false
}

func TestEveryThemeVariantAndRoleComposes(t *testing.T) {
	t.Parallel()

	for _, th := range allThemes(t) {
		th := th
		t.Run(th.ID, func(t *testing.T) {
			t.Parallel()

			for _, role := range []plan.Role{plan.RoleTitle, plan.RoleClosing} {
				slide, err := Compose(th, layout.Step{}, sample(true), role)
				require.NoError(t, err)
				assert.Equal(t, role, slide.Role)
				assert.Empty(t, slide.ShapesOf(plan.KindPicturePlaceholder), "role %s", role)
				assert.True(t, hasText(slide), "role %s", role)
			}

			for _, step := range stepsFor(th) {
				slide, err := Compose(th, step, sample(true), plan.RoleContent)
				require.NoError(t, err)
				assert.Equal(t, plan.RoleContent, slide.Role)
				assert.Equal(t, string(step.Variant), slide.Variant)
				assert.NotEmpty(t, slide.ShapesOf(plan.KindPicturePlaceholder), "variant %s", step.Variant)

				for _, s := range slide.Shapes {
					assert.GreaterOrEqual(t, s.Box.Left, 0.0)
					assert.GreaterOrEqual(t, s.Box.Top, 0.0)
					assert.LessOrEqual(t, s.Box.Left+s.Box.Width, plan.CanvasWidth+1e-9, s.Name)
					assert.LessOrEqual(t, s.Box.Top+s.Box.Height, plan.CanvasHeight+1e-9, s.Name)
				}
			}
		})
	}
}

func TestImagesDisabledDropsPlaceholders(t *testing.T) {
	t.Parallel()

	for _, th := range allThemes(t) {
		for _, step := range stepsFor(th) {
			slide, err := Compose(th, step, sample(false), plan.RoleContent)
			require.NoError(t, err)
			assert.Empty(t, slide.ShapesOf(plan.KindPicturePlaceholder), th.ID)
			for _, s := range slide.Shapes {
				assert.NotEqual(t, imageLabel, s.Name)
			}
		}
	}
}

type styleKey struct {
	font  string
	color color.RGB
}

func textStyles(slide plan.Slide) map[string]styleKey {
	out := map[string]styleKey{}
	for _, s := range slide.Shapes {
		if !s.HasText() {
			continue
		}
		role := s.Name
		if strings.HasPrefix(role, "bullet") {
			role = "bullets"
		}
		if role != "title" && role != "bullets" {
			continue
		}
		r := s.Text.Paragraphs[0].Runs[0]
		out[role] = styleKey{font: r.Font, color: r.Color}
	}
	return out
}

func TestPaletteIsInvariantAcrossVariants(t *testing.T) {
	t.Parallel()

	for _, th := range allThemes(t) {
		var reference map[string]styleKey
		for _, step := range stepsFor(th) {
			slide, err := Compose(th, step, sample(true), plan.RoleContent)
			require.NoError(t, err)
			styles := textStyles(slide)
			require.Contains(t, styles, "title", th.ID)
			require.Contains(t, styles, "bullets", th.ID)
			if reference == nil {
				reference = styles
				continue
			}
			assert.Equal(t, reference, styles, "%s variant %s", th.ID, step.Variant)
		}
	}
}

type frameKey struct {
	fill   color.RGB
	border plan.Border
}

// frontFrame is the fill and border of the topmost image placeholder.
func frontFrame(t *testing.T, slide plan.Slide) frameKey {
	t.Helper()
	placeholders := slide.ShapesOf(plan.KindPicturePlaceholder)
	require.NotEmpty(t, placeholders)
	front := placeholders[len(placeholders)-1]
	key := frameKey{fill: front.Fill.Color}
	if front.Border != nil {
		key.border = *front.Border
	}
	return key
}

func TestImageFrameIsInvariantAcrossVariants(t *testing.T) {
	t.Parallel()

	for _, th := range allThemes(t) {
		var reference *frameKey
		for _, step := range stepsFor(th) {
			slide, err := Compose(th, step, sample(true), plan.RoleContent)
			require.NoError(t, err)
			frame := frontFrame(t, slide)
			if reference == nil {
				reference = &frame
				continue
			}
			assert.Equal(t, *reference, frame, "%s variant %s", th.ID, step.Variant)
		}
	}
}

func TestThemePlaceholderOverrideIsUsed(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Business Black and Yellow", "Simplistic Red and White"} {
		th := mustTheme(t, name)
		require.NotNil(t, th.Placeholder, name)
		for _, step := range stepsFor(th) {
			slide, err := Compose(th, step, sample(true), plan.RoleContent)
			require.NoError(t, err)
			assert.Equal(t, *th.Placeholder, frontFrame(t, slide).fill, "%s variant %s", name, step.Variant)
		}
	}

	business := mustTheme(t, "Business Black and Yellow")
	slide, err := Compose(business, layout.Step{Variant: layout.Right}, sample(true), plan.RoleContent)
	require.NoError(t, err)
	assert.Equal(t, business.Accent, frontFrame(t, slide).border.Color)
	for _, s := range slide.Shapes {
		if s.Name == imageLabel {
			assert.Equal(t, color.Contrasting(*business.Placeholder), s.Text.Paragraphs[0].Runs[0].Color)
		}
	}
}

func countBullets(slide plan.Slide) int {
	n := 0
	for _, s := range slide.Shapes {
		if strings.HasPrefix(s.Name, "bullet_") {
			n++
		}
		if s.Name == "bullets" {
			n += len(s.Text.Paragraphs)
		}
	}
	return n
}

func TestBulletsAreTruncatedToSlots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme string
		step  layout.Step
		want  int
	}{
		{theme: "Sunset Orange", step: layout.Step{Variant: layout.Right, Structure: layout.Body1}, want: 3},
		{theme: "Sunset Orange", step: layout.Step{Variant: layout.Left, Structure: layout.Body2}, want: 4},
		{theme: "Minimalist Gray", step: layout.Step{Variant: layout.Right}, want: 3},
		{theme: "Ocean Blue", step: layout.Step{Variant: layout.Top}, want: 3},
		{theme: "Simplistic Red and White", step: layout.Step{Variant: layout.Left}, want: 4},
		{theme: "Business Black and Yellow", step: layout.Step{Variant: layout.Right}, want: 3},
		{theme: "Business Black and Yellow", step: layout.Step{Variant: layout.Center}, want: 4},
		{theme: "Nature Green", step: layout.Step{Variant: layout.Bottom}, want: 5},
		{theme: "canva_orange", step: layout.Step{Variant: layout.Right}, want: 5},
	}

	for _, tt := range tests {
		slide, err := Compose(mustTheme(t, tt.theme), tt.step, sample(true), plan.RoleContent)
		require.NoError(t, err)
		assert.Equal(t, tt.want, countBullets(slide), "%s %s/%s", tt.theme, tt.step.Variant, tt.step.Structure)
	}
}

func TestSunsetStructuresDiffer(t *testing.T) {
	t.Parallel()

	th := mustTheme(t, "Sunset Orange")
	body1, err := Compose(th, layout.Step{Structure: layout.Body1}, sample(true), plan.RoleContent)
	require.NoError(t, err)
	body2, err := Compose(th, layout.Step{Structure: layout.Body2}, sample(true), plan.RoleContent)
	require.NoError(t, err)

	require.Len(t, body1.ShapesOf(plan.KindPicturePlaceholder), 1)
	assert.Equal(t, plan.KindRoundedRectangle, body1.ShapesOf(plan.KindPicturePlaceholder)[0].Geometry)

	ovals := body2.ShapesOf(plan.KindPicturePlaceholder)
	require.Len(t, ovals, 2)
	for _, o := range ovals {
		assert.Equal(t, plan.KindOval, o.Geometry)
	}
	assert.Equal(t, plan.FillGradient, body1.Background.Type)
}

func TestGenericVariantMovesImageRegion(t *testing.T) {
	t.Parallel()

	th := mustTheme(t, "Autumn Brown and Orange")
	want := map[layout.Variant]plan.Box{
		layout.Right:  plan.At(6.5, 1.8, 3, 5),
		layout.Left:   plan.At(0.5, 1.8, 3.5, 5),
		layout.Top:    plan.At(2, 1.5, 6, 2.5),
		layout.Bottom: plan.At(2, 4.6, 6, 2.5),
	}
	for variant, box := range want {
		slide, err := Compose(th, layout.Step{Variant: variant}, sample(true), plan.RoleContent)
		require.NoError(t, err)
		placeholders := slide.ShapesOf(plan.KindPicturePlaceholder)
		require.Len(t, placeholders, 1)
		assert.Equal(t, box, placeholders[0].Box, variant)
		require.NotNil(t, placeholders[0].Border)
		assert.Equal(t, th.Accent, placeholders[0].Border.Color)
	}
}

func TestCustomThemeUsesPlaceholderColorAndPrimaryTitle(t *testing.T) {
	t.Parallel()

	th := customTheme(t)
	slide, err := Compose(th, layout.Step{Variant: layout.Right}, sample(true), plan.RoleContent)
	require.NoError(t, err)

	placeholder := slide.ShapesOf(plan.KindPicturePlaceholder)[0]
	assert.Equal(t, *th.Placeholder, placeholder.Fill.Color)
	assert.Equal(t, th.Primary, textStyles(slide)["title"].color)
}

func TestClosingColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme theme.Theme
		want  color.RGB
	}{
		{theme: customTheme(t), want: color.MustRGB("#fee715")},
		{theme: mustTheme(t, "Sunset Orange"), want: color.Black},
		{theme: mustTheme(t, "Simplistic Red and White"), want: color.New(220, 20, 60)},
		{theme: mustTheme(t, "Nature Green"), want: color.White},
	}

	for _, tt := range tests {
		slide, err := Compose(tt.theme, layout.Step{}, Content{}, plan.RoleClosing)
		require.NoError(t, err)
		boxes := slide.ShapesOf(plan.KindTextBox)
		require.Len(t, boxes, 1)
		run := boxes[0].Text.Paragraphs[0].Runs[0]
		assert.Equal(t, ClosingText, run.Text)
		assert.Equal(t, tt.want, run.Color, tt.theme.Name)
		assert.Equal(t, plan.AnchorMiddle, boxes[0].Text.Anchor)
	}
}

func TestBusinessUsesBackgroundAssets(t *testing.T) {
	t.Parallel()

	th := mustTheme(t, "Business Black and Yellow")
	title, err := Compose(th, layout.Step{}, sample(true), plan.RoleTitle)
	require.NoError(t, err)
	right, err := Compose(th, layout.Step{Variant: layout.Right}, sample(true), plan.RoleContent)
	require.NoError(t, err)
	center, err := Compose(th, layout.Step{Variant: layout.Center}, sample(true), plan.RoleContent)
	require.NoError(t, err)

	assert.Equal(t, BusinessTitleAsset, title.ShapesOf(plan.KindPicture)[0].AssetPath)
	assert.Equal(t, BusinessBody1Asset, right.ShapesOf(plan.KindPicture)[0].AssetPath)
	assert.Equal(t, BusinessBody2Asset, center.ShapesOf(plan.KindPicture)[0].AssetPath)
	assert.Equal(t, plan.Solid(color.Black), title.Background)
}

func TestOceanUppercasesBullets(t *testing.T) {
	t.Parallel()

	slide, err := Compose(mustTheme(t, "Ocean Blue"), layout.Step{Variant: layout.Right}, sample(true), plan.RoleContent)
	require.NoError(t, err)
	for _, s := range slide.Shapes {
		if strings.HasPrefix(s.Name, "bullet_") {
			got := s.Text.Paragraphs[0].Text()
			assert.Equal(t, strings.ToUpper(got), got)
			assert.True(t, strings.HasPrefix(got, "• "))
		}
	}
}

func TestUnknownRecipePanics(t *testing.T) {
	t.Parallel()

	th := mustTheme(t, "Nature Green")
	th.Recipe = theme.Recipe("holographic")
	assert.Panics(t, func() {
		_, _ = Compose(th, layout.Step{}, sample(true), plan.RoleTitle)
	})
}

func TestUnknownRoleIsAnError(t *testing.T) {
	t.Parallel()

	_, err := Compose(mustTheme(t, "Nature Green"), layout.Step{}, sample(true), plan.Role("appendix"))
	require.Error(t, err)
}

func TestComposeIsDeterministic(t *testing.T) {
	t.Parallel()

	th := mustTheme(t, "Minimalist Gray")
	a, err := Compose(th, layout.Step{Variant: layout.Left}, sample(true), plan.RoleContent)
	require.NoError(t, err)
	b, err := Compose(th, layout.Step{Variant: layout.Left}, sample(true), plan.RoleContent)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
